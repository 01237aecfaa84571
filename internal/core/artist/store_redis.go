// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/artgallery/internal/platform/constants"
)

// Cache is the subset of the Redis client used by [CachedStorage].
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedStorage is a read-through Redis cache in front of another [Storage].
//
// The wrapped storage stays the source of truth: cache failures are logged
// and skipped, never returned.
type CachedStorage struct {
	next   Storage
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedStorage wraps next with a Redis cache whose entries live for ttl.
func NewCachedStorage(next Storage, cache Cache, ttl time.Duration, logger *slog.Logger) *CachedStorage {
	return &CachedStorage{next: next, cache: cache, ttl: ttl, logger: logger}
}

// InsertArtist persists through the wrapped storage, then primes the cache.
func (storage *CachedStorage) InsertArtist(context context.Context, a *Artist) (*Artist, error) {
	stored, err := storage.next.InsertArtist(context, a)
	if err != nil {
		return nil, err
	}

	storage.put(context, stored)
	return stored, nil
}

// SelectArtistByID serves from Redis when possible and fills it on a miss.
func (storage *CachedStorage) SelectArtistByID(context context.Context, id uuid.UUID) (*Artist, error) {
	key := artistCacheKey(id)

	payload, err := storage.cache.Get(context, key).Bytes()
	switch {
	case err == nil:
		cached := &Artist{}
		if err := json.Unmarshal(payload, cached); err == nil {
			return cached, nil
		}
		storage.logger.Warn("artist_cache_corrupt", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		storage.logger.Warn("artist_cache_get_failed", slog.String("key", key), slog.Any("error", err))
	}

	stored, err := storage.next.SelectArtistByID(context, id)
	if err != nil {
		return nil, err
	}

	storage.put(context, stored)
	return stored, nil
}

func (storage *CachedStorage) put(context context.Context, a *Artist) {
	if a == nil {
		return
	}

	key := artistCacheKey(a.ID)

	payload, err := json.Marshal(a)
	if err != nil {
		storage.logger.Warn("artist_cache_encode_failed", slog.String("key", key), slog.Any("error", err))
		return
	}

	if err := storage.cache.Set(context, key, payload, storage.ttl).Err(); err != nil {
		storage.logger.Warn("artist_cache_set_failed", slog.String("key", key), slog.Any("error", err))
	}
}

func artistCacheKey(id uuid.UUID) string {
	return constants.RedisPrefixArtist + id.String()
}
