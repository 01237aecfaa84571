// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artgallery/internal/core/artist"
	"github.com/taibuivan/artgallery/internal/platform/constants"
)

type fakeCache struct {
	entries map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if c.getErr != nil {
		return redis.NewStringResult("", c.getErr)
	}
	payload, ok := c.entries[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(payload), nil)
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if c.setErr != nil {
		return redis.NewStatusResult("", c.setErr)
	}
	c.entries[key] = value.([]byte)
	c.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func newCachedStorage(next artist.Storage, cache artist.Cache) *artist.CachedStorage {
	return artist.NewCachedStorage(next, cache, 5*time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestCachedStorage_InsertPrimesCache verifies a persisted artist is written to Redis.
*/
func TestCachedStorage_InsertPrimesCache(t *testing.T) {
	next := &storageMock{}
	cache := newFakeCache()
	input := validArtist()
	next.On("InsertArtist", mock.Anything, input).Return(input, nil).Once()

	stored, err := newCachedStorage(next, cache).InsertArtist(context.Background(), input)

	require.NoError(t, err)
	assert.Same(t, input, stored)

	key := constants.RedisPrefixArtist + input.ID.String()
	require.Contains(t, cache.entries, key)
	assert.Equal(t, 5*time.Minute, cache.ttls[key])

	cached := &artist.Artist{}
	require.NoError(t, json.Unmarshal(cache.entries[key], cached))
	assert.Equal(t, input.Email, cached.Email)
}

/*
TestCachedStorage_InsertFailureSkipsCache verifies nothing is cached when the insert fails.
*/
func TestCachedStorage_InsertFailureSkipsCache(t *testing.T) {
	next := &storageMock{}
	cache := newFakeCache()
	input := validArtist()
	storageErr := errors.New("insert failed")
	next.On("InsertArtist", mock.Anything, input).Return(nil, storageErr).Once()

	_, err := newCachedStorage(next, cache).InsertArtist(context.Background(), input)

	assert.Same(t, storageErr, err)
	assert.Empty(t, cache.entries)
}

/*
TestCachedStorage_SelectHit serves from Redis without touching the wrapped storage.
*/
func TestCachedStorage_SelectHit(t *testing.T) {
	next := &storageMock{}
	cache := newFakeCache()
	input := validArtist()

	payload, err := json.Marshal(input)
	require.NoError(t, err)
	cache.entries[constants.RedisPrefixArtist+input.ID.String()] = payload

	found, err := newCachedStorage(next, cache).SelectArtistByID(context.Background(), input.ID)

	require.NoError(t, err)
	assert.Equal(t, input.ID, found.ID)
	assert.True(t, input.CreatedDate.Equal(found.CreatedDate))
	next.AssertNotCalled(t, "SelectArtistByID", mock.Anything, mock.Anything)
}

/*
TestCachedStorage_SelectMissFillsCache falls back to the wrapped storage and caches the result.
*/
func TestCachedStorage_SelectMissFillsCache(t *testing.T) {
	tests := []struct {
		name    string
		getErr  error
		corrupt bool
	}{
		{"miss", nil, false},
		{"redis_down", errors.New("connection refused"), false},
		{"corrupt_entry", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &storageMock{}
			cache := newFakeCache()
			cache.getErr = tt.getErr
			input := validArtist()
			key := constants.RedisPrefixArtist + input.ID.String()
			if tt.corrupt {
				cache.entries[key] = []byte("{not json")
			}
			next.On("SelectArtistByID", mock.Anything, input.ID).Return(input, nil).Once()

			found, err := newCachedStorage(next, cache).SelectArtistByID(context.Background(), input.ID)

			require.NoError(t, err)
			assert.Same(t, input, found)
			next.AssertNumberOfCalls(t, "SelectArtistByID", 1)
			assert.NotEqual(t, "{not json", string(cache.entries[key]))
		})
	}
}

/*
TestCachedStorage_SetFailureIsIgnored verifies a broken cache never fails the operation.
*/
func TestCachedStorage_SetFailureIsIgnored(t *testing.T) {
	next := &storageMock{}
	cache := newFakeCache()
	cache.setErr = errors.New("READONLY")
	input := validArtist()
	next.On("InsertArtist", mock.Anything, input).Return(input, nil).Once()

	stored, err := newCachedStorage(next, cache).InsertArtist(context.Background(), input)

	require.NoError(t, err)
	assert.Same(t, input, stored)
}
