// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/artgallery/internal/api"
	"github.com/taibuivan/artgallery/internal/core/artist"
	"github.com/taibuivan/artgallery/internal/platform/clock"
	"github.com/taibuivan/artgallery/internal/platform/config"
	"github.com/taibuivan/artgallery/internal/platform/logging"
)

type memoryStorage struct {
	artists map[uuid.UUID]*artist.Artist
}

func (s *memoryStorage) InsertArtist(ctx context.Context, a *artist.Artist) (*artist.Artist, error) {
	s.artists[a.ID] = a
	return a, nil
}

func (s *memoryStorage) SelectArtistByID(ctx context.Context, id uuid.UUID) (*artist.Artist, error) {
	return s.artists[id], nil
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	service := artist.NewService(&memoryStorage{artists: map[uuid.UUID]*artist.Artist{}}, clock.New(), logging.NewBroker(logger))
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{}, logger)

	server := api.NewServer(ctx, &config.Config{ServerPort: "0", Environment: "development"}, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Artist:    artist.NewHandler(service),
	})
	return server.Handler()
}

/*
TestServer_Routes verifies every route group is mounted behind the middleware chain.
*/
func TestServer_Routes(t *testing.T) {
	handler := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"liveness", http.MethodGet, "/health", "", http.StatusOK},
		{"readiness", http.MethodGet, "/ready", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"artist_missing_id", http.MethodGet, "/api/v1/artists/" + uuid.Nil.String(), "", http.StatusBadRequest},
		{"artist_null_body", http.MethodPost, "/api/v1/artists/", "null", http.StatusBadRequest},
		{"unknown_route", http.MethodGet, "/api/v1/exhibitions", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
		})
	}
}
