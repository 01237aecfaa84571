// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artgallery/internal/core/artist"
	"github.com/taibuivan/artgallery/internal/platform/apperr"
	"github.com/taibuivan/artgallery/internal/platform/ctxutil"
	"github.com/taibuivan/artgallery/internal/platform/dberr"
)

type errorBody struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details"`
}

func newRouter(f *fixture) http.Handler {
	router := chi.NewRouter()
	router.Route("/api/v1/artists", artist.NewHandler(f.service).RegisterRoutes)
	return router
}

func serve(t *testing.T, f *fixture, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(method, path, bytes.NewReader(body)).WithContext(context.Background())
	recorder := httptest.NewRecorder()
	newRouter(f).ServeHTTP(recorder, request)
	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) errorBody {
	t.Helper()
	body := errorBody{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

/*
TestHandler_AddArtist_Created verifies a valid body is stored and echoed back.
*/
func TestHandler_AddArtist_Created(t *testing.T) {
	f := newFixture(now)
	input := validArtist()
	f.storage.On("InsertArtist", mock.Anything, mock.AnythingOfType("*artist.Artist")).
		Return(input, nil).Once()

	payload, err := json.Marshal(input)
	require.NoError(t, err)

	recorder := serve(t, f, http.MethodPost, "/api/v1/artists/", payload)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, input.ID.String(), envelope.Data["id"])
	assert.Equal(t, "Active", envelope.Data["status"])
	assert.NotContains(t, envelope.Data, "created_by_user")
}

/*
TestHandler_AddArtist_Errors tests how each failure reaches the client.
*/
func TestHandler_AddArtist_Errors(t *testing.T) {
	t.Run("null_body", func(t *testing.T) {
		f := newFixture(now)

		recorder := serve(t, f, http.MethodPost, "/api/v1/artists/", []byte("null"))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		body := decodeError(t, recorder)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
		assert.Equal(t, []apperr.FieldError{{Field: "Artist", Message: "Artist is null."}}, body.Details)
	})

	t.Run("malformed_json", func(t *testing.T) {
		f := newFixture(now)

		recorder := serve(t, f, http.MethodPost, "/api/v1/artists/", []byte("{"))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Invalid JSON payload", decodeError(t, recorder).Error)
		f.logger.AssertNotCalled(t, "LogError", mock.Anything)
	})

	t.Run("violations", func(t *testing.T) {
		f := newFixture(now)
		input := validArtist()
		input.Email = "nope"
		input.ContactNumber = "123"
		payload, err := json.Marshal(input)
		require.NoError(t, err)

		recorder := serve(t, f, http.MethodPost, "/api/v1/artists/", payload)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		body := decodeError(t, recorder)
		assert.Equal(t, "Artist validation errors occurred, please try again.", body.Error)
		assert.Equal(t, []apperr.FieldError{
			{Field: artist.FieldEmail, Message: "Text is invalid."},
			{Field: artist.FieldContactNumber, Message: "Value is invalid."},
		}, body.Details)
	})

	t.Run("storage_failure", func(t *testing.T) {
		f := newFixture(now)
		f.storage.On("InsertArtist", mock.Anything, mock.Anything).
			Return(nil, dberr.Wrap(errors.New("relation core.artist does not exist"), "insert_artist")).Once()
		payload, err := json.Marshal(validArtist())
		require.NoError(t, err)

		recorder := serve(t, f, http.MethodPost, "/api/v1/artists/", payload)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		body := decodeError(t, recorder)
		assert.Equal(t, "DEPENDENCY_ERROR", body.Code)
		assert.Equal(t, "Artist dependency error occurred, contact support.", body.Error)
		assert.NotContains(t, recorder.Body.String(), "core.artist")
	})

	t.Run("storage_failure_logged_once", func(t *testing.T) {
		f := newFixture(now)
		f.storage.On("InsertArtist", mock.Anything, mock.Anything).
			Return(nil, dberr.Wrap(errors.New("connection refused"), "insert_artist")).Once()
		payload, err := json.Marshal(validArtist())
		require.NoError(t, err)

		edgeLog := &bytes.Buffer{}
		ctx := ctxutil.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(edgeLog, nil)))
		request := httptest.NewRequest(http.MethodPost, "/api/v1/artists/", bytes.NewReader(payload)).WithContext(ctx)
		recorder := httptest.NewRecorder()
		newRouter(f).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		f.logger.AssertNumberOfCalls(t, "LogCritical", 1)
		assert.Empty(t, edgeLog.String())
	})
}

/*
TestHandler_GetArtist tests the lookup endpoint.
*/
func TestHandler_GetArtist(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(now)
		found := validArtist()
		f.storage.On("SelectArtistByID", mock.Anything, found.ID).Return(found, nil).Once()

		recorder := serve(t, f, http.MethodGet, "/api/v1/artists/"+found.ID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), found.ID.String())
	})

	t.Run("not_found", func(t *testing.T) {
		f := newFixture(now)
		id := uuid.New()
		f.storage.On("SelectArtistByID", mock.Anything, id).
			Return(nil, dberr.Wrap(pgx.ErrNoRows, "select_artist")).Once()

		recorder := serve(t, f, http.MethodGet, "/api/v1/artists/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "NOT_FOUND", decodeError(t, recorder).Code)
	})

	t.Run("malformed_id", func(t *testing.T) {
		f := newFixture(now)

		recorder := serve(t, f, http.MethodGet, "/api/v1/artists/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, []apperr.FieldError{{Field: artist.FieldID, Message: "Id is invalid."}}, decodeError(t, recorder).Details)
		f.storage.AssertNotCalled(t, "SelectArtistByID", mock.Anything, mock.Anything)
	})

	t.Run("nil_id", func(t *testing.T) {
		f := newFixture(now)

		recorder := serve(t, f, http.MethodGet, "/api/v1/artists/"+uuid.Nil.String(), nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, []apperr.FieldError{{Field: artist.FieldID, Message: "Id is required."}}, decodeError(t, recorder).Details)
	})
}
