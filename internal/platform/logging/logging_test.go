// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artgallery/internal/platform/logging"
	"github.com/taibuivan/artgallery/internal/platform/metrics"
)

func newBufferedBroker(t *testing.T) (*logging.Broker, *bytes.Buffer) {
	t.Helper()
	buffer := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buffer, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: logging.ReplaceLevel,
	}))
	return logging.NewBroker(logger), buffer
}

func decode(t *testing.T, buffer *bytes.Buffer) map[string]any {
	t.Helper()
	entry := map[string]any{}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &entry))
	return entry
}

/*
TestBroker_LogError verifies error-level events carry the message and cause chain.
*/
func TestBroker_LogError(t *testing.T) {
	broker, buffer := newBufferedBroker(t)
	before := testutil.ToFloat64(metrics.LogEventsTotal.WithLabelValues("ERROR"))

	inner := errors.New("Text is required.")
	broker.LogError(fmt.Errorf("Invalid artist.: %w", inner))

	entry := decode(t, buffer)
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "operation_rejected", entry["msg"])
	assert.Equal(t, "Invalid artist.: Text is required.", entry["error"])
	assert.Equal(t, []any{"Text is required."}, entry["causes"])

	after := testutil.ToFloat64(metrics.LogEventsTotal.WithLabelValues("ERROR"))
	assert.Equal(t, before+1, after)
}

/*
TestBroker_LogCritical verifies critical events are rendered as CRITICAL.
*/
func TestBroker_LogCritical(t *testing.T) {
	broker, buffer := newBufferedBroker(t)
	before := testutil.ToFloat64(metrics.LogEventsTotal.WithLabelValues("CRITICAL"))

	broker.LogCritical(errors.New("storage unreachable"))

	entry := decode(t, buffer)
	assert.Equal(t, "CRITICAL", entry["level"])
	assert.Equal(t, "operation_failed", entry["msg"])
	assert.Equal(t, "storage unreachable", entry["error"])

	after := testutil.ToFloat64(metrics.LogEventsTotal.WithLabelValues("CRITICAL"))
	assert.Equal(t, before+1, after)
}

/*
TestBroker_NilError ensures a nil error is still recorded without panicking.
*/
func TestBroker_NilError(t *testing.T) {
	broker, buffer := newBufferedBroker(t)

	assert.NotPanics(t, func() { broker.LogError(nil) })
	assert.Equal(t, "operation_rejected", decode(t, buffer)["msg"])
}

/*
TestLevelName tests the custom level rendering.
*/
func TestLevelName(t *testing.T) {
	assert.Equal(t, "CRITICAL", logging.LevelName(logging.LevelCritical))
	assert.Equal(t, "ERROR", logging.LevelName(slog.LevelError))
	assert.Equal(t, "INFO", logging.LevelName(slog.LevelInfo))
}
