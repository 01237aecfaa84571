// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package logging provides the failure-logging broker used by foundation services.

Services never talk to slog directly when an operation fails. They hand the
translated error to a [Broker], which records it at the matching severity:

  - LogError: caller-correctable failures (validation).
  - LogCritical: infrastructure failures (storage, cache).

The broker is fire-and-forget: it never returns an error and never panics on a
nil error value.
*/
package logging

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/artgallery/internal/platform/metrics"
)

// LevelCritical sits above slog.LevelError for failures that need an operator.
const LevelCritical = slog.LevelError + 4

// Broker writes error and critical events to a structured logger.
type Broker struct {
	logger *slog.Logger
}

// NewBroker wraps logger. A nil logger falls back to [slog.Default].
func NewBroker(logger *slog.Logger) *Broker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broker{logger: logger}
}

// LogError records err at error severity.
func (broker *Broker) LogError(err error) {
	broker.log(slog.LevelError, "operation_rejected", err)
}

// LogCritical records err at critical severity.
func (broker *Broker) LogCritical(err error) {
	broker.log(LevelCritical, "operation_failed", err)
}

func (broker *Broker) log(level slog.Level, msg string, err error) {
	metrics.LogEventsTotal.WithLabelValues(LevelName(level)).Inc()

	if err == nil {
		broker.logger.Log(context.Background(), level, msg)
		return
	}

	broker.logger.Log(context.Background(), level, msg,
		slog.String("error", err.Error()),
		slog.Any("causes", causeChain(err)),
	)
}

// LevelName renders [LevelCritical] as "CRITICAL" and defers to slog otherwise.
func LevelName(level slog.Level) string {
	if level == LevelCritical {
		return "CRITICAL"
	}
	return level.String()
}

// ReplaceLevel is a [slog.HandlerOptions] ReplaceAttr hook that prints
// [LevelCritical] by name instead of "ERROR+4".
func ReplaceLevel(groups []string, attr slog.Attr) slog.Attr {
	if attr.Key != slog.LevelKey || len(groups) > 0 {
		return attr
	}
	if level, ok := attr.Value.Any().(slog.Level); ok {
		attr.Value = slog.StringValue(LevelName(level))
	}
	return attr
}

// causeChain lists the messages of every error wrapped beneath err.
func causeChain(err error) []string {
	var causes []string
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		causes = append(causes, cause.Error())
	}
	return causes
}
