// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr marks low-level database failures as storage errors so that
// services can tell them apart from their own validation failures.
//
// Every repository method passes its raw pgx error through [Wrap]. Callers
// then branch on [*Error] with [errors.As], or on [IsNotFound].
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Error is a storage-specific failure raised by a repository.
type Error struct {
	// Action is the repository operation that failed (e.g. "insert_artist").
	Action string
	// Code is the PostgreSQL SQLSTATE, empty when the failure was not a server error.
	Code string
	// Err is the raw driver error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("storage: %s failed (sqlstate %s): %v", e.Action, e.Code, e.Err)
	}
	return fmt.Sprintf("storage: %s failed: %v", e.Action, e.Err)
}

// Unwrap exposes the driver error to [errors.Is] and [errors.As].
func (e *Error) Unwrap() error { return e.Err }

// Wrap classifies a database error and wraps it into an [*Error].
// It returns nil when err is nil.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	storageError := &Error{Action: action, Err: err}

	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		storageError.Code = pgError.Code
	}

	return storageError
}

// IsNotFound reports whether err came from a query that matched no rows.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

