// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/taibuivan/artgallery/internal/platform/validate"
)

// # Raw Failures

// ErrNullArtist is raised when the service receives a nil artist.
var ErrNullArtist = errors.New("Artist is null.")

// InvalidArtistError carries every rule the artist violated, keyed by field.
type InvalidArtistError struct {
	Violations *validate.Violations
}

func (e *InvalidArtistError) Error() string {
	return "Invalid artist. Please fix the errors and try again."
}

// NotFoundArtistError is raised when no stored artist has the requested id.
type NotFoundArtistError struct {
	ID uuid.UUID
}

func (e *NotFoundArtistError) Error() string {
	return fmt.Sprintf("Couldn't find artist with id: %s.", e.ID)
}

// FailedStorageError wraps a storage-specific failure raised by the gateway.
type FailedStorageError struct {
	Err error
}

func (e *FailedStorageError) Error() string {
	return "Failed artist storage error occurred, contact support."
}

func (e *FailedStorageError) Unwrap() error { return e.Err }

// # Tiers

// ValidationError is the caller-correctable tier. Err is one of
// [ErrNullArtist], [*InvalidArtistError] or [*NotFoundArtistError].
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "Artist validation errors occurred, please try again."
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Violations returns the field violations behind the error, or nil when the
// failure was not rule-based (nil artist, unknown id).
func (e *ValidationError) Violations() *validate.Violations {
	var invalid *InvalidArtistError
	if errors.As(e.Err, &invalid) {
		return invalid.Violations
	}
	return nil
}

// DependencyError is the infrastructure tier. Its message never exposes the
// wrapped storage failure; use [errors.Unwrap] to reach it.
type DependencyError struct {
	Err error
}

func (e *DependencyError) Error() string {
	return "Artist dependency error occurred, contact support."
}

func (e *DependencyError) Unwrap() error { return e.Err }
