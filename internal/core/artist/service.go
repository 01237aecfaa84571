// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/taibuivan/artgallery/internal/platform/dberr"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Logger records rejected and failed operations.
type Logger interface {
	LogError(err error)
	LogCritical(err error)
}

// # Service

// Service is the artist foundation service. It holds no mutable state and is
// safe for concurrent use as long as its collaborators are.
type Service struct {
	storage Storage
	clock   Clock
	logger  Logger
}

// NewService wires the service to its collaborators.
func NewService(storage Storage, clock Clock, logger Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

/*
AddArtist validates artist and, when every rule holds, inserts it.

Returns:
  - *Artist: Exactly what the storage returned
  - error: *ValidationError, *DependencyError, or an untranslated error
*/
func (service *Service) AddArtist(ctx context.Context, artist *Artist) (*Artist, error) {
	return tryCatch(service, func() (*Artist, error) {
		if err := service.validateArtistOnAdd(artist); err != nil {
			return nil, err
		}
		return service.storage.InsertArtist(ctx, artist)
	})
}

/*
RetrieveArtistByID returns the stored artist with the given id.

Returns:
  - *Artist: Exactly what the storage returned
  - error: *ValidationError (missing id, unknown artist), *DependencyError
*/
func (service *Service) RetrieveArtistByID(ctx context.Context, id uuid.UUID) (*Artist, error) {
	return tryCatch(service, func() (*Artist, error) {
		if err := validateArtistID(id); err != nil {
			return nil, err
		}

		artist, err := service.storage.SelectArtistByID(ctx, id)
		if dberr.IsNotFound(err) {
			return nil, &NotFoundArtistError{ID: id}
		}
		return artist, err
	})
}

// # Error Translation

// tryCatch runs operation and converts its failure into one of the two tiers,
// logging it exactly once. Errors it does not recognise pass through as is.
func tryCatch(service *Service, operation func() (*Artist, error)) (*Artist, error) {
	artist, err := operation()
	if err == nil {
		return artist, nil
	}

	var (
		invalid  *InvalidArtistError
		notFound *NotFoundArtistError
		storage  *dberr.Error
	)

	switch {
	case errors.Is(err, ErrNullArtist), errors.As(err, &invalid), errors.As(err, &notFound):
		return nil, service.validationFailure(err)
	case errors.As(err, &storage):
		return nil, service.dependencyFailure(&FailedStorageError{Err: err})
	default:
		return nil, err
	}
}

func (service *Service) validationFailure(err error) *ValidationError {
	failure := &ValidationError{Err: err}
	service.logger.LogError(failure)
	return failure
}

func (service *Service) dependencyFailure(err error) *DependencyError {
	failure := &DependencyError{Err: err}
	service.logger.LogCritical(failure)
	return failure
}
