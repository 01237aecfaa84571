// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"

	"github.com/google/uuid"
)

// # Artist Data Access

// Storage defines the persistence contract the artist service depends on.
//
// Implementations report every failure as a [*dberr.Error] and must not
// persist anything partially when an insert fails.
type Storage interface {

	/*
		InsertArtist persists a new artist.

		Parameters:
		  - context: context.Context
		  - artist: *Artist (validated entity)

		Returns:
		  - *Artist: The stored form, including generated values
		  - error: *dberr.Error on constraint, connectivity or transient failures
	*/
	InsertArtist(context context.Context, artist *Artist) (*Artist, error)

	/*
		SelectArtistByID returns the artist with the given id.

		Parameters:
		  - context: context.Context
		  - id: uuid.UUID

		Returns:
		  - *Artist: Hydrated entity
		  - error: *dberr.Error; dberr.IsNotFound reports a missing row
	*/
	SelectArtistByID(context context.Context, id uuid.UUID) (*Artist, error)
}
