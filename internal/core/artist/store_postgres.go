// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/artgallery/internal/core/user"
	"github.com/taibuivan/artgallery/internal/platform/database/schema"
	"github.com/taibuivan/artgallery/internal/platform/dberr"
)

// PostgresStorage implements [Storage] on the core.artist table.
type PostgresStorage struct {
	db *pgxpool.Pool
}

// NewPostgresStorage creates a new PostgreSQL implementation of [Storage].
func NewPostgresStorage(db *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{db: db}
}

var (
	artistColumns = strings.Join(schema.CoreArtist.Columns(), ", ")

	insertArtistQuery = fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s
	`, schema.CoreArtist.Table, artistColumns, artistColumns)

	// Audit users are weak references: a missing account leaves the name NULL.
	selectArtistQuery = fmt.Sprintf(`
		SELECT %s, creator.%s, updater.%s
		FROM %s a
		LEFT JOIN %s creator ON creator.%s = a.%s
		LEFT JOIN %s updater ON updater.%s = a.%s
		WHERE a.%s = $1
	`,
		qualified("a", schema.CoreArtist.Columns()), schema.UserAccount.DisplayName, schema.UserAccount.DisplayName,
		schema.CoreArtist.Table,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.CoreArtist.CreatedBy,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.CoreArtist.UpdatedBy,
		schema.CoreArtist.ID,
	)
)

// InsertArtist writes the artist in a single statement and returns the row
// as stored.
func (storage *PostgresStorage) InsertArtist(context context.Context, a *Artist) (*Artist, error) {
	row := storage.db.QueryRow(context, insertArtistQuery,
		a.ID, a.FirstName, a.MiddleName, a.LastName, a.Email, a.ContactNumber,
		int16(a.Status), a.CreatedBy, a.UpdatedBy, a.CreatedDate, a.UpdatedDate,
	)

	stored := &Artist{}
	if err := scanArtist(row, stored); err != nil {
		return nil, dberr.Wrap(err, "insert_artist")
	}
	return stored, nil
}

// SelectArtistByID reads one artist row and resolves its audit users.
func (storage *PostgresStorage) SelectArtistByID(context context.Context, id uuid.UUID) (*Artist, error) {
	var (
		stored      = &Artist{}
		creatorName *string
		updaterName *string
	)

	err := scanArtist(storage.db.QueryRow(context, selectArtistQuery, id), stored, &creatorName, &updaterName)
	if err != nil {
		return nil, dberr.Wrap(err, "select_artist")
	}

	stored.CreatedByUser = resolveUser(stored.CreatedBy, creatorName)
	stored.UpdatedByUser = resolveUser(stored.UpdatedBy, updaterName)
	return stored, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanArtist reads the artist columns in table order followed by any extra
// destinations the query selects.
func scanArtist(row rowScanner, a *Artist, extra ...any) error {
	var status int16
	destinations := append([]any{
		&a.ID, &a.FirstName, &a.MiddleName, &a.LastName, &a.Email, &a.ContactNumber,
		&status, &a.CreatedBy, &a.UpdatedBy, &a.CreatedDate, &a.UpdatedDate,
	}, extra...)

	err := row.Scan(destinations...)
	a.Status = Status(status)
	return err
}

func resolveUser(id uuid.UUID, displayName *string) *user.User {
	if displayName == nil {
		return nil
	}
	return &user.User{ID: id, DisplayName: *displayName}
}

func qualified(alias string, columns []string) string {
	prefixed := make([]string, len(columns))
	for i, column := range columns {
		prefixed[i] = alias + "." + column
	}
	return strings.Join(prefixed, ", ")
}
