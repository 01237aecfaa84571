// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestToPgx5DSN verifies scheme rewriting for golang-migrate.
*/
func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres_scheme", "postgres://u:p@db:5432/artgallery", "pgx5://u:p@db:5432/artgallery"},
		{"postgresql_scheme", "postgresql://u:p@db/artgallery", "pgx5://u:p@db/artgallery"},
		{"already_pgx5", "pgx5://u:p@db/artgallery", "pgx5://u:p@db/artgallery"},
		{"keyword_dsn", "host=db user=u dbname=artgallery", "host=db user=u dbname=artgallery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toPgx5DSN(tt.dsn))
		})
	}
}
