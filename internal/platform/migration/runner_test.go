// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/masjid/data"
	"github.com/taibuivan/masjid/internal/platform/migration"
)

/*
TestPgxURL verifies the scheme rewrite for golang-migrate's pgx driver.
*/
func TestPgxURL(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres", "postgres://masjid@db:5432/masjid", "pgx5://masjid@db:5432/masjid"},
		{"postgresql", "postgresql://db/masjid?sslmode=disable", "pgx5://db/masjid?sslmode=disable"},
		{"already_pgx5", "pgx5://db/masjid", "pgx5://db/masjid"},
		{"keyword_dsn", "host=db dbname=masjid", "host=db dbname=masjid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, migration.PgxURL(tt.dsn))
		})
	}
}

/*
TestEmbeddedMigrations_Paired verifies every up file has a matching down file.
*/
func TestEmbeddedMigrations_Paired(t *testing.T) {
	ups, err := fs.Glob(data.Migrations, data.MigrationsDir+"/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(data.Migrations, data.MigrationsDir+"/*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}
