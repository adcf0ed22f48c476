// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/masjid/internal/platform/database/schema"
	"github.com/taibuivan/masjid/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListValues returns every setting as a key/value map.
func (repository *PostgresRepository) ListValues(context context.Context) (map[string]string, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s;`,
		schema.SiteSetting.Key,
		schema.SiteSetting.Value,
		schema.SiteSetting.Table,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_settings")
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, dberr.Wrap(err, "scan_setting")
		}
		values[key] = value
	}

	return values, dberr.Wrap(rows.Err(), "iterate_settings")
}
