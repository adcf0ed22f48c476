// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package notice

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

// ListPublished returns published notices, newest first.
func (repository *PostgresRepository) ListPublished(context context.Context) ([]Record, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = TRUE
		ORDER BY %s DESC, %s DESC;
	`,
		schema.SiteNotice.ID,
		schema.SiteNotice.Title,
		schema.SiteNotice.PublishedOn,
		schema.SiteNotice.Tag,
		schema.SiteNotice.IsCancelled,
		schema.SiteNotice.Table,
		schema.SiteNotice.IsPublished,
		schema.SiteNotice.PublishedOn,
		schema.SiteNotice.CreatedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_notices")
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Title, &r.PublishedOn, &r.Tag, &r.IsCancelled); err != nil {
			return nil, dberr.Wrap(err, "scan_notice")
		}
		records = append(records, r)
	}

	return records, dberr.Wrap(rows.Err(), "iterate_notices")
}
