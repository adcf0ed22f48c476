// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sermon

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

// ListPublished returns published sermons, most recent first.
func (repository *PostgresRepository) ListPublished(context context.Context) ([]Sermon, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = TRUE
		ORDER BY %s DESC, %s DESC;
	`,
		schema.SiteSermon.ID,
		schema.SiteSermon.Slug,
		schema.SiteSermon.Title,
		schema.SiteSermon.Speaker,
		schema.SiteSermon.Series,
		schema.SiteSermon.Description,
		schema.SiteSermon.Thumbnail,
		schema.SiteSermon.MediaURL,
		schema.SiteSermon.DeliveredOn,
		schema.SiteSermon.DurationSec,
		schema.SiteSermon.Table,
		schema.SiteSermon.IsPublished,
		schema.SiteSermon.DeliveredOn,
		schema.SiteSermon.CreatedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sermons")
	}
	defer rows.Close()

	var sermons []Sermon
	for rows.Next() {
		var s Sermon
		if err := rows.Scan(
			&s.ID, &s.Slug, &s.Title, &s.Speaker, &s.Series, &s.Description,
			&s.Thumbnail, &s.MediaURL, &s.DeliveredOn, &s.DurationSec,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_sermon")
		}
		sermons = append(sermons, s)
	}

	return sermons, dberr.Wrap(rows.Err(), "iterate_sermons")
}
