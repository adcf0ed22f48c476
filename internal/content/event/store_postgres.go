// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"context"
	"fmt"
	"time"

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

// ListUpcoming returns events starting at or after from.
func (repository *PostgresRepository) ListUpcoming(context context.Context, from time.Time, limit int) ([]Event, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s >= $1
		ORDER BY %s ASC
		LIMIT $2;
	`,
		schema.SiteEvent.ID,
		schema.SiteEvent.Title,
		schema.SiteEvent.Description,
		schema.SiteEvent.Location,
		schema.SiteEvent.ImageURL,
		schema.SiteEvent.StartsAt,
		schema.SiteEvent.EndsAt,
		schema.SiteEvent.Table,
		schema.SiteEvent.StartsAt,
		schema.SiteEvent.StartsAt,
	)

	rows, err := repository.db.Query(context, query, from, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list_upcoming_events")
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.ImageURL, &e.StartsAt, &e.EndsAt); err != nil {
			return nil, dberr.Wrap(err, "scan_event")
		}
		events = append(events, e)
	}

	return events, dberr.Wrap(rows.Err(), "iterate_events")
}
