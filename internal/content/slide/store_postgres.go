// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slide

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/masjid/internal/platform/database/schema"
	"github.com/taibuivan/masjid/internal/platform/dberr"
	"github.com/taibuivan/masjid/pkg/pointer"
)

// PostgresRepository implements [Repository] using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListPublished returns published slides in sort order.
func (repository *PostgresRepository) ListPublished(context context.Context) ([]Slide, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = TRUE
		ORDER BY %s ASC, %s ASC;
	`,
		schema.SiteSlide.ID,
		schema.SiteSlide.Title,
		schema.SiteSlide.Description,
		schema.SiteSlide.Image,
		schema.SiteSlide.MobileImage,
		schema.SiteSlide.PrimaryText,
		schema.SiteSlide.PrimaryHref,
		schema.SiteSlide.SecondaryText,
		schema.SiteSlide.SecondaryHref,
		schema.SiteSlide.Table,
		schema.SiteSlide.IsPublished,
		schema.SiteSlide.SortOrder,
		schema.SiteSlide.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_slides")
	}
	defer rows.Close()

	slides := []Slide{}
	for rows.Next() {
		var s Slide
		if err := rows.Scan(
			&s.ID, &s.Title, &s.Description, &s.Image, &s.MobileImage,
			&s.PrimaryButton.Text, &s.PrimaryButton.Href,
			&s.SecondaryButton.Text, &s.SecondaryButton.Href,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_slide")
		}
		s.MobileImage = pointer.NilIfBlank(s.MobileImage)
		slides = append(slides, s)
	}

	return slides, dberr.Wrap(rows.Err(), "iterate_slides")
}
