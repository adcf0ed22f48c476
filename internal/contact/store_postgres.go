// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

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

// Insert appends a message to the inbox.
func (repository *PostgresRepository) Insert(context context.Context, message *Message) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`,
		schema.SiteContactMessage.Table,
		schema.SiteContactMessage.ID,
		schema.SiteContactMessage.Name,
		schema.SiteContactMessage.Email,
		schema.SiteContactMessage.Subject,
		schema.SiteContactMessage.Message,
		schema.SiteContactMessage.IPAddress,
		schema.SiteContactMessage.CreatedAt,
	)

	_, err := repository.db.Exec(context, query,
		message.ID, message.Name, message.Email, message.Subject,
		message.Body, message.IPAddress, message.CreatedAt,
	)
	return dberr.Wrap(err, "insert_contact_message")
}
