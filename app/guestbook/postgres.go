package guestbook

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type postgresStore struct {
	db *sqlx.DB
}

// NewPostgres wraps an already connected and migrated database in a registry.
func NewPostgres(db *sqlx.DB) Store {
	return &postgresStore{db: db}
}

func (p *postgresStore) Backend() string { return "postgres" }

func (p *postgresStore) Append(ctx context.Context, rec Record) error {
	const q = `INSERT INTO guests (first_name, last_name, company, user_id) VALUES ($1, $2, $3, $4)`
	if _, err := p.db.ExecContext(ctx, q, rec.FirstName, rec.LastName, rec.Company, rec.UserID); err != nil {
		return fmt.Errorf("%w: insert: %v", ErrUnavailable, err)
	}
	return nil
}

func (p *postgresStore) FetchAll(ctx context.Context) ([]Record, error) {
	const q = `SELECT first_name, last_name, company, user_id FROM guests ORDER BY id`
	var records []Record
	if err := p.db.SelectContext(ctx, &records, q); err != nil {
		return nil, fmt.Errorf("%w: select: %v", ErrUnavailable, err)
	}
	return records, nil
}
