// Package guestbook is the guest registry: an append-only ledger of
// completed registrations used later for the prize draw. Backends are
// interchangeable; the bot selects one at startup.
package guestbook

import (
	"context"
	"errors"
)

// Record is one completed registration.
type Record struct {
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Company   string `db:"company"`
	UserID    int64  `db:"user_id"`
}

// ErrUnavailable means the backing registry could not be reached.
var ErrUnavailable = errors.New("guestbook: registry unavailable")

// Store is the guest registry collaborator. Append is best-effort from the
// caller's point of view; FetchAll returns every recorded guest, duplicates
// included (a user may register more than once).
type Store interface {
	Append(ctx context.Context, rec Record) error
	FetchAll(ctx context.Context) ([]Record, error)
	Backend() string
}
