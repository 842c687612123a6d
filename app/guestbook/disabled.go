package guestbook

import (
	"context"

	"github.com/digitalcpa/invitebot/core/logger"
	"log/slog"
)

type disabledStore struct{}

// NewDisabled returns a registry that records nothing and reads back empty.
// Used when no backend is configured; the bot keeps working without a ledger.
func NewDisabled() Store {
	return disabledStore{}
}

func (disabledStore) Backend() string { return "disabled" }

func (disabledStore) Append(ctx context.Context, rec Record) error {
	logger.SVCGuestbook.LogAttrs(ctx, slog.LevelDebug, "registry.skip",
		slog.String("backend", "disabled"),
		slog.Int64("user_id", rec.UserID),
	)
	return nil
}

func (disabledStore) FetchAll(ctx context.Context) ([]Record, error) {
	return nil, nil
}
