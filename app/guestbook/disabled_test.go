package guestbook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An unconfigured registry degrades silently: writes vanish without error and
// reads come back empty, so the bot keeps working with no ledger at all.
func TestDisabledStoreSilentDegrade(t *testing.T) {
	ctx := context.Background()
	s := NewDisabled()

	assert.Equal(t, "disabled", s.Backend())

	rec := Record{FirstName: "Anna", LastName: "Petrova", Company: "Acme Corp", UserID: 42}
	require.NoError(t, s.Append(ctx, rec))

	got, err := s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Still empty after a write: nothing is retained anywhere.
	require.NoError(t, s.Append(ctx, rec))
	got, err = s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
