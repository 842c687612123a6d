package draw

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalcpa/invitebot/app/guestbook"
)

func guests(n int) []guestbook.Record {
	out := make([]guestbook.Record, n)
	for i := range out {
		out[i] = guestbook.Record{
			FirstName: fmt.Sprintf("Guest%d", i+1),
			UserID:    int64(i + 1),
		}
	}
	return out
}

func TestSelectEmptyRegistry(t *testing.T) {
	_, err := Select(nil, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSelectSingleGuestWinsImmediately(t *testing.T) {
	all := guests(1)
	res, err := Select(all, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Empty(t, res.Reveal)
	assert.Equal(t, all[0], res.Winner)
}

func TestSelectSampleSizeAndUniqueness(t *testing.T) {
	all := guests(20)
	res, err := Select(all, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Len(t, res.Reveal, sampleSize-1)

	seen := map[int64]bool{}
	for _, rec := range append(res.Reveal, res.Winner) {
		assert.False(t, seen[rec.UserID], "guest %d sampled twice", rec.UserID)
		seen[rec.UserID] = true
	}
}

func TestSelectFewerGuestsThanSample(t *testing.T) {
	all := guests(3)
	res, err := Select(all, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	assert.Len(t, res.Reveal, 2)

	seen := map[int64]bool{}
	for _, rec := range append(res.Reveal, res.Winner) {
		seen[rec.UserID] = true
	}
	assert.Len(t, seen, 3, "every registered guest takes part when fewer than the sample size")
}

func TestSelectDeterministicForSeed(t *testing.T) {
	all := guests(10)

	a, err := Select(all, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := Select(all, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
