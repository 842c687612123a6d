package referral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddCountsDistinctInvitees(t *testing.T) {
	s := NewStore()

	assert.True(t, s.Add(1, 2))
	assert.True(t, s.Add(1, 3))
	assert.Equal(t, 2, s.Count(1))
	assert.Equal(t, 0, s.Count(2))
}

func TestAddRejectsSelfInvite(t *testing.T) {
	s := NewStore()

	assert.False(t, s.Add(5, 5))
	assert.Equal(t, 0, s.Count(5))
}

func TestAddDeduplicatesInvitee(t *testing.T) {
	s := NewStore()

	assert.True(t, s.Add(1, 2))
	assert.False(t, s.Add(1, 2))
	assert.Equal(t, 1, s.Count(1))
}

func TestAddRejectsZeroIDs(t *testing.T) {
	s := NewStore()

	assert.False(t, s.Add(0, 2))
	assert.False(t, s.Add(1, 0))
}
