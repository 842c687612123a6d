// Package referral tracks who invited whom via /start deep links.
package referral

import "sync"

// Store is an in-memory inviter -> invitee-set mapping. Like sessions,
// referrals are process-local and lost on restart.
type Store struct {
	mu       sync.RWMutex
	invitees map[int64]map[int64]struct{}
}

// NewStore creates an empty referral store.
func NewStore() *Store {
	return &Store{invitees: make(map[int64]map[int64]struct{})}
}

// Add records that inviter brought invitee. Self-invites and repeat
// invitations are ignored; it reports whether the referral was counted.
func (s *Store) Add(inviter, invitee int64) bool {
	if inviter == 0 || invitee == 0 || inviter == invitee {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.invitees[inviter]
	if !ok {
		set = make(map[int64]struct{})
		s.invitees[inviter] = set
	}
	if _, seen := set[invitee]; seen {
		return false
	}
	set[invitee] = struct{}{}
	return true
}

// Count returns how many distinct invitees the inviter has brought.
func (s *Store) Count(inviter int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.invitees[inviter])
}
