package flow

import "sync"

// Store keeps per-user sessions and the last completed profile snapshot.
// Sessions are process-local; nothing survives a restart.
type Store struct {
	mu        sync.RWMutex
	sessions  map[int64]*Session
	completed map[int64]Profile
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions:  make(map[int64]*Session),
		completed: make(map[int64]Profile),
	}
}

// Get returns a copy of the user's session if one exists.
func (s *Store) Get(userID int64) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// Reset replaces the user's session with a fresh one at the initial stage.
// The completed-profile snapshot, if any, is kept so "regenerate" keeps working.
func (s *Store) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = newSession()
}

// LastCompleted returns the user's most recent completed profile, if any.
func (s *Store) LastCompleted(userID int64) (Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.completed[userID]
	return p, ok
}

// Len reports how many sessions are currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// update runs fn against the user's session under the store lock, creating the
// session first when absent. fn receives whether the session already existed.
func (s *Store) update(userID int64, fn func(sess *Session, existed bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, existed := s.sessions[userID]
	if !existed {
		sess = newSession()
		s.sessions[userID] = sess
	}
	fn(sess, existed)
}

func (s *Store) saveCompleted(userID int64, p Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed[userID] = p
	s.sessions[userID] = newSession()
}
