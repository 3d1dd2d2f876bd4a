package booking

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session pairs a wizard with its id and a lock. Handlers must hold the
// lock for the whole read-modify-write of a request, since the wizard
// itself is not concurrency-safe.
type Session struct {
	ID        string
	Wizard    *Wizard
	ExpiresAt time.Time

	mu sync.Mutex
}

// Lock takes the per-session lock.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the per-session lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// SessionStore keeps in-flight wizard sessions in memory. Sessions are
// per-process state; losing them on restart only resets unfinished
// wizards, never stored bookings.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore constructs a store whose sessions expire after ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a fresh wizard session and returns it.
func (s *SessionStore) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	session := &Session{
		ID:        uuid.NewString(),
		Wizard:    NewWizard(now),
		ExpiresAt: now.Add(s.ttl),
	}
	s.sessions[session.ID] = session
	return session
}

// Get returns the session for id, refreshing its expiry. Expired sessions
// are dropped on access.
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("booking: unknown session %s", id)
	}
	now := s.now()
	if now.After(session.ExpiresAt) {
		delete(s.sessions, id)
		return nil, fmt.Errorf("booking: session %s expired", id)
	}
	session.ExpiresAt = now.Add(s.ttl)
	return session, nil
}

// Delete removes a session, typically after the confirmation step.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Sweep drops every expired session and returns how many were removed.
// The caller runs it on a ticker.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
