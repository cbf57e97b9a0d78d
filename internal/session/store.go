package session

import (
	"context"
	"sync"
	"time"

	"donorjourney/internal/logging"

	"github.com/google/uuid"
)

// Store keeps one Controller per browser session, keyed by a random uuid.
// Controllers idle longer than the TTL are evicted by Cleanup unless a
// generation is in flight.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Controller
	gen      Generator
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates an empty store. A zero ttl disables eviction.
func NewStore(gen Generator, ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Controller),
		gen:      gen,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the controller for id.
func (s *Store) Get(id string) (*Controller, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.sessions[id]
	return c, ok
}

// Create registers a new controller under a fresh id.
func (s *Store) Create() (string, *Controller) {
	id := uuid.NewString()
	c := NewController(s.gen)
	c.now = s.now
	c.lastActive = s.now()

	s.mu.Lock()
	s.sessions[id] = c
	s.mu.Unlock()

	logging.SessionDebug("Session created: %s", id)
	return id, c
}

// Resolve returns the controller for id, creating one under a new id when id
// is empty or unknown. created reports whether a new session was made.
func (s *Store) Resolve(id string) (string, *Controller, bool) {
	if id != "" {
		if c, ok := s.Get(id); ok {
			return id, c, false
		}
	}
	newID, c := s.Create()
	return newID, c, true
}

// Delete forgets a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of tracked sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Cleanup evicts idle sessions and returns how many were removed.
func (s *Store) Cleanup() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, c := range s.sessions {
		last, busy := c.idleSince()
		if !busy && last.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		logging.SessionDebug("Evicted %d idle sessions", removed)
	}
	return removed
}

// Run calls Cleanup every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Cleanup()
		}
	}
}
