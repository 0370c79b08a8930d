package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// defaultIdleTTL is how long an untouched session survives before eviction.
const defaultIdleTTL = 2 * time.Hour

// cleanupInterval is how often the store sweeps for idle sessions.
const cleanupInterval = 10 * time.Minute

// Store maps session ids to live sessions. Sessions are never persisted;
// the store's lifetime bounds the lifetime of every document in it.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	idleTTL  time.Duration

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewStore creates a session store. A non-positive idleTTL uses the default.
// A background sweeper evicts sessions idle longer than the TTL.
func NewStore(idleTTL time.Duration) *Store {
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	s := &Store{
		sessions:      make(map[uuid.UUID]*Session),
		idleTTL:       idleTTL,
		cleanupTicker: time.NewTicker(cleanupInterval),
		cleanupStop:   make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

// Create makes a new empty session and registers it.
func (s *Store) Create() *Session {
	sess := New()
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session with the given id, or nil. A hit refreshes the
// session's idle clock.
func (s *Store) Get(id uuid.UUID) *Session {
	s.mu.RLock()
	sess := s.sessions[id]
	s.mu.RUnlock()
	if sess != nil {
		sess.touch()
	}
	return sess
}

// Delete removes the session with the given id; absent ids are a no-op.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Stop terminates the background sweeper.
func (s *Store) Stop() {
	s.cleanupTicker.Stop()
	close(s.cleanupStop)
}

func (s *Store) cleanupLoop() {
	for {
		select {
		case <-s.cleanupTicker.C:
			s.evictIdle()
		case <-s.cleanupStop:
			return
		}
	}
}

func (s *Store) evictIdle() {
	cutoff := time.Now().Add(-s.idleTTL)
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if sess.idleSince(cutoff) {
			delete(s.sessions, id)
		}
	}
}
