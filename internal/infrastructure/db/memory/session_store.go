package memory

import (
	"context"
	"sync"
	"time"

	"github.com/moitfe/portal-api/internal/core/domain"
)

type sessionEntry struct {
	user      domain.User
	expiresAt time.Time
}

// SessionStore keeps sessions in a map. Standalone-mode stand-in for the
// Redis store.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]sessionEntry)}
}

func (s *SessionStore) Save(_ context.Context, sid string, user domain.User, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = sessionEntry{user: user, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *SessionStore) Load(_ context.Context, sid string) (*domain.User, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, domain.ErrSessionNotFound
	}
	user := entry.user
	return &user, nil
}

func (s *SessionStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}
