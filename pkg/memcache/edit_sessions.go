// pkg/mem/edit_sessions.go
package mem

import (
	"sync"
	"time"

	"housebase/internal/questionnaire"
)

// EditSessionStore parks open questionnaire editors between HTTP
// requests. Sessions are in-memory only and expire after their TTL;
// an expired editor simply has to be reopened.
type EditSessionStore interface {
	Put(sessionID string, session *questionnaire.EditSession, ttl time.Duration)

	// Get returns the live session for sessionID, or false if missing
	// or expired. Reading refreshes the expiry so an active editor does
	// not time out mid-edit.
	Get(sessionID string) (*questionnaire.EditSession, bool)

	Remove(sessionID string)
}

type sessionEntry struct {
	session   *questionnaire.EditSession
	ttl       time.Duration
	expiresAt time.Time
}

type EditSessions struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
}

func NewEditSessions() *EditSessions {
	return &EditSessions{
		data: make(map[string]sessionEntry),
	}
}

func (s *EditSessions) Put(sessionID string, session *questionnaire.EditSession, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = sessionEntry{
		session:   session,
		ttl:       ttl,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *EditSessions) Get(sessionID string) (*questionnaire.EditSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sessionID]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, sessionID) // cleanup expired
		return nil, false
	}
	e.expiresAt = time.Now().Add(e.ttl)
	s.data[sessionID] = e
	return e.session, true
}

func (s *EditSessions) Remove(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}
