package session

import (
	"context"
	"sync"
)

// MemoryStore keeps sessions in a map guarded by a RWMutex.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (m *MemoryStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.Identifier == "" {
		return ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[session.Identifier]; exists {
		return ErrSessionExists
	}
	m.sessions[session.Identifier] = session.clone()
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, identifier string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[identifier]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session.clone(), nil
}

func (m *MemoryStore) Update(ctx context.Context, session *Session) error {
	if session == nil || session.Identifier == "" {
		return ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, exists := m.sessions[session.Identifier]
	if !exists {
		return ErrSessionNotFound
	}

	updated := stored.clone()
	updated.Sources = session.clone().Sources
	updated.UpdatedAt = session.UpdatedAt
	m.sessions[session.Identifier] = updated
	return nil
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
