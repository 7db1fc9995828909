package session

import "context"

// Store persists sessions keyed by identifier.
type Store interface {
	// Create inserts a new session atomically.
	// Returns ErrSessionExists when the identifier is taken.
	Create(ctx context.Context, session *Session) error

	// Get returns the session or ErrSessionNotFound.
	Get(ctx context.Context, identifier string) (*Session, error)

	// Update persists Sources and UpdatedAt of an existing session.
	// Returns ErrSessionNotFound when the identifier is unknown.
	Update(ctx context.Context, session *Session) error
}
