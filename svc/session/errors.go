package session

import "errors"

var (
	// ErrSessionNotFound indicates no session exists for the identifier
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionExists indicates the identifier is already taken
	ErrSessionExists = errors.New("session.exists")

	// ErrInvalidSession indicates a nil session or an empty identifier
	ErrInvalidSession = errors.New("session.invalid")

	// ErrStoreFailure wraps errors returned by the backing store
	ErrStoreFailure = errors.New("session.store_failure")

	// ErrIdentifierGeneration indicates no free identifier could be generated
	ErrIdentifierGeneration = errors.New("session.identifier_generation_failed")
)
