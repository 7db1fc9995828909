package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/sourcefeed/pkg/logger"
	"github.com/dmitrymomot/sourcefeed/pkg/randomname"
)

// Outcome describes how Resolve obtained the session.
type Outcome int

const (
	// ResolvedExisting means the session cookie named a stored session.
	ResolvedExisting Outcome = iota
	// CreatedNew means a session with a fresh identifier was created.
	CreatedNew
	// Synced means the explicit sync identifier was looked up or created.
	Synced
)

func (o Outcome) String() string {
	switch o {
	case ResolvedExisting:
		return "resolved_existing"
	case CreatedNew:
		return "created_new"
	case Synced:
		return "synced"
	default:
		return "unknown"
	}
}

// Resolution is the effective session of a request.
type Resolution struct {
	Session *Session
	Outcome Outcome
	// Created is true when this call inserted the session.
	Created bool
	// EmitWelcome asks the caller to set the welcomed marker.
	EmitWelcome bool
}

// maxCreateAttempts bounds create conflicts, both fresh identifier
// collisions and lost sync races.
const maxCreateAttempts = 3

// Resolver turns the sync parameter and session cookie of a request into
// the effective session.
type Resolver struct {
	store    Store
	generate func() string
	log      *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithGenerator overrides the fresh identifier generator.
func WithGenerator(fn func() string) ResolverOption {
	return func(r *Resolver) {
		if fn != nil {
			r.generate = fn
		}
	}
}

// WithLogger sets the logger used for session creation events.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

func NewResolver(store Store, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store:    store,
		generate: randomname.WithSuffix,
		log:      logger.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve applies, in order:
//  1. a present syncParam is looked up and created when missing (EmitWelcome);
//  2. a present sessionCookie naming a stored session is reused;
//  3. otherwise a session with a fresh identifier is created.
//
// Lookup misses are not errors. Store failures are returned unchanged.
func (r *Resolver) Resolve(ctx context.Context, syncParam, sessionCookie *string) (Resolution, error) {
	if id, ok := present(syncParam); ok {
		sess, created, err := r.getOrCreate(ctx, id)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Session: sess, Outcome: Synced, Created: created, EmitWelcome: true}, nil
	}

	if id, ok := present(sessionCookie); ok {
		sess, err := r.store.Get(ctx, id)
		switch {
		case err == nil:
			return Resolution{Session: sess, Outcome: ResolvedExisting}, nil
		case !errors.Is(err, ErrSessionNotFound):
			return Resolution{}, err
		}
	}

	sess, err := r.createFresh(ctx)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Session: sess, Outcome: CreatedNew, Created: true}, nil
}

// Lookup returns the session named by identifier, or nil when it is absent
// or unknown.
func (r *Resolver) Lookup(ctx context.Context, identifier *string) (*Session, error) {
	id, ok := present(identifier)
	if !ok {
		return nil, nil
	}
	sess, err := r.store.Get(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, nil
	}
	return sess, err
}

// getOrCreate returns the session named id, creating it when missing. A
// create that loses a race re-reads the winner; if that read misses too the
// create is attempted again.
func (r *Resolver) getOrCreate(ctx context.Context, id string) (*Session, bool, error) {
	for range maxCreateAttempts {
		sess, err := r.store.Get(ctx, id)
		if err == nil {
			return sess, false, nil
		}
		if !errors.Is(err, ErrSessionNotFound) {
			return nil, false, err
		}

		sess = New(id)
		err = r.store.Create(ctx, sess)
		if err == nil {
			r.log.DebugContext(ctx, "session created from sync", logger.SessionID(id))
			return sess, true, nil
		}
		if !errors.Is(err, ErrSessionExists) {
			return nil, false, err
		}
	}
	return nil, false, ErrIdentifierGeneration
}

func (r *Resolver) createFresh(ctx context.Context) (*Session, error) {
	for range maxCreateAttempts {
		sess := New(r.generate())
		err := r.store.Create(ctx, sess)
		if err == nil {
			r.log.DebugContext(ctx, "session created", logger.SessionID(sess.Identifier))
			return sess, nil
		}
		if !errors.Is(err, ErrSessionExists) {
			return nil, err
		}
	}
	return nil, ErrIdentifierGeneration
}

func present(v *string) (string, bool) {
	if v == nil || *v == "" {
		return "", false
	}
	return *v, true
}
