package visit

import (
	"context"

	"github.com/dmitrymomot/sourcefeed/svc/session"
)

// State is the terminal outcome of a visit.
type State int

const (
	// NotWelcomed: redirect to the welcome step, nothing resolved.
	NotWelcomed State = iota
	// Anonymous: served without a session, nothing resolved.
	Anonymous
	// ResolvedExisting: served with the session named by the cookie.
	ResolvedExisting
	// CreatedNew: served with a fresh session, session cookie emitted.
	CreatedNew
	// SyncRequested: served with the synced session, both cookies emitted.
	SyncRequested
)

func (s State) String() string {
	switch s {
	case NotWelcomed:
		return "not_welcomed"
	case Anonymous:
		return "anonymous"
	case ResolvedExisting:
		return "resolved_existing"
	case CreatedNew:
		return "created_new"
	case SyncRequested:
		return "sync_requested"
	default:
		return "unknown"
	}
}

// Request carries the request inputs the gate depends on.
type Request struct {
	SyncParam      *string
	WelcomedCookie *string
	SessionCookie  *string
	// AllowAnonymous lets a not-welcomed visitor through without a session
	// instead of redirecting.
	AllowAnonymous bool
}

// Decision is the gate's verdict. Session is nil for NotWelcomed and
// Anonymous.
type Decision struct {
	State   State
	Session *session.Session
	Cookies []Cookie
}

// Redirect reports whether the visitor must be sent to the welcome step.
func (d Decision) Redirect() bool {
	return d.State == NotWelcomed
}

// Gate composes the welcomed check with session resolution.
type Gate struct {
	resolver *session.Resolver
}

func NewGate(resolver *session.Resolver) *Gate {
	return &Gate{resolver: resolver}
}

// Visit decides the outcome of a feed request.
//
// A sync parameter always resolves and welcomes the visitor. Otherwise a
// visitor without a truthy welcomed cookie is redirected (or served
// anonymously when allowed) and no session is touched.
func (g *Gate) Visit(ctx context.Context, req Request) (Decision, error) {
	if req.SyncParam == nil || *req.SyncParam == "" {
		if !IsWelcomed(req.WelcomedCookie) {
			if req.AllowAnonymous {
				return Decision{State: Anonymous}, nil
			}
			return Decision{State: NotWelcomed}, nil
		}
	}

	res, err := g.resolver.Resolve(ctx, req.SyncParam, req.SessionCookie)
	if err != nil {
		return Decision{}, err
	}

	d := Decision{Session: res.Session}
	switch res.Outcome {
	case session.Synced:
		d.State = SyncRequested
		d.Cookies = []Cookie{welcomedCookie(), sessionCookie(res.Session.Identifier)}
	case session.CreatedNew:
		d.State = CreatedNew
		d.Cookies = []Cookie{sessionCookie(res.Session.Identifier)}
	default:
		d.State = ResolvedExisting
	}
	return d, nil
}

// Welcome runs the welcome step: the session is resolved as for a feed
// request and both cookies are always emitted.
func (g *Gate) Welcome(ctx context.Context, req Request) (Decision, error) {
	res, err := g.resolver.Resolve(ctx, req.SyncParam, req.SessionCookie)
	if err != nil {
		return Decision{}, err
	}

	d := Decision{
		Session: res.Session,
		Cookies: []Cookie{welcomedCookie(), sessionCookie(res.Session.Identifier)},
	}
	switch res.Outcome {
	case session.Synced:
		d.State = SyncRequested
	case session.CreatedNew:
		d.State = CreatedNew
	default:
		d.State = ResolvedExisting
	}
	return d, nil
}

// Current returns the session named by the cookie of a welcomed visitor, or
// nil when the visitor is not welcomed or the session is unknown.
func (g *Gate) Current(ctx context.Context, req Request) (*session.Session, error) {
	if !IsWelcomed(req.WelcomedCookie) {
		return nil, nil
	}
	return g.resolver.Lookup(ctx, req.SessionCookie)
}
