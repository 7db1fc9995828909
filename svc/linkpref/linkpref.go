package linkpref

import (
	"math/rand/v2"
	"strings"
)

// Values of the link_target preference.
const (
	SameWindow = "0"
	NewWindow  = "1"
)

// RootPath is the redirect target when no referer is available.
const RootPath = "/"

// Store decides the link_target cookie value and the post-update redirect.
type Store struct {
	coin func() bool
}

// Option configures a Store.
type Option func(*Store)

// WithCoin replaces the random source used when no choice is given.
func WithCoin(fn func() bool) Option {
	return func(s *Store) {
		if fn != nil {
			s.coin = fn
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{coin: func() bool { return rand.IntN(2) == 1 }}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetChoice returns the cookie value to set. A supplied choice, even an
// empty one, is returned verbatim whatever the existing value. Without a
// choice the value is picked at random from SameWindow and NewWindow.
func (s *Store) SetChoice(choice, existing *string) string {
	if choice != nil {
		return *choice
	}
	if s.coin() {
		return NewWindow
	}
	return SameWindow
}

// RedirectTarget returns referer when it is non-blank, RootPath otherwise.
func (s *Store) RedirectTarget(referer string) string {
	if strings.TrimSpace(referer) == "" {
		return RootPath
	}
	return referer
}
