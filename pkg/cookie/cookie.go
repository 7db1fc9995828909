package cookie

import (
	"errors"
	"net/http"
	"time"
)

// DefaultMaxAge keeps visitor cookies for a year.
const DefaultMaxAge = 365 * 24 * 60 * 60

type Manager struct {
	defaults Config
}

// New returns a Manager with DefaultConfig adjusted by opts.
func New(opts ...Option) *Manager {
	return &Manager{defaults: DefaultConfig().with(opts)}
}

// NewFromConfig returns a Manager using cfg. An empty Path falls back to "/"
// and an unset SameSite to Lax.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	if cfg.Path == "" {
		cfg.Path = "/"
	}
	if cfg.SameSite == 0 {
		cfg.SameSite = http.SameSiteLaxMode
	}
	return &Manager{defaults: cfg.with(opts)}
}

// Set writes the cookie with the manager defaults, overridden by opts.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	attrs := m.defaults.with(opts)
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     attrs.Path,
		Domain:   attrs.Domain,
		MaxAge:   attrs.MaxAge,
		Secure:   attrs.Secure,
		HttpOnly: attrs.HttpOnly,
		SameSite: attrs.SameSite,
	})
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", errors.Join(ErrInvalidFormat, err)
	}
	return c.Value, nil
}

// Value returns a pointer to the cookie value, or nil when the cookie is absent.
// An empty cookie value is reported as absent.
func (m *Manager) Value(r *http.Request, name string) *string {
	v, err := m.Get(r, name)
	if err != nil || v == "" {
		return nil
	}
	return &v
}

func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	})
}
