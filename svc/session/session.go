package session

import (
	"slices"
	"strings"
	"time"
)

// Session is a durable visitor identity together with the sources the
// visitor pinned. An empty Sources list means no filter is configured.
type Session struct {
	Identifier string    `json:"identifier"`
	Sources    []string  `json:"sources"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// New returns a session with the given identifier and no sources.
func New(identifier string) *Session {
	now := time.Now().UTC()
	return &Session{
		Identifier: identifier,
		Sources:    []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// HasSources reports whether a source filter is configured.
func (s *Session) HasSources() bool {
	return s != nil && len(s.Sources) > 0
}

// SetSources replaces the source filter. Blank entries are dropped and
// duplicates collapsed, keeping first-seen order.
func (s *Session) SetSources(sources []string) {
	clean := make([]string, 0, len(sources))
	for _, src := range sources {
		src = strings.TrimSpace(src)
		if src == "" || slices.Contains(clean, src) {
			continue
		}
		clean = append(clean, src)
	}
	s.Sources = clean
	s.UpdatedAt = time.Now().UTC()
}

func (s *Session) clone() *Session {
	c := *s
	c.Sources = slices.Clone(s.Sources)
	if c.Sources == nil {
		c.Sources = []string{}
	}
	return &c
}
