package session_test

import (
	"testing"

	"github.com/dmitrymomot/sourcefeed/svc/session"
	"github.com/dmitrymomot/sourcefeed/svc/session/sessiontest"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	sessiontest.RunStoreTests(t, func(t *testing.T) session.Store {
		return session.NewMemoryStore()
	})
}
