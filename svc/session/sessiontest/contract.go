// Package sessiontest holds the behavioural contract every session.Store
// implementation must satisfy.
package sessiontest

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sourcefeed/svc/session"
)

// RunStoreTests runs the contract against stores built by newStore. Each
// subtest receives a fresh store.
func RunStoreTests(t *testing.T, newStore func(t *testing.T) session.Store) {
	t.Helper()

	t.Run("create and get", func(t *testing.T) {
		store := newStore(t)
		sess := session.New("brave-otter-a1b2c3")

		require.NoError(t, store.Create(t.Context(), sess))

		got, err := store.Get(t.Context(), "brave-otter-a1b2c3")
		require.NoError(t, err)
		assert.Equal(t, sess.Identifier, got.Identifier)
		assert.Empty(t, got.Sources)
		assert.NotNil(t, got.Sources)
		assert.WithinDuration(t, sess.CreatedAt, got.CreatedAt, time.Second)
	})

	t.Run("get missing", func(t *testing.T) {
		store := newStore(t)
		_, err := store.Get(t.Context(), "missing")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("create duplicate", func(t *testing.T) {
		store := newStore(t)
		first := session.New("dup")
		first.SetSources([]string{"sourceA"})
		require.NoError(t, store.Create(t.Context(), first))

		err := store.Create(t.Context(), session.New("dup"))
		assert.ErrorIs(t, err, session.ErrSessionExists)

		got, err := store.Get(t.Context(), "dup")
		require.NoError(t, err)
		assert.Equal(t, []string{"sourceA"}, got.Sources, "original record untouched")
	})

	t.Run("create invalid", func(t *testing.T) {
		store := newStore(t)
		assert.ErrorIs(t, store.Create(t.Context(), nil), session.ErrInvalidSession)
		assert.ErrorIs(t, store.Create(t.Context(), session.New("")), session.ErrInvalidSession)
	})

	t.Run("update sources", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Create(t.Context(), session.New("upd")))

		sess, err := store.Get(t.Context(), "upd")
		require.NoError(t, err)
		sess.SetSources([]string{"sourceA", "sourceB"})
		require.NoError(t, store.Update(t.Context(), sess))

		got, err := store.Get(t.Context(), "upd")
		require.NoError(t, err)
		assert.Equal(t, []string{"sourceA", "sourceB"}, got.Sources)
		assert.Equal(t, "upd", got.Identifier)

		sess.SetSources(nil)
		require.NoError(t, store.Update(t.Context(), sess))
		got, err = store.Get(t.Context(), "upd")
		require.NoError(t, err)
		assert.Empty(t, got.Sources)
	})

	t.Run("update missing", func(t *testing.T) {
		store := newStore(t)
		err := store.Update(t.Context(), session.New("ghost"))
		assert.ErrorIs(t, err, session.ErrSessionNotFound)

		_, err = store.Get(t.Context(), "ghost")
		assert.ErrorIs(t, err, session.ErrSessionNotFound, "update must not create")
	})

	t.Run("returned session is detached", func(t *testing.T) {
		store := newStore(t)
		sess := session.New("iso")
		sess.SetSources([]string{"sourceA"})
		require.NoError(t, store.Create(t.Context(), sess))
		sess.Sources[0] = "mutated"

		got, err := store.Get(t.Context(), "iso")
		require.NoError(t, err)
		got.Sources[0] = "mutated-again"

		again, err := store.Get(t.Context(), "iso")
		require.NoError(t, err)
		assert.Equal(t, []string{"sourceA"}, again.Sources)
	})

	t.Run("concurrent create yields one winner", func(t *testing.T) {
		store := newStore(t)

		const workers = 8
		var (
			wg      sync.WaitGroup
			created atomic.Int32
			exists  atomic.Int32
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				switch err := store.Create(t.Context(), session.New("race")); {
				case err == nil:
					created.Add(1)
				case assert.ErrorIs(t, err, session.ErrSessionExists):
					exists.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), created.Load())
		assert.Equal(t, int32(workers-1), exists.Load())
	})
}
