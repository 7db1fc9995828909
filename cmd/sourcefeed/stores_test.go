package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sourcefeed/pkg/logger"
	"github.com/dmitrymomot/sourcefeed/svc/session"
)

func TestConfig_UsesPostgres(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		items   string
		session string
		want    bool
	}{
		{name: "memory only", items: itemDriverMemory, session: session.DriverMemory, want: false},
		{name: "postgres items", items: itemDriverPostgres, session: session.DriverRedis, want: true},
		{name: "postgres sessions", items: itemDriverMongo, session: session.DriverPostgres, want: true},
		{name: "redis and mongo", items: itemDriverMongo, session: session.DriverRedis, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{ItemStore: tt.items, Session: session.Config{Driver: tt.session}}
			assert.Equal(t, tt.want, cfg.usesPostgres())
		})
	}
}

func TestOpenStores(t *testing.T) {
	t.Parallel()

	t.Run("memory drivers", func(t *testing.T) {
		cfg := Config{ItemStore: itemDriverMemory, Session: session.Config{Driver: session.DriverMemory}}
		st, err := openStores(t.Context(), cfg, logger.NewNop(), storeOptions{})
		require.NoError(t, err)
		defer st.close()

		assert.IsType(t, &session.MemoryStore{}, st.sessions)
		assert.Empty(t, st.checks)
	})

	t.Run("unknown session driver", func(t *testing.T) {
		cfg := Config{ItemStore: itemDriverMemory, Session: session.Config{Driver: "etcd"}}
		_, err := openStores(t.Context(), cfg, logger.NewNop(), storeOptions{})
		assert.ErrorIs(t, err, errUnknownDriver)
	})

	t.Run("unknown item driver", func(t *testing.T) {
		cfg := Config{ItemStore: "s3", Session: session.Config{Driver: session.DriverMemory}}
		_, err := openStores(t.Context(), cfg, logger.NewNop(), storeOptions{})
		assert.ErrorIs(t, err, errUnknownDriver)
	})
}
