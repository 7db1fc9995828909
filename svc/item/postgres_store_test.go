package item_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sourcefeed/migrations"
	"github.com/dmitrymomot/sourcefeed/pkg/logger"
	"github.com/dmitrymomot/sourcefeed/pkg/pg"
	"github.com/dmitrymomot/sourcefeed/svc/item"
)

func TestPostgresStore(t *testing.T) {
	url := os.Getenv("SOURCEFEED_TEST_PG_URL")
	if url == "" {
		t.Skip("SOURCEFEED_TEST_PG_URL is not set")
	}

	cfg := pg.Config{ConnectionString: url, RetryAttempts: 1, MigrationsTable: "sourcefeed_migrations"}
	pool, err := pg.Connect(t.Context(), cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, pg.Migrate(t.Context(), pool, migrations.FS, cfg, logger.NewNop()))

	_, err = pool.Exec(t.Context(), "TRUNCATE items")
	require.NoError(t, err)

	store := item.NewPostgresStore(pool)
	require.NoError(t, store.Insert(t.Context(), fixtures()...))
	require.NoError(t, store.Insert(t.Context(), fixtures()[0]), "re-inserting an id is ignored")

	all, err := store.All(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(all))

	filtered, err := store.BySources(t.Context(), []string{"sourceA", "sourceC"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "4"}, ids(filtered))

	none, err := store.BySources(t.Context(), nil)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}
