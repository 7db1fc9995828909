package catalog_test

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sourcefeed/svc/catalog"
)

func seeded() catalog.Option {
	return catalog.WithRand(rand.New(rand.NewPCG(1, 2)))
}

func TestNew(t *testing.T) {
	t.Parallel()

	c, err := catalog.New([]string{" a ", "b", "", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, c.Sources())

	_, err = catalog.New([]string{" ", ""})
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)

	assert.Equal(t, catalog.DefaultSources, catalog.Default().Sources())
}

func TestParse(t *testing.T) {
	t.Parallel()

	c, err := catalog.Parse(strings.NewReader("sources:\n  - alpha\n  - beta\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, c.Sources())

	_, err = catalog.Parse(strings.NewReader("sources: [unterminated"))
	assert.ErrorIs(t, err, catalog.ErrInvalidFile)

	_, err = catalog.Parse(strings.NewReader("sources: []\n"))
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sources:\n  - gamma\n"), 0o600))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"gamma"}, c.Sources())

	_, err = catalog.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, catalog.ErrInvalidFile)
}

func TestSample(t *testing.T) {
	t.Parallel()

	c := catalog.Default(seeded())

	got := c.Sample(4)
	assert.Len(t, got, 4)
	seen := map[string]bool{}
	for _, s := range got {
		assert.Contains(t, catalog.DefaultSources, s)
		assert.False(t, seen[s], "duplicate %s", s)
		seen[s] = true
	}

	assert.Len(t, c.Sample(100), len(catalog.DefaultSources))
	assert.Empty(t, c.Sample(-1))
}

func TestItems(t *testing.T) {
	t.Parallel()

	c := catalog.Default(seeded())
	items := c.Items(10)
	require.Len(t, items, 10)

	ids := map[string]bool{}
	for i, it := range items {
		assert.NotEmpty(t, it.ID)
		assert.False(t, ids[it.ID])
		ids[it.ID] = true
		assert.Contains(t, catalog.DefaultSources, it.Source)
		assert.Contains(t, it.URL, it.Source)
		if i > 0 {
			assert.True(t, it.PublishedAt.Before(items[i-1].PublishedAt))
		}
	}

	assert.Empty(t, c.Items(0))
}
