package catalog

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/sourcefeed/svc/item"
)

var (
	ErrEmptyCatalog = errors.New("catalog.empty")
	ErrInvalidFile  = errors.New("catalog.invalid_file")
)

// DefaultSources is the built-in set of source tags used for fixtures.
var DefaultSources = []string{
	"hackernews",
	"lobsters",
	"reddit",
	"github",
	"producthunt",
	"designernews",
	"slashdot",
	"arstechnica",
	"theverge",
	"techcrunch",
}

// Catalog is a finite set of known source tags. It exists for fixture
// generation only.
type Catalog struct {
	sources []string
	rnd     *rand.Rand
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithRand sets the random source, mostly for deterministic tests.
func WithRand(r *rand.Rand) Option {
	return func(c *Catalog) {
		if r != nil {
			c.rnd = r
		}
	}
}

// New builds a catalog from sources, dropping blanks and duplicates.
func New(sources []string, opts ...Option) (*Catalog, error) {
	clean := make([]string, 0, len(sources))
	for _, s := range sources {
		s = strings.TrimSpace(s)
		if s != "" && !slices.Contains(clean, s) {
			clean = append(clean, s)
		}
	}
	if len(clean) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		sources: clean,
		rnd:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Default returns a catalog over DefaultSources.
func Default(opts ...Option) *Catalog {
	c, _ := New(DefaultSources, opts...)
	return c
}

type file struct {
	Sources []string `yaml:"sources"`
}

// Parse reads a YAML document of the form:
//
//	sources:
//	  - hackernews
//	  - lobsters
func Parse(r io.Reader, opts ...Option) (*Catalog, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Join(ErrInvalidFile, err)
	}
	return New(f.Sources, opts...)
}

// Load parses the YAML catalog at path.
func Load(path string, opts ...Option) (*Catalog, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidFile, err)
	}
	defer fh.Close()
	return Parse(fh, opts...)
}

// Sources returns a copy of the catalog's tags.
func (c *Catalog) Sources() []string {
	return slices.Clone(c.sources)
}

// Pick returns one random source.
func (c *Catalog) Pick() string {
	return c.sources[c.rnd.IntN(len(c.sources))]
}

// Sample returns n distinct random sources, or all of them when n exceeds
// the catalog size.
func (c *Catalog) Sample(n int) []string {
	shuffled := slices.Clone(c.sources)
	c.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:max(0, min(n, len(shuffled)))]
}

// Items generates n fixture items with sources picked from the catalog and
// publication times one minute apart, newest first.
func (c *Catalog) Items(n int) []item.Item {
	now := time.Now().UTC().Truncate(time.Second)
	items := make([]item.Item, 0, max(n, 0))
	for i := range n {
		id := uuid.NewString()
		src := c.Pick()
		items = append(items, item.Item{
			ID:          id,
			Source:      src,
			Title:       fmt.Sprintf("%s story %d", src, i+1),
			URL:         fmt.Sprintf("https://%s.example.com/%s", src, id),
			Summary:     fmt.Sprintf("Fixture entry %d from %s.", i+1, src),
			PublishedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}
	return items
}
