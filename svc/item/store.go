package item

import "context"

// Store is a read-only accessor over content entries.
// Implementations return a non-nil slice in a stable order.
type Store interface {
	// All returns every item.
	All(ctx context.Context) ([]Item, error)

	// BySources returns items whose Source is one of sources.
	// An empty sources list yields an empty result.
	BySources(ctx context.Context, sources []string) ([]Item, error)
}

// Inserter is implemented by stores that accept fixture data.
type Inserter interface {
	Insert(ctx context.Context, items ...Item) error
}
