package item

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps items in insertion order.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Item
}

func NewMemoryStore(items ...Item) *MemoryStore {
	return &MemoryStore{items: slices.Clone(items)}
}

func (m *MemoryStore) All(ctx context.Context) ([]Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *MemoryStore) BySources(ctx context.Context, sources []string) ([]Item, error) {
	if len(sources) == 0 {
		return []Item{}, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Item, 0, len(m.items))
	for _, it := range m.items {
		if slices.Contains(sources, it.Source) {
			out = append(out, it)
		}
	}
	return out, nil
}

// Insert appends items. Items with an id already present are skipped.
func (m *MemoryStore) Insert(ctx context.Context, items ...Item) error {
	for _, it := range items {
		if it.ID == "" || it.Source == "" {
			return ErrInvalidItem
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, it := range items {
		if slices.ContainsFunc(m.items, func(existing Item) bool { return existing.ID == it.ID }) {
			continue
		}
		m.items = append(m.items, it)
	}
	return nil
}

// Len returns the number of stored items.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
