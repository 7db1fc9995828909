package feed

import (
	"context"
	"errors"

	"github.com/dmitrymomot/sourcefeed/svc/item"
	"github.com/dmitrymomot/sourcefeed/svc/session"
)

// Mode selects a feed variant.
type Mode string

const (
	Default Mode = "default"
	All     Mode = "all"
	Custom  Mode = "custom"
)

// ErrUnknownMode is returned for a Mode outside Default, All and Custom.
var ErrUnknownMode = errors.New("feed.unknown_mode")

// Resolver derives feeds from the item store and a session.
type Resolver struct {
	items item.Store
}

func NewResolver(items item.Store) *Resolver {
	return &Resolver{items: items}
}

// Resolve returns the items of the feed selected by mode, in store order.
// Default and All select every item. Custom selects items whose source is
// in sess.Sources and is empty when the session has no sources.
// The result is never nil. Store errors are returned unchanged.
func (r *Resolver) Resolve(ctx context.Context, mode Mode, sess *session.Session) ([]item.Item, error) {
	var (
		items []item.Item
		err   error
	)

	switch mode {
	case Default, All:
		items, err = r.items.All(ctx)
	case Custom:
		if !sess.HasSources() {
			return []item.Item{}, nil
		}
		items, err = r.items.BySources(ctx, sess.Sources)
	default:
		return nil, ErrUnknownMode
	}

	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []item.Item{}
	}
	return items, nil
}
