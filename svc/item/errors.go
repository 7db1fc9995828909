package item

import "errors"

var (
	// ErrStoreFailure wraps driver errors from the backing store.
	ErrStoreFailure = errors.New("item.store_failure")

	// ErrInvalidItem indicates an item without id or source.
	ErrInvalidItem = errors.New("item.invalid")
)
