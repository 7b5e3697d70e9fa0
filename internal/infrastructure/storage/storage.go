package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound signals an absent key. Repositories translate it into
// their own domain errors.
var ErrKeyNotFound = errors.New("key not found")

// KV is the small persistence surface the domain repositories build on.
// Everything the app stores is a named JSON document, so a keyed store
// with transactional multi-key writes covers all of it.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	// PutMany writes all entries in one transaction.
	PutMany(ctx context.Context, entries map[string]string) error
	// Delete removes all named keys in one transaction. Missing keys are
	// not an error.
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
