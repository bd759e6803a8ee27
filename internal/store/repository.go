// Package store is the persistence adapter of the app: a key-value Repository
// (SQL-backed or in-memory) and a namespaced Store that keeps JSON documents
// in it.
package store

import "context"

// Repository is a flat key-value store.
//
// Get returns (nil, nil) when the key is absent. Delete of a missing key is
// not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Batcher is implemented by repositories that can apply several writes
// atomically.
type Batcher interface {
	Apply(ctx context.Context, sets map[string][]byte, deletes []string) error
}
