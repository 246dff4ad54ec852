// Package storage persists the resume snapshot under a single key. Stores are
// plain key/value byte containers; Repository owns the JSON encoding, schema
// check and the fallback to the default document.
package storage

import (
	"context"
	"errors"
)

// DefaultKey is the key the snapshot is stored under.
const DefaultKey = "dev-me-resume-data"

var (
	// ErrNotFound is returned by stores when a key holds no value.
	ErrNotFound = errors.New("storage: key not found")
	// ErrCorrupt is returned when a store's backing data cannot be decoded.
	ErrCorrupt = errors.New("storage: backing data is corrupt")
)

// Store is a durable key/value container.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
