package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-devme/pkg/document"
)

// RepositoryOption configures a Repository.
type RepositoryOption func(*Repository)

// WithKey overrides DefaultKey.
func WithKey(key string) RepositoryOption {
	return func(r *Repository) {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			r.key = trimmed
		}
	}
}

// WithLogger sets the logger used to report discarded snapshots.
func WithLogger(logger *slog.Logger) RepositoryOption {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Repository loads and saves the resume snapshot through a Store.
type Repository struct {
	store  Store
	key    string
	logger *slog.Logger
}

// NewRepository wraps store.
func NewRepository(store Store, options ...RepositoryOption) *Repository {
	r := &Repository{
		store:  store,
		key:    DefaultKey,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Key returns the storage key.
func (r *Repository) Key() string {
	return r.key
}

// Load returns the stored snapshot. Absent, undecodable or schema-invalid
// data yields the default document with a nil error; only store failures are
// returned, alongside the default document.
func (r *Repository) Load(ctx context.Context) (document.Document, error) {
	data, err := r.store.Get(ctx, r.key)
	switch {
	case errors.Is(err, ErrNotFound):
		return document.Default(), nil
	case errors.Is(err, ErrCorrupt):
		r.logger.Warn("discarding corrupt store", "key", r.key, "error", err)
		return document.Default(), nil
	case err != nil:
		return document.Default(), fmt.Errorf("storage: load %q: %w", r.key, err)
	}

	doc, err := Decode(data)
	if err != nil {
		r.logger.Warn("discarding malformed snapshot", "key", r.key, "error", err)
		return document.Default(), nil
	}
	return doc, nil
}

// Save writes doc under the repository key.
func (r *Repository) Save(ctx context.Context, doc document.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("storage: save %q: %w", r.key, err)
	}
	return nil
}

// Encode serialises doc.
func Encode(doc document.Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("storage: encode snapshot: %w", err)
	}
	return data, nil
}

// Decode validates and parses a snapshot, then normalizes it.
func Decode(data []byte) (document.Document, error) {
	if err := ValidateSnapshot(data); err != nil {
		return document.Document{}, err
	}
	var doc document.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document.Document{}, fmt.Errorf("storage: decode snapshot: %w", err)
	}
	return doc.Normalize(), nil
}
