// Package memory provides an in-memory journal.Repository for tests and
// local development without a database file.
package memory

import (
	"context"
	"sync"

	"github.com/jcmexdev/invoice-gateway/internal/journal"
)

// Repository stores journal entries in a slice, in append order.
type Repository struct {
	mu      sync.Mutex
	entries []journal.Entry
}

// NewRepository returns an empty in-memory journal.
func NewRepository() *Repository {
	return &Repository{}
}

// Save appends a copy of entry.
func (r *Repository) Save(_ context.Context, entry *journal.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

// Entries returns a snapshot of everything saved so far.
func (r *Repository) Entries() []journal.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]journal.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
