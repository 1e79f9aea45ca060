package journal

import "context"

// Repository is the port for persisting journal entries. The invoicing
// service depends on this abstraction, not on SQLite directly, so the
// implementation can be swapped for in-memory in tests.
type Repository interface {
	// Save appends a new entry. The journal is append-only; entries are
	// never updated or deleted.
	Save(ctx context.Context, entry *Entry) error
}
