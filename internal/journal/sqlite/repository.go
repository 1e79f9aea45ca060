// Package sqlite provides a SQLite-backed implementation of
// journal.Repository.
//
// WAL mode is enabled on Open so that readers never block the writer:
// the submission path appends rows while an operator may be querying the
// journal from another connection.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jcmexdev/invoice-gateway/internal/journal"

	// Register the pure-Go SQLite driver. modernc.org/sqlite avoids CGO,
	// which keeps the Docker build on Alpine trivial.
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on Open.
// The table is append-only: each row is an immutable event in the life of
// one invoicing attempt.
const schema = `
CREATE TABLE IF NOT EXISTS invoice_submissions (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Business identifier: the InvoiceRequest ID. Not UNIQUE because one
    -- attempt writes several rows (REQUESTED, then SUBMITTED or FAILED).
    request_id    TEXT NOT NULL,

    -- Lifecycle state at the time this row was written.
    status        TEXT NOT NULL,

    -- JSON array of the order IDs in the request.
    order_ids     TEXT NOT NULL DEFAULT '[]',

    -- Request total as a decimal string, exact as submitted.
    total_amount  TEXT NOT NULL DEFAULT '0',

    -- Failure reason for FAILED rows.
    error         TEXT NOT NULL DEFAULT '',

    -- W3C trace_id / span_id from the active OTel span, for joining a
    -- journal row with its distributed trace.
    trace_id      TEXT NOT NULL DEFAULT '',
    span_id       TEXT NOT NULL DEFAULT '',

    -- Wall-clock timestamp (RFC3339 stored as TEXT, SQLite idiom).
    created_at    TEXT NOT NULL
);

-- The common query: "all events for request X, in order".
CREATE INDEX IF NOT EXISTS idx_invoice_submissions_request_id
    ON invoice_submissions(request_id, created_at);

-- The observability query: "find the submission for trace Y".
CREATE INDEX IF NOT EXISTS idx_invoice_submissions_trace_id
    ON invoice_submissions(trace_id);
`

// timeLayout keeps sub-second precision while staying lexicographically
// sortable, so ORDER BY created_at works on the TEXT column.
const timeLayout = "2006-01-02T15:04:05.999999999Z"

// Repository is the SQLite implementation of journal.Repository.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and applies the
// schema.
//
//	repo, err := sqlite.Open("./data/journal.db")
func Open(path string) (*Repository, error) {
	// The pure-Go driver takes pragmas as DSN query parameters. WAL allows
	// concurrent readers; busy_timeout waits for locks instead of failing.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	// The driver name is "sqlite", not "sqlite3", for modernc.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (r *Repository) Close() error {
	return r.db.Close()
}

// Save inserts a new journal entry. Safe for concurrent use.
func (r *Repository) Save(ctx context.Context, entry *journal.Entry) error {
	const q = `
		INSERT INTO invoice_submissions
			(request_id, status, order_ids, total_amount, error, trace_id, span_id, created_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		entry.RequestID,
		string(entry.Status),
		entry.OrderIDs,
		entry.TotalAmount,
		entry.Error,
		entry.TraceID,
		entry.SpanID,
		entry.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save journal entry for %q: %w", entry.RequestID, err)
	}
	return nil
}

// GetLatest returns the most recent entry for a request ID, or nil when the
// request has never been journalled. Used by operators, not by the gateway.
func (r *Repository) GetLatest(ctx context.Context, requestID string) (*journal.Entry, error) {
	const q = `
		SELECT request_id, status, order_ids, total_amount, error, trace_id, span_id, created_at
		FROM invoice_submissions
		WHERE request_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	var (
		e         journal.Entry
		status    string
		createdAt string
	)
	row := r.db.QueryRowContext(ctx, q, requestID)
	err := row.Scan(&e.RequestID, &status, &e.OrderIDs, &e.TotalAmount, &e.Error, &e.TraceID, &e.SpanID, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: load journal entry for %q: %w", requestID, err)
	}

	e.Status = journal.Status(status)
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("sqlite: journal entry for %q: %w", requestID, err)
	}
	return &e, nil
}
