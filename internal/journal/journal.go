// Package journal defines the domain types for the invoice submission
// journal.
//
// The journal is an append-only audit trail of every invoicing attempt the
// gateway makes against the vendor backend. It exists for observability
// only: each row records what was submitted, what happened, and which
// distributed trace it belongs to via the trace_id field. Nothing in the
// gateway ever reads the journal back to make a decision.
package journal

import (
	"context"
	"encoding/json"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/jcmexdev/invoice-gateway/internal/core/domain/entity"
)

// Status is the outcome recorded for one journal entry.
type Status string

const (
	// StatusRequested — the invoice request was built and is about to be
	// sent to the vendor.
	StatusRequested Status = "REQUESTED"
	// StatusSubmitted — the vendor acknowledged the submission.
	StatusSubmitted Status = "SUBMITTED"
	// StatusFailed — the submission failed; Error holds the reason.
	StatusFailed Status = "FAILED"
)

// Entry is a single row in the submissions journal, a point-in-time
// snapshot of one invoicing attempt.
type Entry struct {
	// RequestID is the entity.InvoiceRequest ID. Not unique across rows:
	// one attempt writes a REQUESTED row and then a SUBMITTED or FAILED row.
	RequestID string

	// Status is the lifecycle state at the time this row was written.
	Status Status

	// OrderIDs is the JSON array of order IDs in the request.
	OrderIDs string

	// TotalAmount is the request total, serialised as a decimal string so
	// no precision is lost in storage.
	TotalAmount string

	// Error holds the failure reason for FAILED rows, empty otherwise.
	Error string

	// TraceID is the W3C trace ID of the OpenTelemetry span that was
	// active when this entry was written, so a journal row can be joined
	// directly with the full trace.
	TraceID string

	// SpanID pinpoints the exact span within the trace.
	SpanID string

	// CreatedAt is the wall-clock time of this entry.
	CreatedAt time.Time
}

// NewEntry builds a journal entry for req with trace identifiers extracted
// from the active span in ctx. If ctx carries no valid span (unit tests,
// tracing disabled) the trace fields are left empty.
func NewEntry(ctx context.Context, req entity.InvoiceRequest, status Status, failure error) *Entry {
	e := &Entry{
		RequestID:   req.ID,
		Status:      status,
		OrderIDs:    "[]",
		TotalAmount: req.TotalAmount.String(),
		CreatedAt:   time.Now().UTC(),
	}

	if b, err := json.Marshal(req.OrderIDs); err == nil {
		e.OrderIDs = string(b)
	}
	if failure != nil {
		e.Error = failure.Error()
	}

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		e.TraceID = sc.TraceID().String()
		e.SpanID = sc.SpanID().String()
	}
	return e
}
