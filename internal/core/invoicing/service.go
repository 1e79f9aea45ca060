// Package invoicing turns a session's selection into a vendor invoice
// submission.
//
// The flow is a single remote call with no compensation: build the request
// from the live selection, journal it, submit it, and clear the selection
// only after the vendor acknowledged. A failed submission leaves the
// selection exactly as it was so the user can retry by hand.
package invoicing

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jcmexdev/invoice-gateway/internal/core/domain/entity"
	"github.com/jcmexdev/invoice-gateway/internal/core/ports"
	"github.com/jcmexdev/invoice-gateway/internal/core/selection"
	"github.com/jcmexdev/invoice-gateway/internal/journal"
)

// Service coordinates selection, gateway and journal for one submission.
type Service struct {
	gateway ports.OrderGateway
	journal journal.Repository // nil-safe: journaling is skipped if nil
}

// NewService initializes the service. repo may be nil — submissions then
// run without an audit trail.
func NewService(gateway ports.OrderGateway, repo journal.Repository) *Service {
	return &Service{gateway: gateway, journal: repo}
}

// Submit builds an invoice request from the store's current selection and
// posts it to the vendor. TotalAmount is recomputed from the selection
// snapshot at this moment, so it always equals the sum of the referenced
// orders' amounts. On success the selection is cleared to prevent
// resubmission of the same orders; on failure it is left untouched.
func (s *Service) Submit(
	ctx context.Context,
	store *selection.Store,
	description string,
	details entity.InvoiceDetails,
) (entity.InvoiceRequest, json.RawMessage, error) {
	orders := store.Orders()
	if len(orders) == 0 {
		return entity.InvoiceRequest{}, nil, entity.ErrEmptySelection
	}

	req := entity.InvoiceRequest{
		ID:          uuid.NewString(),
		OrderIDs:    make([]string, len(orders)),
		Description: description,
		Details:     details,
		RequestDate: time.Now().UTC(),
		Status:      entity.InvoiceStatusPending,
	}
	for i, order := range orders {
		req.OrderIDs[i] = order.ID
		req.TotalAmount = req.TotalAmount.Add(order.Amount)
	}

	s.record(ctx, journal.NewEntry(ctx, req, journal.StatusRequested, nil))

	slog.InfoContext(ctx, "submitting invoice request",
		"request_id", req.ID,
		"order_count", len(req.OrderIDs),
		"total_amount", req.TotalAmount.String(),
	)

	ack, err := s.gateway.SubmitInvoice(ctx, buildPayload(req))
	if err != nil {
		s.record(ctx, journal.NewEntry(ctx, req, journal.StatusFailed, err))
		slog.ErrorContext(ctx, "invoice submission failed", "request_id", req.ID, "error", err)
		return entity.InvoiceRequest{}, nil, err
	}

	req.Status = entity.InvoiceStatusSubmitted
	s.record(ctx, journal.NewEntry(ctx, req, journal.StatusSubmitted, nil))
	store.Clear()

	return req, ack, nil
}

// buildPayload shapes the vendor commit payload. The acknowledgement side
// is untyped, and so is this: the vendor contract is a bag of fields.
func buildPayload(req entity.InvoiceRequest) map[string]any {
	payload := map[string]any{
		"orderIds":    req.OrderIDs,
		"totalAmount": req.TotalAmount.String(),
		"description": req.Description,
		"requestDate": req.RequestDate.Format(time.RFC3339),
	}
	if req.Details.Type != "" {
		payload["invoiceType"] = req.Details.Type
	}
	if req.Details.Title != "" {
		payload["invoiceTitle"] = req.Details.Title
	}
	if req.Details.TaxNumber != "" {
		payload["taxNumber"] = req.Details.TaxNumber
	}
	if req.Details.Email != "" {
		payload["email"] = req.Details.Email
	}
	return payload
}

// record writes a journal entry if a repository is wired. A journal write
// failure must never fail the submission itself, so it is only logged.
func (s *Service) record(ctx context.Context, entry *journal.Entry) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Save(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to journal invoice submission",
			"request_id", entry.RequestID,
			"status", string(entry.Status),
			"error", err,
		)
	}
}
