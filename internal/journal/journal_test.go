package journal_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/invoice-gateway/internal/core/domain/entity"
	"github.com/jcmexdev/invoice-gateway/internal/journal"
)

func TestNewEntrySnapshotsRequest(t *testing.T) {
	req := entity.InvoiceRequest{
		ID:          "req-1",
		OrderIDs:    []string{"a", "b"},
		TotalAmount: decimal.RequireFromString("3730.50"),
	}

	entry := journal.NewEntry(context.Background(), req, journal.StatusRequested, nil)

	require.Equal(t, "req-1", entry.RequestID)
	require.Equal(t, journal.StatusRequested, entry.Status)
	require.Equal(t, `["a","b"]`, entry.OrderIDs)
	require.Equal(t, "3730.50", entry.TotalAmount)
	require.Empty(t, entry.Error)
	// No active span in a bare context: trace fields stay empty.
	require.Empty(t, entry.TraceID)
	require.Empty(t, entry.SpanID)
	require.False(t, entry.CreatedAt.IsZero())
}

func TestNewEntryRecordsFailure(t *testing.T) {
	req := entity.InvoiceRequest{ID: "req-2", OrderIDs: []string{"x"}}

	entry := journal.NewEntry(context.Background(), req, journal.StatusFailed, errors.New("boom"))
	require.Equal(t, "boom", entry.Error)
}
