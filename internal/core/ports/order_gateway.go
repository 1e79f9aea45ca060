package ports

import (
	"context"
	"encoding/json"

	"github.com/jcmexdev/invoice-gateway/internal/core/domain/entity"
)

// OrderGateway is the port for the vendor order/invoicing backend.
// Implementations normalize the vendor's raw records into entity.Order
// and never interpret the submission acknowledgement.
type OrderGateway interface {
	// ListOrders fetches the first page of orders matching keyword.
	// Fails with entity.ErrEmptyKeyword before any I/O when keyword is blank.
	ListOrders(ctx context.Context, keyword string) ([]entity.Order, error)

	// GetOrderDetail fetches a single order. Items is always empty: the
	// vendor detail endpoint does not expose line items.
	GetOrderDetail(ctx context.Context, orderID string) (entity.Order, error)

	// SubmitInvoice posts the invoicing payload and returns the vendor
	// acknowledgement body verbatim.
	SubmitInvoice(ctx context.Context, payload map[string]any) (json.RawMessage, error)
}
