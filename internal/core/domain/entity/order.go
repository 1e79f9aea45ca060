package entity

import "github.com/shopspring/decimal"

// OrderStatus is the vendor-reported lifecycle label of a sales order.
// Unknown vendor labels are passed through verbatim; the boundary maps,
// it never rejects.
type OrderStatus string

const (
	OrderStatusCompleted        OrderStatus = "Completed"
	OrderStatusAwaitingShipment OrderStatus = "AwaitingShipment"
	OrderStatusShipped          OrderStatus = "Shipped"

	// OrderStatusNotInvoiced is the default applied when the vendor record
	// carries no invoicing status at all.
	OrderStatusNotInvoiced OrderStatus = "not yet invoiced"
)

// OrderItem is a single line item of an order.
type OrderItem struct {
	ID       string
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// Order is one sales order as normalized from the vendor backend.
// Items may be empty when only summary data was fetched — the detail
// endpoint does not expose line items in the current vendor contract.
type Order struct {
	ID           string
	OrderNumber  string
	CustomerName string
	Amount       decimal.Decimal
	Date         string
	Status       OrderStatus
	Description  string
	Items        []OrderItem
}
