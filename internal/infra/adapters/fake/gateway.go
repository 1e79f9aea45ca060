// Package fake provides an in-memory ports.OrderGateway intended for local
// development and manual testing only. Do NOT use in production.
package fake

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/invoice-gateway/internal/core/domain/entity"
	"github.com/jcmexdev/invoice-gateway/internal/core/ports"
)

// Ensure Gateway implements the port at compile time.
var _ ports.OrderGateway = (*Gateway)(nil)

// Gateway serves a fixed set of demo orders and acknowledges every
// submission.
type Gateway struct {
	orders []entity.Order
}

// NewGateway returns a gateway seeded with demo orders.
func NewGateway() *Gateway {
	return &Gateway{orders: demoOrders()}
}

// ListOrders filters the demo set by keyword against order number and
// customer name, mirroring what the real backend is expected to do.
func (g *Gateway) ListOrders(_ context.Context, keyword string) ([]entity.Order, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, entity.ErrEmptyKeyword
	}

	out := make([]entity.Order, 0, len(g.orders))
	for _, order := range g.orders {
		if strings.Contains(order.OrderNumber, keyword) || strings.Contains(order.CustomerName, keyword) {
			out = append(out, summaryOf(order))
		}
	}
	return out, nil
}

// GetOrderDetail returns the demo order with the given ID, with empty
// items to match the real endpoint's contract.
func (g *Gateway) GetOrderDetail(_ context.Context, orderID string) (entity.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return entity.Order{}, entity.ErrEmptyOrderID
	}
	for _, order := range g.orders {
		if order.ID == orderID {
			detail := order
			detail.Items = []entity.OrderItem{}
			return detail, nil
		}
	}
	return entity.Order{}, &entity.TransportError{StatusCode: 404}
}

// SubmitInvoice acknowledges unconditionally.
func (g *Gateway) SubmitInvoice(_ context.Context, _ map[string]any) (json.RawMessage, error) {
	return json.RawMessage(`{"success":true,"message":"invoice request accepted"}`), nil
}

func summaryOf(order entity.Order) entity.Order {
	order.Description = ""
	order.Items = nil
	return order
}

func demoOrders() []entity.Order {
	return []entity.Order{
		{
			ID:           "1",
			OrderNumber:  "ORD20250818001",
			CustomerName: "Zhang San Trading Co.",
			Amount:       decimal.RequireFromString("1280.50"),
			Date:         "2025-08-15",
			Status:       entity.OrderStatusCompleted,
			Description:  "Office supplies purchase",
			Items: []entity.OrderItem{
				{ID: "1", Name: "Office chair", Quantity: 2, Price: decimal.RequireFromString("560.00")},
				{ID: "2", Name: "Office desk", Quantity: 1, Price: decimal.RequireFromString("720.50")},
			},
		},
		{
			ID:           "2",
			OrderNumber:  "ORD20250818002",
			CustomerName: "Li Si Technology",
			Amount:       decimal.RequireFromString("2450.00"),
			Date:         "2025-08-16",
			Status:       entity.OrderStatusCompleted,
			Description:  "Computer accessories purchase",
			Items: []entity.OrderItem{
				{ID: "3", Name: "Monitor", Quantity: 2, Price: decimal.RequireFromString("1200.00")},
				{ID: "4", Name: "Keyboard and mouse set", Quantity: 5, Price: decimal.RequireFromString("250.00")},
			},
		},
		{
			ID:           "3",
			OrderNumber:  "ORD20250818003",
			CustomerName: "Wang Wu Trading",
			Amount:       decimal.RequireFromString("850.80"),
			Date:         "2025-08-17",
			Status:       entity.OrderStatusShipped,
			Description:  "Stationery",
			Items: []entity.OrderItem{
				{ID: "5", Name: "Notebooks", Quantity: 20, Price: decimal.RequireFromString("680.00")},
				{ID: "6", Name: "Gel pens", Quantity: 50, Price: decimal.RequireFromString("170.80")},
			},
		},
	}
}
