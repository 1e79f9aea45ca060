package httpx

import "encoding/json"

type OrderDTO struct {
	ID           string         `json:"id"`
	OrderNumber  string         `json:"order_number"`
	CustomerName string         `json:"customer_name"`
	Amount       string         `json:"amount"`
	Date         string         `json:"date"`
	Status       string         `json:"status"`
	Description  string         `json:"description,omitempty"`
	Items        []OrderItemDTO `json:"items,omitempty"`
}

type OrderItemDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
}

type SelectionResponse struct {
	Orders      []OrderDTO `json:"orders"`
	Count       int        `json:"count"`
	TotalAmount string     `json:"total_amount"`
}

type SubmitInvoiceRequest struct {
	Description  string `json:"description"`
	InvoiceType  string `json:"invoice_type,omitempty"`
	InvoiceTitle string `json:"invoice_title,omitempty"`
	TaxNumber    string `json:"tax_number,omitempty"`
	Email        string `json:"email,omitempty"`
}

type InvoiceResponse struct {
	ID          string          `json:"id"`
	OrderIDs    []string        `json:"order_ids"`
	TotalAmount string          `json:"total_amount"`
	Description string          `json:"description"`
	RequestDate string          `json:"request_date"`
	Status      string          `json:"status"`
	// Ack is the vendor acknowledgement, passed through uninterpreted.
	Ack json.RawMessage `json:"ack"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
