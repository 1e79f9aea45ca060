package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoicing submission.
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "Pending"
	InvoiceStatusSubmitted InvoiceStatus = "Submitted"
	InvoiceStatusInvoiced  InvoiceStatus = "Invoiced"
)

// InvoiceDetails carries the optional invoice particulars the vendor
// accepts alongside a submission.
type InvoiceDetails struct {
	Type      string
	Title     string
	TaxNumber string
	Email     string
}

// InvoiceRequest is a batch invoicing submission built from the current
// selection. TotalAmount is recomputed from the live selection at build
// time so it always equals the sum of the referenced orders' amounts.
type InvoiceRequest struct {
	ID          string
	OrderIDs    []string
	TotalAmount decimal.Decimal
	Description string
	Details     InvoiceDetails
	RequestDate time.Time
	Status      InvoiceStatus
}
