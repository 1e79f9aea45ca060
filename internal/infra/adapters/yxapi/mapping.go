package yxapi

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/invoice-gateway/internal/core/domain/entity"
)

// The vendor returns loosely-typed records: romanized field names, values
// that may be numbers, strings, or simply absent. Extraction is an explicit
// per-field mapping with a documented default for every field, so a
// partially-populated record degrades gracefully instead of failing the
// whole call.

// record is one raw vendor object.
type record map[string]any

// Vendor field names. createDate is the canonical date key: a second
// gateway variant in the vendor's own frontend used a different key for
// the same column, which we treat as a bug there, not a contract here.
const (
	fieldUUID          = "uuid"
	fieldOrderNumber   = "ding4Dan1Hao4"
	fieldCustomerName  = "ke4Hu4Ming2Cheng1"
	fieldAmount        = "jin1E2"
	fieldCreateDate    = "createDate"
	fieldInvoiceStatus = "kai1Piao4Jhuang4Tai4"
	fieldProductName   = "chan3Pin3Ming2Cheng1"
)

// mapOrder translates a raw vendor record into the normalized order shape.
// Defaults: "" for text fields, 0 for the amount, "not yet invoiced" for
// the status. Works on a nil record, yielding an all-default order.
func mapOrder(rec record) entity.Order {
	return entity.Order{
		ID:           stringField(rec, fieldUUID),
		OrderNumber:  stringField(rec, fieldOrderNumber),
		CustomerName: stringField(rec, fieldCustomerName),
		Amount:       decimalField(rec, fieldAmount),
		Date:         stringField(rec, fieldCreateDate),
		Status:       statusField(rec, fieldInvoiceStatus),
	}
}

func stringField(rec record, key string) string {
	v, _ := rec[key].(string)
	return v
}

// decimalField reads a money value. The envelope is decoded with
// json.Decoder.UseNumber, so numeric values arrive as json.Number and keep
// their exact decimal representation.
func decimalField(rec record, key string) decimal.Decimal {
	switch v := rec[key].(type) {
	case json.Number:
		if d, err := decimal.NewFromString(v.String()); err == nil {
			return d
		}
	case string:
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return decimal.Zero
}

func statusField(rec record, key string) entity.OrderStatus {
	if s := stringField(rec, key); s != "" {
		return entity.OrderStatus(s)
	}
	return entity.OrderStatusNotInvoiced
}

// subRecord digs out a nested object, nil when absent or of another type.
func subRecord(rec record, key string) record {
	v, _ := rec[key].(map[string]any)
	return v
}
