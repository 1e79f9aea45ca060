package entity

import (
	"errors"
	"fmt"
)

// Validation errors are surfaced before any network call is attempted,
// with no partial state change.
var (
	ErrEmptyKeyword   = errors.New("search keyword must not be empty")
	ErrEmptyOrderID   = errors.New("order id must not be empty")
	ErrEmptySelection = errors.New("selection is empty, nothing to invoice")
)

// TransportError is a non-success HTTP status or a network-level failure
// from the vendor backend. It is surfaced to the caller unmodified: no
// retry, no backoff.
type TransportError struct {
	// StatusCode is the HTTP status returned by the vendor, or zero when
	// the failure happened below the HTTP layer.
	StatusCode int
	// Err is the underlying transport failure, nil for status errors.
	Err error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vendor transport failure: %v", e.Err)
	}
	return fmt.Sprintf("vendor returned HTTP %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AsTransportError unwraps err into a *TransportError using the comma-ok
// idiom, so handlers can echo the vendor status code.
func AsTransportError(err error) (*TransportError, bool) {
	var te *TransportError
	ok := errors.As(err, &te)
	return te, ok
}
