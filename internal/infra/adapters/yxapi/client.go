// Package yxapi is the HTTP adapter for the vendor order/invoicing backend.
//
// The vendor exposes three endpoints: /list, /detail and /commit. Responses
// come wrapped in a {CONTENT: ...} envelope; submission is a form-encoded
// POST with the whole payload JSON-serialised into a single "data" field.
// The adapter does not retry, does not cache and never paginates past the
// first page.
package yxapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jcmexdev/invoice-gateway/internal/core/domain/entity"
	"github.com/jcmexdev/invoice-gateway/internal/core/ports"
	"github.com/jcmexdev/invoice-gateway/internal/pkg/requestmeta"
)

// defaultPageSize matches the fixed page the UI renders.
const defaultPageSize = 20

// Ensure Client implements the port at compile time.
var _ ports.OrderGateway = (*Client)(nil)

// Client talks to the vendor backend over plain HTTP.
type Client struct {
	baseURL   string
	routingID string
	pageSize  int
	http      *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithPageSize overrides the fixed page size sent on list requests.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// NewClient returns a vendor client for the given base URL and backend
// routing identifier (the "md" parameter every call must carry).
func NewClient(baseURL, routingID string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		routingID: routingID,
		pageSize:  defaultPageSize,
		// The vendor host is slow; 30s leaves headroom without hanging a
		// UI request forever.
		http: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// listEnvelope is the /list response shell. Each CONTENT element wraps the
// actual order under a "data" sub-object.
type listEnvelope struct {
	Content []record `json:"CONTENT"`
}

// detailEnvelope is the /detail response shell. One vendor variant returns
// the order bare under CONTENT, another wraps it in "data"; both are
// tolerated.
type detailEnvelope struct {
	Content record `json:"CONTENT"`
}

// ListOrders fetches the first page of orders matching keyword and
// normalizes each record. Blank keywords fail with entity.ErrEmptyKeyword
// before any network I/O.
func (c *Client) ListOrders(ctx context.Context, keyword string) ([]entity.Order, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, entity.ErrEmptyKeyword
	}

	params := url.Values{}
	params.Set("md", c.routingID)
	params.Set("PageSize", strconv.Itoa(c.pageSize))
	params.Set("PageNo", "1")
	// The vendor's own frontend validated the keyword but never sent it.
	// We send it explicitly; whether the backend filters on it is an open
	// product question, not something to paper over here.
	params.Set("condition", keyword)

	body, err := c.get(ctx, "/list", params)
	if err != nil {
		return nil, err
	}

	var env listEnvelope
	if err := decodeJSON(body, &env); err != nil {
		return nil, fmt.Errorf("yxapi: decode list response: %w", err)
	}

	orders := make([]entity.Order, 0, len(env.Content))
	for _, item := range env.Content {
		orders = append(orders, mapOrder(subRecord(item, "data")))
	}
	return orders, nil
}

// GetOrderDetail fetches one order by its vendor uuid. Description comes
// from the vendor product-name field; Items is always empty because the
// detail endpoint does not expose line items in the current contract.
func (c *Client) GetOrderDetail(ctx context.Context, orderID string) (entity.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entity.Order{}, entity.ErrEmptyOrderID
	}

	params := url.Values{}
	params.Set("md", c.routingID)
	params.Set("uuid", orderID)

	body, err := c.get(ctx, "/detail", params)
	if err != nil {
		return entity.Order{}, err
	}

	var env detailEnvelope
	if err := decodeJSON(body, &env); err != nil {
		return entity.Order{}, fmt.Errorf("yxapi: decode detail response: %w", err)
	}

	rec := env.Content
	if nested := subRecord(rec, "data"); nested != nil {
		rec = nested
	}

	order := mapOrder(rec)
	order.Description = stringField(rec, fieldProductName)
	order.Items = []entity.OrderItem{}
	return order, nil
}

// SubmitInvoice serialises payload into the single form field the vendor
// expects and POSTs it. The acknowledgement body is returned verbatim;
// interpreting its shape is not this layer's business.
func (c *Client) SubmitInvoice(ctx context.Context, payload map[string]any) (json.RawMessage, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("yxapi: marshal invoice payload: %w", err)
	}

	form := url.Values{}
	form.Set("data", string(data))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/commit", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("yxapi: build commit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.attachRequestID(ctx, req)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// get issues a GET and returns the raw response body.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("yxapi: build %s request: %w", path, err)
	}
	c.attachRequestID(ctx, req)
	return c.do(req)
}

// do executes the request and applies the single transport contract:
// network failure or non-2xx status becomes an *entity.TransportError.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &entity.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &entity.TransportError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &entity.TransportError{Err: err}
	}
	return body, nil
}

// attachRequestID propagates the inbound request ID to the vendor call so
// both sides of a slow request can be correlated.
func (c *Client) attachRequestID(ctx context.Context, req *http.Request) {
	if id := requestmeta.RequestID(ctx); id != "" {
		req.Header.Set(requestmeta.HeaderRequestID, id)
	}
}

// decodeJSON unmarshals with UseNumber so money values keep their exact
// decimal representation instead of round-tripping through float64.
func decodeJSON(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}
