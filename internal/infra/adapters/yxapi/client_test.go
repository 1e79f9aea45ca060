package yxapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/invoice-gateway/internal/core/domain/entity"
	"github.com/jcmexdev/invoice-gateway/internal/infra/adapters/yxapi"
	"github.com/jcmexdev/invoice-gateway/internal/pkg/requestmeta"
)

const testRoutingID = "octocm.md.YX.iML_00001_CM"

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func TestListOrdersRejectsBlankKeywordBeforeAnyIO(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := yxapi.NewClient(srv.URL, testRoutingID)

	for _, keyword := range []string{"", "   "} {
		_, err := c.ListOrders(context.Background(), keyword)
		require.ErrorIs(t, err, entity.ErrEmptyKeyword)
	}
	require.Zero(t, hits.Load(), "no network call may be made for a blank keyword")
}

func TestListOrdersSendsFixedQueryParameters(t *testing.T) {
	var (
		path  string
		query url.Values
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		query = r.URL.Query()
		_, _ = w.Write([]byte(`{"CONTENT":[]}`))
	}))
	defer srv.Close()

	c := yxapi.NewClient(srv.URL, testRoutingID)
	_, err := c.ListOrders(context.Background(), "  acme  ")
	require.NoError(t, err)

	require.Equal(t, "/list", path)
	require.Equal(t, testRoutingID, query.Get("md"))
	require.Equal(t, "20", query.Get("PageSize"))
	require.Equal(t, "1", query.Get("PageNo"))
	require.Equal(t, "acme", query.Get("condition"), "keyword is trimmed and sent explicitly")
}

func TestListOrdersNormalizesSparseRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"CONTENT":[{"data":{"uuid":"x1","jin1E2":100}}]}`))
	}))
	defer srv.Close()

	c := yxapi.NewClient(srv.URL, testRoutingID)
	orders, err := c.ListOrders(context.Background(), "foo")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	got := orders[0]
	require.Equal(t, "x1", got.ID)
	require.True(t, got.Amount.Equal(mustDecimal(t, "100")))
	require.Equal(t, "", got.OrderNumber)
	require.Equal(t, "", got.CustomerName)
	require.Equal(t, "", got.Date)
	require.Equal(t, entity.OrderStatusNotInvoiced, got.Status)
}

func TestListOrdersMapsFullRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"CONTENT":[{"data":{
			"uuid":"o-1",
			"ding4Dan1Hao4":"ORD20250818001",
			"ke4Hu4Ming2Cheng1":"Zhang San Trading Co.",
			"jin1E2":"1280.50",
			"createDate":"2025-08-15",
			"kai1Piao4Jhuang4Tai4":"Completed"
		}}]}`))
	}))
	defer srv.Close()

	c := yxapi.NewClient(srv.URL, testRoutingID)
	orders, err := c.ListOrders(context.Background(), "foo")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	got := orders[0]
	require.Equal(t, "o-1", got.ID)
	require.Equal(t, "ORD20250818001", got.OrderNumber)
	require.Equal(t, "Zhang San Trading Co.", got.CustomerName)
	require.True(t, got.Amount.Equal(mustDecimal(t, "1280.50")))
	require.Equal(t, "2025-08-15", got.Date)
	require.Equal(t, entity.OrderStatusCompleted, got.Status)
	require.Empty(t, got.Description, "list records carry no description")
}

func TestListOrdersSurfacesVendorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := yxapi.NewClient(srv.URL, testRoutingID)
	_, err := c.ListOrders(context.Background(), "foo")

	te, ok := entity.AsTransportError(err)
	require.True(t, ok, "expected a transport error, got %v", err)
	require.Equal(t, http.StatusInternalServerError, te.StatusCode)
}

func TestListOrdersWrapsNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := yxapi.NewClient(srv.URL, testRoutingID)
	_, err := c.ListOrders(context.Background(), "foo")

	te, ok := entity.AsTransportError(err)
	require.True(t, ok)
	require.Zero(t, te.StatusCode)
	require.Error(t, te.Err)
}

func TestGetOrderDetailRejectsBlankID(t *testing.T) {
	c := yxapi.NewClient("http://vendor.invalid", testRoutingID)
	_, err := c.GetOrderDetail(context.Background(), "  ")
	require.ErrorIs(t, err, entity.ErrEmptyOrderID)
}

func TestGetOrderDetailBareRecord(t *testing.T) {
	var (
		path  string
		query url.Values
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		query = r.URL.Query()
		_, _ = w.Write([]byte(`{"CONTENT":{
			"uuid":"o-9",
			"jin1E2":850.8,
			"chan3Pin3Ming2Cheng1":"Stationery",
			"kai1Piao4Jhuang4Tai4":"Shipped"
		}}`))
	}))
	defer srv.Close()

	c := yxapi.NewClient(srv.URL, testRoutingID)
	got, err := c.GetOrderDetail(context.Background(), "o-9")
	require.NoError(t, err)

	require.Equal(t, "/detail", path)
	require.Equal(t, testRoutingID, query.Get("md"))
	require.Equal(t, "o-9", query.Get("uuid"))

	require.Equal(t, "o-9", got.ID)
	require.True(t, got.Amount.Equal(mustDecimal(t, "850.8")))
	require.Equal(t, "Stationery", got.Description)
	require.Equal(t, entity.OrderStatusShipped, got.Status)
	require.NotNil(t, got.Items)
	require.Empty(t, got.Items, "detail endpoint never yields line items")
}

func TestGetOrderDetailWrappedRecord(t *testing.T) {
	// The second vendor response variant nests the record under "data".
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"CONTENT":{"data":{"uuid":"o-2","chan3Pin3Ming2Cheng1":"Monitors"}}}`))
	}))
	defer srv.Close()

	c := yxapi.NewClient(srv.URL, testRoutingID)
	got, err := c.GetOrderDetail(context.Background(), "o-2")
	require.NoError(t, err)
	require.Equal(t, "o-2", got.ID)
	require.Equal(t, "Monitors", got.Description)
}

func TestSubmitInvoicePostsSingleFormField(t *testing.T) {
	var (
		method      string
		path        string
		contentType string
		formData    string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		_ = r.ParseForm()
		formData = r.PostFormValue("data")
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer srv.Close()

	c := yxapi.NewClient(srv.URL, testRoutingID)
	ack, err := c.SubmitInvoice(context.Background(), map[string]any{
		"orderIds":    []string{"a", "b"},
		"description": "office supplies",
	})
	require.NoError(t, err)

	require.Equal(t, http.MethodPost, method)
	require.Equal(t, "/commit", path)
	require.Equal(t, "application/x-www-form-urlencoded", contentType)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(formData), &payload))
	require.Equal(t, "office supplies", payload["description"])
	require.Equal(t, []any{"a", "b"}, payload["orderIds"])

	require.JSONEq(t, `{"success":true,"message":"ok"}`, string(ack))
}

func TestSubmitInvoiceSurfacesVendorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := yxapi.NewClient(srv.URL, testRoutingID)
	_, err := c.SubmitInvoice(context.Background(), map[string]any{"orderIds": []string{"a"}})

	te, ok := entity.AsTransportError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadGateway, te.StatusCode)
}

func TestRequestIDIsForwardedToVendor(t *testing.T) {
	var header string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get(requestmeta.HeaderRequestID)
		_, _ = w.Write([]byte(`{"CONTENT":[]}`))
	}))
	defer srv.Close()

	ctx := requestmeta.WithRequestID(context.Background(), "req-42")
	c := yxapi.NewClient(srv.URL, testRoutingID)
	_, err := c.ListOrders(ctx, "foo")
	require.NoError(t, err)
	require.Equal(t, "req-42", header)
}

func TestWithPageSizeOverridesListPage(t *testing.T) {
	var query url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		_, _ = w.Write([]byte(`{"CONTENT":[]}`))
	}))
	defer srv.Close()

	c := yxapi.NewClient(srv.URL, testRoutingID, yxapi.WithPageSize(50))
	_, err := c.ListOrders(context.Background(), "foo")
	require.NoError(t, err)
	require.Equal(t, "50", query.Get("PageSize"))
}
