package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jcmexdev/invoice-gateway/internal/core/domain/entity"
	"github.com/jcmexdev/invoice-gateway/internal/core/invoicing"
	"github.com/jcmexdev/invoice-gateway/internal/core/ports"
	"github.com/jcmexdev/invoice-gateway/internal/core/selection"
)

// Handler handles incoming HTTP requests from the browsing UI: order
// queries, selection sessions and invoice submissions.
type Handler struct {
	gateway  ports.OrderGateway
	sessions *selection.Manager
	invoicer *invoicing.Service
}

// NewHandler initializes the handler with its gateway, session manager and
// invoicing service.
func NewHandler(gateway ports.OrderGateway, sessions *selection.Manager, invoicer *invoicing.Service) *Handler {
	return &Handler{
		gateway:  gateway,
		sessions: sessions,
		invoicer: invoicer,
	}
}

// ListOrders queries the vendor for orders matching the keyword.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")

	orders, err := h.gateway.ListOrders(r.Context(), keyword)
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	out := make([]OrderDTO, len(orders))
	for i, order := range orders {
		out[i] = mapOrderToDTO(order)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetOrderDetail fetches one order from the vendor.
func (h *Handler) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	order, err := h.gateway.GetOrderDetail(r.Context(), orderID)
	if err != nil {
		writeGatewayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToDTO(order))
}

// OpenSession creates a selection session and returns its ID.
func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	id, _ := h.sessions.Open()
	slog.InfoContext(r.Context(), "selection session opened", "session_id", id)
	writeJSON(w, http.StatusCreated, SessionResponse{SessionID: id})
}

// CloseSession tears the session down, discarding its selection.
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if err := h.sessions.Close(sessionID); err != nil {
		writeError(w, http.StatusNotFound, "session_not_found", sessionID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSelection returns the session's selected orders with the derived
// count and total, recomputed from current state.
func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	orders := store.Orders()
	out := make([]OrderDTO, len(orders))
	for i, order := range orders {
		out[i] = mapOrderToDTO(order)
	}
	writeJSON(w, http.StatusOK, SelectionResponse{
		Orders:      out,
		Count:       store.Count(),
		TotalAmount: store.TotalAmount().String(),
	})
}

// ToggleSelection adds the posted order to the selection, or removes it if
// already selected.
func (h *Handler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	order, err := decodeOrder(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_order", err.Error())
		return
	}

	store.Toggle(order)
	writeJSON(w, http.StatusOK, SelectionResponse{
		Count:       store.Count(),
		TotalAmount: store.TotalAmount().String(),
	})
}

// DeselectOrder removes one order from the selection. Removing an order
// that is not selected is a no-op, not an error.
func (h *Handler) DeselectOrder(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}
	store.Deselect(chi.URLParam(r, "orderID"))
	w.WriteHeader(http.StatusNoContent)
}

// ClearSelection empties the selection unconditionally.
func (h *Handler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}
	store.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// SetCurrentOrder records the order open in the session's detail view.
func (h *Handler) SetCurrentOrder(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	order, err := decodeOrder(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_order", err.Error())
		return
	}
	store.SetCurrent(&order)
	w.WriteHeader(http.StatusNoContent)
}

// GetCurrentOrder returns the order open in the detail view, 404 if none.
func (h *Handler) GetCurrentOrder(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	order := store.Current()
	if order == nil {
		writeError(w, http.StatusNotFound, "no_current_order", "")
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToDTO(*order))
}

// SubmitInvoice builds an invoice request from the session's selection and
// submits it to the vendor. On success the selection is cleared.
func (h *Handler) SubmitInvoice(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	var req SubmitInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	details := entity.InvoiceDetails{
		Type:      req.InvoiceType,
		Title:     req.InvoiceTitle,
		TaxNumber: req.TaxNumber,
		Email:     req.Email,
	}

	invoice, ack, err := h.invoicer.Submit(r.Context(), store, req.Description, details)
	if err != nil {
		if errors.Is(err, entity.ErrEmptySelection) {
			writeError(w, http.StatusBadRequest, "empty_selection", err.Error())
			return
		}
		writeGatewayError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, InvoiceResponse{
		ID:          invoice.ID,
		OrderIDs:    invoice.OrderIDs,
		TotalAmount: invoice.TotalAmount.String(),
		Description: invoice.Description,
		RequestDate: invoice.RequestDate.Format(time.RFC3339),
		Status:      string(invoice.Status),
		Ack:         ack,
	})
}

// store resolves the session from the URL, writing a 404 when it is gone.
func (h *Handler) store(w http.ResponseWriter, r *http.Request) (*selection.Store, bool) {
	sessionID := chi.URLParam(r, "sessionID")
	store, err := h.sessions.Get(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session_not_found", sessionID)
		return nil, false
	}
	return store, true
}

// decodeOrder parses and validates an order DTO from the request body.
// A malformed order never reaches the selection store.
func decodeOrder(r *http.Request) (entity.Order, error) {
	var dto OrderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		return entity.Order{}, err
	}
	return mapDTOToOrder(dto)
}

func mapDTOToOrder(dto OrderDTO) (entity.Order, error) {
	if dto.ID == "" {
		return entity.Order{}, errors.New("order id is required")
	}

	amount := decimal.Zero
	if dto.Amount != "" {
		var err error
		if amount, err = decimal.NewFromString(dto.Amount); err != nil {
			return entity.Order{}, errors.New("amount must be a decimal number")
		}
	}
	if amount.IsNegative() {
		return entity.Order{}, errors.New("amount must not be negative")
	}

	order := entity.Order{
		ID:           dto.ID,
		OrderNumber:  dto.OrderNumber,
		CustomerName: dto.CustomerName,
		Amount:       amount,
		Date:         dto.Date,
		Status:       entity.OrderStatus(dto.Status),
		Description:  dto.Description,
	}

	for _, it := range dto.Items {
		if it.Quantity <= 0 {
			return entity.Order{}, errors.New("item quantity must be positive")
		}
		price := decimal.Zero
		if it.Price != "" {
			var err error
			if price, err = decimal.NewFromString(it.Price); err != nil || price.IsNegative() {
				return entity.Order{}, errors.New("item price must be a non-negative decimal")
			}
		}
		order.Items = append(order.Items, entity.OrderItem{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    price,
		})
	}
	return order, nil
}

// mapOrderToDTO converts the internal order entity to the HTTP response format.
func mapOrderToDTO(order entity.Order) OrderDTO {
	dto := OrderDTO{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		CustomerName: order.CustomerName,
		Amount:       order.Amount.String(),
		Date:         order.Date,
		Status:       string(order.Status),
		Description:  order.Description,
	}
	for _, it := range order.Items {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price.String(),
		})
	}
	return dto
}

// writeGatewayError maps gateway errors onto the inbound surface:
// validation failures are the caller's fault (400), vendor failures are a
// bad gateway (502) with the vendor status echoed for the UI message.
func writeGatewayError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrEmptyKeyword), errors.Is(err, entity.ErrEmptyOrderID):
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
	default:
		if te, ok := entity.AsTransportError(err); ok {
			writeError(w, http.StatusBadGateway, "vendor_error", te.Error())
			return
		}
		writeError(w, http.StatusBadGateway, "vendor_error", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
