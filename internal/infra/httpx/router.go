package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/invoice-gateway/internal/infra/httpx/middlewares"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.AttachRequestMetadata)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/orders", handler.ListOrders)
	r.Get("/orders/{orderID}", handler.GetOrderDetail)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", handler.OpenSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Delete("/", handler.CloseSession)
			r.Get("/selection", handler.GetSelection)
			r.Delete("/selection", handler.ClearSelection)
			r.Post("/selection/toggle", handler.ToggleSelection)
			r.Delete("/selection/{orderID}", handler.DeselectOrder)
			r.Get("/current", handler.GetCurrentOrder)
			r.Put("/current", handler.SetCurrentOrder)
			r.Post("/invoices", handler.SubmitInvoice)
		})
	})

	return r
}
