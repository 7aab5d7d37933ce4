package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adverse/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds a GridUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	svc    port.GridUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Each handler is
// stateless; retrying a request is always safe for the caller.
func NewHandler(svc port.GridUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Get("/grid", h.handleGetGrid)
	r.Post("/grid", h.handlePlaceAd)
	r.Put("/grid/update", h.handleUpdateAd)
	r.Post("/grid/click", h.handleClickAd)
	r.Post("/grid/view", h.handleViewAd)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
