package stock

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arka-distribution/arka-backend/internal/modules/catalog"
)

// Handler exposes the stock protocol HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/inventory/{id}", func(r chi.Router) {
		r.Post("/reserve", h.reserve)
		r.Post("/release", h.release)
		r.Post("/confirm-sale", h.confirmSale)
		r.Post("/restock", h.restock)
		r.Patch("/stock", h.setStock)
	})
}

// QuantityRequest carries the unit count for a stock operation.
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ReserveResponse reports the business outcome of a reservation attempt.
type ReserveResponse struct {
	Reserved bool `json:"reserved"`
}

func (h *Handler) reserve(w http.ResponseWriter, r *http.Request) {
	id, req, ok := decodeQuantity(w, r)
	if !ok {
		return
	}
	reserved, err := h.service.Reserve(r.Context(), id, req.Quantity)
	if err != nil {
		respondError(w, err)
		return
	}
	// Insufficient stock is an expected outcome, reported as a value.
	status := http.StatusOK
	if !reserved {
		status = http.StatusConflict
	}
	respond(w, status, ReserveResponse{Reserved: reserved})
}

func (h *Handler) release(w http.ResponseWriter, r *http.Request) {
	id, req, ok := decodeQuantity(w, r)
	if !ok {
		return
	}
	if err := h.service.Release(r.Context(), id, req.Quantity); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) confirmSale(w http.ResponseWriter, r *http.Request) {
	id, req, ok := decodeQuantity(w, r)
	if !ok {
		return
	}
	p, err := h.service.ConfirmSale(r.Context(), id, req.Quantity)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) restock(w http.ResponseWriter, r *http.Request) {
	id, req, ok := decodeQuantity(w, r)
	if !ok {
		return
	}
	if err := h.service.Restock(r.Context(), id, req.Quantity); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setStock(w http.ResponseWriter, r *http.Request) {
	id, req, ok := decodeQuantity(w, r)
	if !ok {
		return
	}
	p, err := h.service.SetStock(r.Context(), id, req.Quantity)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func decodeQuantity(w http.ResponseWriter, r *http.Request) (uuid.UUID, QuantityRequest, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return uuid.Nil, QuantityRequest{}, false
	}
	var req QuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return uuid.Nil, QuantityRequest{}, false
	}
	return id, req, true
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInactiveProduct):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrInvalidQuantity):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
