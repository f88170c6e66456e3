package pricing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arka-distribution/arka-backend/internal/modules/catalog"
)

// Handler exposes pricing HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/pricing", func(r chi.Router) {
		r.Get("/products/{id}/margin", h.productMargin)
		r.Get("/products/{id}/suggested-price", h.suggestPrice)
		r.Post("/quote", h.quote)
	})
}

func (h *Handler) productMargin(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	report, err := h.service.ProductMargin(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, report)
}

func (h *Handler) suggestPrice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	minMargin, err := decimal.NewFromString(r.URL.Query().Get("min_margin"))
	if err != nil {
		http.Error(w, "invalid min_margin", http.StatusBadRequest)
		return
	}
	suggestion, err := h.service.SuggestPrice(r.Context(), id, minMargin)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, suggestion)
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	quote, err := h.service.Quote(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, quote)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrNonPositiveQuantity),
		errors.Is(err, ErrZeroPurchasePrice),
		errors.Is(err, ErrZeroSalePrice),
		errors.Is(err, ErrNegativeMargin),
		errors.Is(err, ErrMarginTooHigh),
		errors.Is(err, catalog.ErrValidation):
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
