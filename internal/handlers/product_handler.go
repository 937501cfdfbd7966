package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/flameshop/ecommerce-api/internal/schema"
	"github.com/flameshop/ecommerce-api/internal/service"
	"github.com/flameshop/ecommerce-api/internal/store"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	catalog *service.CatalogService
	log     *slog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalog *service.CatalogService, log *slog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		log:     log,
	}
}

// ListProducts handles GET /products.
// An optional ?category= query narrows the result to an exact match.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := r.URL.Query().Get("category")

	products, err := h.catalog.ListProducts(ctx, category)
	if err != nil {
		h.log.Error("failed to list products", "category", category, "error", err)
		writeStoreError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.log)
}

// CreateProduct handles POST /products:
// - 201: created, body carries the new identifier
// - 400: malformed JSON body
// - 422: schema validation failure, body lists every failing field
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		h.log.Warn("failed to decode product payload", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	id, err := h.catalog.CreateProduct(ctx, raw)
	if err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			h.log.Info("product rejected", "invalid_fields", len(verr.Fields))
			WriteValidationError(w, verr, h.log)
			return
		}
		h.log.Error("failed to create product", "error", err)
		writeStoreError(w, err, h.log)
		return
	}

	h.log.Info("product created", "product_id", id)
	WriteJSON(w, http.StatusCreated, map[string]string{"id": id}, h.log)
}

// Seed handles POST /seed. Seeding only acts on an empty product collection,
// so repeat calls after the first successful seed are no-ops.
func (h *ProductHandler) Seed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	inserted, alreadySeeded, err := h.catalog.SeedProducts(ctx)
	if err != nil {
		h.log.Error("failed to seed products", "error", err)
		writeStoreError(w, err, h.log)
		return
	}

	if alreadySeeded {
		WriteJSON(w, http.StatusOK, map[string]any{
			"inserted": 0,
			"message":  "Products already exist",
		}, h.log)
		return
	}

	h.log.Info("demo products seeded", "inserted", inserted)
	WriteJSON(w, http.StatusOK, map[string]any{"inserted": inserted}, h.log)
}

// writeStoreError maps store failures to HTTP responses. Connectivity faults
// are operational, not client errors, so the body stays generic.
func writeStoreError(w http.ResponseWriter, err error, log *slog.Logger) {
	if errors.Is(err, store.ErrNotConfigured) || errors.Is(err, store.ErrUnavailable) {
		WriteError(w, http.StatusInternalServerError, "Database not configured", log)
		return
	}
	WriteError(w, http.StatusInternalServerError, "Internal server error", log)
}
