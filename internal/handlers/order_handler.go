package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/flameshop/ecommerce-api/internal/schema"
	"github.com/flameshop/ecommerce-api/internal/service"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	orders *service.OrderService
	log    *slog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		log:    log,
	}
}

// CreateOrder handles POST /orders:
// - 201: created, body carries the new identifier
// - 400: malformed JSON body
// - 422: schema validation failure, body lists every failing field
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		h.log.Warn("failed to decode order payload", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	id, err := h.orders.CreateOrder(ctx, raw)
	if err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			h.log.Info("order rejected", "invalid_fields", len(verr.Fields))
			WriteValidationError(w, verr, h.log)
			return
		}
		h.log.Error("failed to create order", "error", err)
		writeStoreError(w, err, h.log)
		return
	}

	h.log.Info("order created", "order_id", id)
	WriteJSON(w, http.StatusCreated, map[string]string{"id": id}, h.log)
}
