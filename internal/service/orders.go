package service

import (
	"context"

	"github.com/flameshop/ecommerce-api/internal/schema"
	"github.com/flameshop/ecommerce-api/internal/store"
)

// OrderService handles order creation.
type OrderService struct {
	store store.Store
}

// NewOrderService creates a new order service.
func NewOrderService(st store.Store) *OrderService {
	return &OrderService{store: st}
}

// CreateOrder validates the raw payload, including the embedded items and
// customer info, and persists the order. Item order is preserved exactly as
// submitted. Subtotal, tax and total are stored as supplied; the server does
// not recompute them from the items.
func (s *OrderService) CreateOrder(ctx context.Context, raw map[string]any) (string, error) {
	order, err := schema.ValidateOrder(raw)
	if err != nil {
		return "", err
	}
	return s.store.Insert(ctx, schema.CollectionOrder, order)
}
