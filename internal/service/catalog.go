package service

import (
	"context"

	"github.com/flameshop/ecommerce-api/internal/schema"
	"github.com/flameshop/ecommerce-api/internal/store"
)

// CatalogService handles product listing, creation and demo seeding.
type CatalogService struct {
	store store.Store
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(st store.Store) *CatalogService {
	return &CatalogService{store: st}
}

// ListProducts returns all products, optionally narrowed to an exact category
// match. The store identifier is removed from every document before it is
// handed to the caller; product ids are not part of the public surface.
func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]store.Document, error) {
	filter := store.Document{}
	if category != "" {
		filter["category"] = category
	}

	docs, err := s.store.Find(ctx, schema.CollectionProduct, filter)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		delete(doc, "_id")
	}
	return docs, nil
}

// CreateProduct validates the raw payload and persists it, returning the
// store-generated identifier. Nothing is persisted on validation failure.
func (s *CatalogService) CreateProduct(ctx context.Context, raw map[string]any) (string, error) {
	product, err := schema.ValidateProduct(raw)
	if err != nil {
		return "", err
	}
	return s.store.Insert(ctx, schema.CollectionProduct, product)
}

// SeedProducts inserts the demo catalog if the product collection is empty.
// Repeat calls after a successful seed are no-ops, so the operation is
// idempotent. alreadySeeded reports whether products existed beforehand.
func (s *CatalogService) SeedProducts(ctx context.Context) (inserted int, alreadySeeded bool, err error) {
	count, err := s.store.Count(ctx, schema.CollectionProduct, store.Document{})
	if err != nil {
		return 0, false, err
	}
	if count > 0 {
		return 0, true, nil
	}

	for _, product := range demoProducts {
		if _, err := s.store.Insert(ctx, schema.CollectionProduct, product); err != nil {
			return inserted, false, err
		}
		inserted++
	}
	return inserted, false, nil
}

var demoProducts = []schema.Product{
	{
		Title:       "Classic Tee",
		Description: "100% cotton unisex t-shirt",
		Price:       24.99,
		Category:    "Apparel",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1520975693419-6349b3baaacf?w=800",
		Rating:      4.6,
	},
	{
		Title:       "Leather Backpack",
		Description: "Minimal everyday carry backpack",
		Price:       129.00,
		Category:    "Accessories",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=800",
		Rating:      4.7,
	},
	{
		Title:       "Ceramic Mug",
		Description: "12oz matte ceramic mug",
		Price:       16.50,
		Category:    "Home",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1511920170033-f8396924c348?w=800",
		Rating:      4.8,
	},
	{
		Title:       "Noise-canceling Headphones",
		Description: "Over-ear wireless with ANC",
		Price:       199.99,
		Category:    "Electronics",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1518449037766-8db0ae1f7da1?w=800",
		Rating:      4.4,
	},
}
