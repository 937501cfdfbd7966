package service

import (
	"context"
	"testing"

	"github.com/flameshop/ecommerce-api/internal/schema"
	"github.com/flameshop/ecommerce-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedProducts_Idempotent(t *testing.T) {
	st := store.NewMemory("testdb")
	svc := NewCatalogService(st)
	ctx := context.Background()

	inserted, already, err := svc.SeedProducts(ctx)
	require.NoError(t, err)
	assert.False(t, already)
	assert.Equal(t, len(demoProducts), inserted)

	// Second run must not insert anything.
	inserted, already, err = svc.SeedProducts(ctx)
	require.NoError(t, err)
	assert.True(t, already)
	assert.Zero(t, inserted)

	count, err := st.Count(ctx, schema.CollectionProduct, nil)
	require.NoError(t, err)
	assert.EqualValues(t, len(demoProducts), count)
}

func TestSeedProducts_NotConfigured(t *testing.T) {
	st := store.NewMemoryWithStatus(store.StatusUnconfigured)
	svc := NewCatalogService(st)

	_, _, err := svc.SeedProducts(context.Background())
	assert.ErrorIs(t, err, store.ErrNotConfigured)
}

func TestListProducts_StripsIdentifier(t *testing.T) {
	st := store.NewMemory("testdb")
	svc := NewCatalogService(st)
	ctx := context.Background()

	_, _, err := svc.SeedProducts(ctx)
	require.NoError(t, err)

	docs, err := svc.ListProducts(ctx, "")
	require.NoError(t, err)
	require.Len(t, docs, len(demoProducts))
	for _, doc := range docs {
		assert.NotContains(t, doc, "_id")
	}
}

func TestListProducts_CategoryFilter(t *testing.T) {
	st := store.NewMemory("testdb")
	svc := NewCatalogService(st)
	ctx := context.Background()

	_, _, err := svc.SeedProducts(ctx)
	require.NoError(t, err)

	docs, err := svc.ListProducts(ctx, "Electronics")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Noise-canceling Headphones", docs[0]["title"])

	// Case-sensitive exact match.
	docs, err = svc.ListProducts(ctx, "electronics")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestCreateProduct_Valid(t *testing.T) {
	st := store.NewMemory("testdb")
	svc := NewCatalogService(st)
	ctx := context.Background()

	id, err := svc.CreateProduct(ctx, map[string]any{
		"title":    "Desk Lamp",
		"price":    39.99,
		"category": "Home",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, id)

	docs, err := st.Find(ctx, schema.CollectionProduct, nil)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Desk Lamp", docs[0]["title"])
	assert.Equal(t, true, docs[0]["in_stock"], "default applied before persisting")
	assert.Equal(t, schema.DefaultRating, docs[0]["rating"])
}

func TestCreateProduct_InvalidNotPersisted(t *testing.T) {
	st := store.NewMemory("testdb")
	svc := NewCatalogService(st)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, map[string]any{
		"title":    "Broken",
		"price":    -1.0,
		"category": "Home",
	})

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)

	count, err := st.Count(ctx, schema.CollectionProduct, nil)
	require.NoError(t, err)
	assert.Zero(t, count, "invalid record must not reach the store")
}
