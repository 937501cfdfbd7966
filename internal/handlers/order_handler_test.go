package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flameshop/ecommerce-api/internal/schema"
	"github.com/flameshop/ecommerce-api/internal/service"
	"github.com/flameshop/ecommerce-api/internal/store"
	"github.com/flameshop/ecommerce-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderHandler(st store.Store) *OrderHandler {
	return NewOrderHandler(service.NewOrderService(st), logger.New("error"))
}

func TestCreateOrder_Created(t *testing.T) {
	st := store.NewMemory("testdb")
	handler := newOrderHandler(st)

	body := `{
		"items": [{"product_id": "p1", "title": "Mug", "price": 16.5, "quantity": 2}],
		"subtotal": 33.0,
		"tax": 2.5,
		"total": 35.5,
		"customer": {"name": "A", "email": "a@x.com", "address": "1 Rd"}
	}`
	w := httptest.NewRecorder()
	handler.CreateOrder(w, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.NotEmpty(t, response["id"])

	docs, err := st.Find(context.Background(), schema.CollectionOrder, nil)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "pending", docs[0]["status"], "status defaults to pending")
}

func TestCreateOrder_ValidationFailure(t *testing.T) {
	st := store.NewMemory("testdb")
	handler := newOrderHandler(st)

	body := `{
		"items": [{"product_id": "p1", "title": "Mug", "price": -1, "quantity": 0}],
		"subtotal": 33.0,
		"tax": 2.5,
		"total": 35.5,
		"customer": {"name": "A", "email": "bad", "address": "1 Rd"}
	}`
	w := httptest.NewRecorder()
	handler.CreateOrder(w, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response struct {
		Error  string `json:"error"`
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "Validation failed", response.Error)

	fields := make([]string, 0, len(response.Fields))
	for _, f := range response.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"items[0].price", "items[0].quantity", "customer.email"}, fields)

	count, err := st.Count(context.Background(), schema.CollectionOrder, nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateOrder_MalformedBody(t *testing.T) {
	handler := newOrderHandler(store.NewMemory("testdb"))

	w := httptest.NewRecorder()
	handler.CreateOrder(w, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("[]")))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrder_StoreUnavailable(t *testing.T) {
	handler := newOrderHandler(store.NewMemoryWithStatus(store.StatusUnavailable))

	body := `{
		"items": [{"product_id": "p1", "title": "Mug", "price": 16.5, "quantity": 2}],
		"subtotal": 33.0,
		"tax": 2.5,
		"total": 35.5,
		"customer": {"name": "A", "email": "a@x.com", "address": "1 Rd"}
	}`
	w := httptest.NewRecorder()
	handler.CreateOrder(w, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "Database not configured", response["error"])
}
