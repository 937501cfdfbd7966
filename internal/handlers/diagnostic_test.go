package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/flameshop/ecommerce-api/internal/store"
	"github.com/flameshop/ecommerce-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_Liveness(t *testing.T) {
	handler := NewRootHandler(logger.New("error"))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "Ecommerce API Running", response["message"])
}

func TestDiagnostic_NotConfigured(t *testing.T) {
	st := store.NewMemoryWithStatus(store.StatusUnconfigured)
	handler := NewDiagnosticHandler(st, false, false, logger.New("error"))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	// The diagnostic endpoint must succeed regardless of connectivity.
	require.Equal(t, http.StatusOK, w.Code)

	var response DiagnosticResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "✅ Running", response.Backend)
	assert.Equal(t, "Not Connected", response.ConnectionStatus)
	assert.Equal(t, "❌ Not Set", response.DatabaseURL)
	assert.Equal(t, "❌ Not Set", response.DatabaseName)
	assert.Empty(t, response.Collections)
}

func TestDiagnostic_Unavailable(t *testing.T) {
	st := store.NewMemoryWithStatus(store.StatusUnavailable)
	handler := NewDiagnosticHandler(st, true, true, logger.New("error"))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var response DiagnosticResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "Not Connected", response.ConnectionStatus)
	assert.Equal(t, "✅ Set", response.DatabaseURL)
	assert.Contains(t, response.Database, "❌ Error")
}

func TestDiagnostic_Connected(t *testing.T) {
	st := store.NewMemory("testdb")
	_, err := st.Insert(context.Background(), "product", map[string]any{"title": "Mug"})
	require.NoError(t, err)

	handler := NewDiagnosticHandler(st, true, true, logger.New("error"))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var response DiagnosticResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "✅ Connected & Working", response.Database)
	assert.Equal(t, "Connected", response.ConnectionStatus)
	assert.Contains(t, response.Collections, "product")
}

func TestTruncate_KeepsRunesIntact(t *testing.T) {
	long := strings.Repeat("é", 40)

	short := truncate(long, 50)
	assert.Equal(t, long, short)

	short = truncate(strings.Repeat("é", 60), 50)
	assert.True(t, utf8.ValidString(short), "truncation must not split a rune")
	assert.Equal(t, 50, utf8.RuneCountInString(short))
}

func TestSchemaHandler_ListsAllKinds(t *testing.T) {
	handler := NewSchemaHandler(logger.New("error"))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schema", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	for _, kind := range []string{"user", "product", "order", "order_item", "customer_info"} {
		assert.Contains(t, response, kind)
	}
}
