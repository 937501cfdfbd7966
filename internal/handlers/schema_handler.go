package handlers

import (
	"log/slog"
	"net/http"

	"github.com/flameshop/ecommerce-api/internal/schema"
)

// SchemaHandler serves the record-kind definitions so database tooling can
// render and validate documents without hardcoding the shapes.
type SchemaHandler struct {
	log *slog.Logger
}

// NewSchemaHandler creates a new schema handler.
func NewSchemaHandler(log *slog.Logger) *SchemaHandler {
	return &SchemaHandler{log: log}
}

// ServeHTTP handles GET /schema.
func (h *SchemaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, schema.Definitions(), h.log)
}
