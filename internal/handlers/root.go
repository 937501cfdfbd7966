package handlers

import (
	"log/slog"
	"net/http"
)

// RootHandler answers the liveness endpoint. No validation, no store access.
type RootHandler struct {
	log *slog.Logger
}

// NewRootHandler creates a new root handler.
func NewRootHandler(log *slog.Logger) *RootHandler {
	return &RootHandler{log: log}
}

// ServeHTTP handles GET /.
func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Ecommerce API Running"}, h.log)
}
