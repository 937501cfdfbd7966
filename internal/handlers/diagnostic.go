package handlers

import (
	"log/slog"
	"net/http"

	"github.com/flameshop/ecommerce-api/internal/store"
)

// collectionSample caps how many collection names the diagnostic reports.
const collectionSample = 10

// DiagnosticHandler reports backend liveness, store connectivity and the
// presence of the required connection configuration. Every failure during
// introspection is rendered as a status string; the endpoint itself never
// returns an error and never leaks credentials.
type DiagnosticHandler struct {
	store   store.Store
	urlSet  bool
	nameSet bool
	log     *slog.Logger
}

// NewDiagnosticHandler creates a new diagnostic handler. urlSet and nameSet
// report whether the connection string and database name were present in the
// environment, not whether they were correct.
func NewDiagnosticHandler(st store.Store, urlSet, nameSet bool, log *slog.Logger) *DiagnosticHandler {
	return &DiagnosticHandler{
		store:   st,
		urlSet:  urlSet,
		nameSet: nameSet,
		log:     log,
	}
}

// DiagnosticResponse is the GET /test payload.
type DiagnosticResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// ServeHTTP handles GET /test.
func (h *DiagnosticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := DiagnosticResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      setOrNot(h.urlSet),
		DatabaseName:     setOrNot(h.nameSet),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	switch h.store.Status() {
	case store.StatusConnected:
		response.ConnectionStatus = "Connected"
		names, err := h.store.CollectionNames(ctx, collectionSample)
		if err != nil {
			response.Database = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
		} else {
			response.Database = "✅ Connected & Working"
			response.Collections = names
		}
	case store.StatusUnavailable:
		detail := h.store.StatusDetail()
		if detail == "" {
			detail = "connection attempt failed"
		}
		response.Database = "❌ Error: " + truncate(detail, 50)
	}

	WriteJSON(w, http.StatusOK, response, h.log)
}

func setOrNot(present bool) string {
	if present {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate caps s at n characters without splitting a multi-byte rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
