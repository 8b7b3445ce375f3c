package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mof-mlip-agent/internal/contextutil"
	"mof-mlip-agent/internal/storage"
)

// SpecsHandler handles HTTP requests for the spec archive.
type SpecsHandler struct {
	service AgentService
}

// NewSpecsHandler creates a new SpecsHandler.
func NewSpecsHandler(service AgentService) *SpecsHandler {
	return &SpecsHandler{service: service}
}

// SpecsResponse represents the HTTP response payload for spec listings.
type SpecsResponse struct {
	Specs []storage.SpecRow `json:"specs"`
}

// ServeHTTP handles GET /api/specs. The optional ?limit= parameter bounds
// how many rows are returned, newest first.
func (h *SpecsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			logger.WarnContext(ctx, "invalid limit parameter", "limit", raw)
			writeError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = v
	}

	rows, err := h.service.ListSpecs(ctx, limit)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list specs")
		return
	}

	if rows == nil {
		rows = []storage.SpecRow{}
	}
	writeJSON(ctx, w, SpecsResponse{Specs: rows})
}

// SpecHandler handles HTTP requests for a single archived spec.
type SpecHandler struct {
	service AgentService
}

// NewSpecHandler creates a new SpecHandler.
func NewSpecHandler(service AgentService) *SpecHandler {
	return &SpecHandler{service: service}
}

// ServeHTTP handles GET /api/specs/{expID}. An unknown id yields 404.
func (h *SpecHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	expID := chi.URLParam(r, "expID")
	row, err := h.service.GetSpec(ctx, expID)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to get spec")
		return
	}

	writeJSON(ctx, w, row)
}
