package handlers

import (
	"net/http"

	"mof-mlip-agent/internal/contextutil"
	"mof-mlip-agent/internal/memory"
)

// MemoryHandler handles HTTP requests for the memory store.
type MemoryHandler struct {
	service AgentService
}

// NewMemoryHandler creates a new MemoryHandler.
func NewMemoryHandler(service AgentService) *MemoryHandler {
	return &MemoryHandler{service: service}
}

// MemoryResponse represents the HTTP response payload for memory queries.
type MemoryResponse struct {
	Records []memory.Record `json:"records"`
}

// ServeHTTP handles GET /api/memory. Without a query parameter it returns
// every record oldest first; with ?q= it returns keyword retrieval results.
func (h *MemoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var (
		records []memory.Record
		err     error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		records, err = h.service.SearchMemory(ctx, q)
	} else {
		records, err = h.service.ListMemory(ctx)
	}
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to read memory")
		return
	}

	if records == nil {
		records = []memory.Record{}
	}
	writeJSON(ctx, w, MemoryResponse{Records: records})
}
