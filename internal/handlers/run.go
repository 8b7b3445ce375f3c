package handlers

import (
	"encoding/json"
	"net/http"

	"mof-mlip-agent/internal/contextutil"
)

// RunHandler handles HTTP requests to execute an agent run.
type RunHandler struct {
	service AgentService
}

// NewRunHandler creates a new RunHandler.
func NewRunHandler(service AgentService) *RunHandler {
	return &RunHandler{service: service}
}

// RunRequest represents the HTTP request payload for a run.
type RunRequest struct {
	Query string `json:"query"`
}

// ServeHTTP handles POST /api/run. The response body is the RunResult: a
// completed run carries the spec and its output path, a rejected run only
// the verdict.
func (h *RunHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Run(ctx, req.Query)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to run agent")
		return
	}

	writeJSON(ctx, w, result)
}
