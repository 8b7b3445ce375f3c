// Package handlers exposes the agent over HTTP. Each handler is a thin
// adapter: decode the request, call the service layer, encode the result.
package handlers

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_agent_service.go -package=mocks mof-mlip-agent/internal/handlers AgentService

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"mof-mlip-agent/internal/agent"
	"mof-mlip-agent/internal/contextutil"
	"mof-mlip-agent/internal/memory"
	"mof-mlip-agent/internal/storage"
)

// AgentService is the slice of the service layer the HTTP handlers need.
type AgentService interface {
	Run(ctx context.Context, query string) (agent.RunResult, error)
	ListMemory(ctx context.Context) ([]memory.Record, error)
	SearchMemory(ctx context.Context, query string) ([]memory.Record, error)
	ListSpecs(ctx context.Context, limit int) ([]storage.SpecRow, error)
	GetSpec(ctx context.Context, expID string) (storage.SpecRow, error)
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// writeJSON writes v as a JSON response with status 200.
func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// handleServiceError maps service errors to HTTP status codes.
func handleServiceError(ctx context.Context, w http.ResponseWriter, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	var validationErr *agent.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
		return
	}
	if errors.Is(err, agent.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}
	writeError(w, http.StatusInternalServerError, defaultMsg)
}
