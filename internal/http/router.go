package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mof-mlip-agent/internal/handlers"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Agent handlers.AgentService
	DB    handlers.Pinger
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	runHandler := handlers.NewRunHandler(deps.Agent)
	memoryHandler := handlers.NewMemoryHandler(deps.Agent)
	specsHandler := handlers.NewSpecsHandler(deps.Agent)
	specHandler := handlers.NewSpecHandler(deps.Agent)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/run", runHandler)
		r.Method(http.MethodGet, "/memory", memoryHandler)
		r.Method(http.MethodGet, "/specs", specsHandler)
		r.Method(http.MethodGet, "/specs/{expID}", specHandler)
	})
	r.Method(http.MethodGet, "/healthz", healthHandler)

	return r
}
