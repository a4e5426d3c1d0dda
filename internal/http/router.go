package http

import (
	"net/http"

	"power-analytics/internal/pipelines"
	"power-analytics/internal/shared/loggers"
	"power-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(runner pipelines.Runner, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	runHandler := NewRunHandler(runner)

	router.Post("/runs", errorHandlingAdapter(runHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
