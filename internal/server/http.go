package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const readinessTimeout = 2 * time.Second

// RouteMounter registers API routes on the shared router.
type RouteMounter interface {
	Routes(r chi.Router)
}

// Check is a named dependency probe used by /readyz.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// NewRouter builds the API router: middleware, health endpoints, metrics and the mounted API.
func NewRouter(cfg *config.App, logger zerolog.Logger, api RouteMounter, checks ...Check) http.Handler {
	r := chi.NewRouter()

	r.Use(requestID(logger))
	r.Use(accessLog)
	r.Use(instrument)
	r.Use(recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondMethodNotAllowed(w)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/readyz", readiness(checks))
	r.Handle("/metrics", promhttp.Handler())

	if api != nil {
		api.Routes(r)
	}
	return r
}

// NewHTTPServer wraps handler in a server listening on cfg.HTTPAddr.
func NewHTTPServer(cfg *config.App, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func readiness(checks []Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		status := make(map[string]string, len(checks))
		for _, check := range checks {
			if err := check.Ping(ctx); err != nil {
				requestLogger(r).Warn().Err(err).Str("dependency", check.Name).Msg("readiness check failed")
				httperrors.RespondError(w, http.StatusServiceUnavailable, httperrors.ErrCodeUpstreamError, check.Name+" unavailable")
				return
			}
			status[check.Name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":       "ready",
			"dependencies": status,
		})
	}
}
