// Package httptransport assembles the HTTP surface: middleware, module
// routes, health probes and the metrics endpoint.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"contium/internal/platform/health"
	"contium/internal/platform/metrics"
	"contium/internal/session"
	"contium/pkg/platform/middleware/request"
	"contium/pkg/platform/middleware/requesttime"
	"contium/pkg/platform/validation"
)

const requestTimeout = 30 * time.Second

// streamingPaths are exempt from the request timeout, which buffers the
// whole response and would defeat incremental flushing.
var streamingPaths = map[string]bool{
	"/verifications/stream": true,
}

// RouteRegistrar is implemented by every module handler.
type RouteRegistrar interface {
	Register(r chi.Router)
}

// Config carries everything NewRouter wires together.
type Config struct {
	Logger         *slog.Logger
	Sessions       session.Resolver
	Health         *health.Handler
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
	Handlers       []RouteRegistrar
}

// NewRouter wires all public endpoints with middleware.
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(cfg.Logger))
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(request.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(newCORS(cfg.AllowedOrigins).Handler)

	if cfg.Health != nil {
		cfg.Health.Register(r)
	}
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(api chi.Router) {
		api.Use(timeoutUnlessStreaming(requestTimeout))
		api.Use(request.BodyLimit(validation.MaxBodySize))
		api.Use(request.ContentTypeJSON)
		api.Use(session.Authenticate(cfg.Sessions, cfg.Logger))
		for _, h := range cfg.Handlers {
			h.Register(api)
		}
	})

	return r
}

func newCORS(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	})
}

func timeoutUnlessStreaming(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		timed := request.Timeout(timeout)(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if streamingPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}
			timed.ServeHTTP(w, r)
		})
	}
}
