package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/cybersoft-az/contact-api/internal/delivery"
)

// RouterConfig carries everything the router needs.
type RouterConfig struct {
	// ContactPath is the path accepting form submissions; defaults to
	// /api/contact when empty.
	ContactPath string
	// AllowedOrigins is the CORS allow-list.
	AllowedOrigins []string
	// Delivery relays validated submissions to the mail provider.
	Delivery *delivery.Service
	// Log is the application logger.
	Log zerolog.Logger
}

// NewRouter creates a chi.Mux with all routes and middleware configured.
// CORS runs inside the middleware chain so preflight requests and error
// responses on every path carry the headers.
func NewRouter(cfg RouterConfig) *chi.Mux {
	contactPath := cfg.ContactPath
	if contactPath == "" {
		contactPath = "/api/contact"
	}

	r := chi.NewRouter()

	r.Use(CorrelationIDMiddleware)
	r.Use(LoggingMiddleware(cfg.Log))
	r.Use(RecoverMiddleware(cfg.Log))
	r.Use(NewCORSPolicy(cfg.AllowedOrigins).Middleware)

	r.Post(contactPath, ContactHandler(cfg.Delivery))

	// Operational endpoints, not part of the public contract.
	r.Get("/healthz", HealthzHandler())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	notFound := func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "Not Found")
	}
	r.NotFound(notFound)
	// A wrong method on a known path is indistinguishable from an unknown
	// path as far as the caller is concerned.
	r.MethodNotAllowed(notFound)

	return r
}
