// Package httptransport exposes the issuer and resolver as a small JSON API
// built on chi.
package httptransport

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophclip/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Issuer interface {
	Issue(ctx context.Context, content, expiry string) (string, error)
}

type Resolver interface {
	Resolve(ctx context.Context, code string) (string, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the router serves.
type Deps struct {
	Issuer         Issuer
	Resolver       Resolver
	Ready          Pinger
	Metrics        http.Handler
	AllowedOrigins []string
}

const readyTimeout = 2 * time.Second

func NewRouter(log logging.Logger, d Deps) http.Handler {
	h := &handlers{log: log, issuer: d.Issuer, resolver: d.Resolver}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.MethodNotAllowed(methodNotAllowed)
		r.Post("/share", h.share)
		r.Post("/fetch", h.fetch)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if d.Ready != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
			defer cancel()
			if err := d.Ready.Ping(ctx); err != nil {
				log.Warn(r.Context(), "readiness check failed", "error", err)
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics)
	}

	return r
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
