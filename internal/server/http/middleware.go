package httptransport

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophclip/internal/logging"
	"github.com/go-chi/chi/v5/middleware"
)

// LoggingMiddleware logs one line per request and carries chi's request id
// into the context so handler logs share it. It must run after
// middleware.RequestID.
func LoggingMiddleware(log logging.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logging.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
			r = r.WithContext(ctx)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				log.Info(ctx, "http_request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"duration_ms", time.Since(start).Milliseconds(),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
