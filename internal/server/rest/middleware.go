package rest

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/expedientes/internal/logging"
	"github.com/go-chi/chi/v5/middleware"
)

// requestLogger logs every request once it has been served. The level follows
// the status class: 5xx as errors, 4xx as warnings.
func requestLogger(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := statusOf(ww)
			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"duration", time.Since(start),
				"bytes", ww.BytesWritten(),
				"request_id", middleware.GetReqID(r.Context()),
			}

			switch {
			case status >= http.StatusInternalServerError:
				logger.Error(r.Context(), "http request", args...)
			case status >= http.StatusBadRequest:
				logger.Warn(r.Context(), "http request", args...)
			default:
				logger.Info(r.Context(), "http request", args...)
			}
		})
	}
}
