package middleware

import (
	"net/http"
	"time"

	"field-ministry/campo/internal/auth"
	"field-ministry/campo/internal/logging"
)

// Logging writes one structured line per request after it completes.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		fields := []interface{}{
			"request_id", auth.GetRequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"endpoint", RoutePattern(r),
			"status_code", wrapped.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if wrapped.statusCode >= http.StatusInternalServerError {
			logging.Warn("HTTP request failed", fields...)
			return
		}
		logging.Info("HTTP request completed", fields...)
	})
}
