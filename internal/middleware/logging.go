package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/benx421/payment-gateway/balance/internal/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// RequestLogging logs every request and records its Prometheus metrics.
// Metrics are labelled by the matched route pattern so path parameters do
// not blow up label cardinality.
func RequestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			latency := time.Since(start)
			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			metrics.RecordHTTPRequest(r.Method, route, strconv.Itoa(rec.status), latency.Seconds())

			path := r.URL.Path
			if r.URL.RawQuery != "" {
				path = path + "?" + r.URL.RawQuery
			}

			level := slog.LevelInfo
			if rec.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(r.Context(), level, "HTTP request",
				"method", r.Method,
				"path", path,
				"status", rec.status,
				"latency_ms", latency.Milliseconds(),
				"client_ip", clientIP(r),
				"user_agent", r.UserAgent(),
			)
		})
	}
}
