package middleware

import (
	"net/http"
	"strconv"
	"time"

	"pitchforge/internal/metrics"
)

// statusRecorder captures the response status for instrumentation.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Unwrap exposes the underlying writer so http.ResponseController keeps
// working through the wrapper (flushing matters for SSE).
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Metrics records request counts and latency per route pattern. The mux
// is consulted for the pattern because it only stamps r.Pattern on the
// request it hands to the matched handler, not on ours.
func Metrics(mux *http.ServeMux) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(recorder, r)

			// Label by the registered pattern, not the raw path, to keep
			// cardinality bounded
			_, route := mux.Handler(r)
			if route == "" {
				route = "unmatched"
			}
			metrics.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(recorder.status)).Inc()
			metrics.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
