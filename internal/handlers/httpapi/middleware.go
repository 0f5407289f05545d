package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gaffer_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gaffer_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument wraps the mux with request logging and prometheus metrics. The
// route label is the matched pattern, not the concrete path, so path
// parameters cannot mint unbounded label pairs.
func instrument(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		_, route := mux.Handler(req)
		if route == "" {
			route = "unmatched"
		}

		mux.ServeHTTP(rec, req)

		duration := time.Since(start)

		requestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		requestDuration.WithLabelValues(route).Observe(duration.Seconds())

		if rec.status >= http.StatusInternalServerError {
			slog.Error("request failed",
				"route", route,
				"status", rec.status,
				"duration_ms", duration.Milliseconds(),
			)
		} else {
			slog.Info("request",
				"route", route,
				"status", rec.status,
				"duration_ms", duration.Milliseconds(),
			)
		}
	})
}
