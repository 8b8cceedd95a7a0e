package observability

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cleanearth_http_requests_total",
		Help: "Processed HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cleanearth_http_request_duration_seconds",
		Help:    "HTTP request latency distribution.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	cleanupSubmissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cleanearth_cleanup_submissions_total",
		Help: "Accepted cleanup submissions.",
	})

	pointsAwardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cleanearth_points_awarded_total",
		Help: "Points awarded for accepted cleanups.",
	})

	wasteCollectedKg = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cleanearth_waste_collected_kg_total",
		Help: "Reported waste weight in kilograms.",
	})
)

// ObserveRequest records one finished HTTP request.
func ObserveRequest(method, route string, status int, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveSubmission records one accepted cleanup.
func ObserveSubmission(points int, wasteKg float64) {
	cleanupSubmissionsTotal.Inc()
	pointsAwardedTotal.Add(float64(points))
	wasteCollectedKg.Add(wasteKg)
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
