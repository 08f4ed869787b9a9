package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotel_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hotel_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	reservationTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotel_reservation_transitions_total",
		Help: "Check-in and check-out attempts by result",
	}, []string{"action", "result"})

	registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotel_guest_registrations_total",
		Help: "Guest registrations split by whether a new guest row was created",
	}, []string{"guest"})

	logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotel_logins_total",
		Help: "Login attempts by result",
	}, []string{"result"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveTransition counts a status transition attempt. result is "ok", "invalid_state", "not_found" or "error".
func ObserveTransition(action, result string) {
	reservationTransitions.WithLabelValues(action, result).Inc()
}

func ObserveRegistration(newGuest bool) {
	label := "existing"
	if newGuest {
		label = "new"
	}
	registrations.WithLabelValues(label).Inc()
}

func ObserveLogin(success bool) {
	label := "failure"
	if success {
		label = "success"
	}
	logins.WithLabelValues(label).Inc()
}
