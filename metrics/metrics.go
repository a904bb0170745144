package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "checkin", Name: "http_requests_total", Help: "Number of HTTP requests by method and status code."},
		[]string{"method", "status"},
	)
	ScansRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "checkin", Name: "scans_recorded_total", Help: "Number of scans recorded."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RequestsTotal)
	reg.MustRegister(ScansRecorded)
}
