package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	Registry *prometheus.Registry

	Lookups  *prometheus.CounterVec // by kind and result
	Requests *prometheus.CounterVec // by route and status
}

// NewMetrics registers the service collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jep106",
			Name:      "lookups_total",
			Help:      "Manufacturer lookups by kind and result.",
		}, []string{"kind", "result"}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jep106",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
	}

	m.Registry.MustRegister(
		m.Lookups,
		m.Requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) lookup(kind string, found bool) {
	result := "hit"
	if !found {
		result = "miss"
	}
	m.Lookups.WithLabelValues(kind, result).Inc()
}
