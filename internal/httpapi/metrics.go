package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	fallbacks *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "explorer_state",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of codec requests handled.",
			},
			[]string{"operation", "status"},
		),
		fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "explorer_state",
				Subsystem: "decode",
				Name:      "fallbacks_total",
				Help:      "Parameters dropped or reset to a default while decoding links.",
			},
			[]string{"param"},
		),
	}

	m.registry.MustRegister(
		m.requests,
		m.fallbacks,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}
