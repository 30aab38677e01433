// Package metrics counts property evaluations for the Prometheus /metrics endpoint.
package metrics

import (
	"net/http"
	"time"

	"github.com/fpawel/eqair/internal/air"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OutcomeOK labels a successful evaluation. Failures are labelled by air.Kind.
const OutcomeOK = "ok"

type Collector struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	sweepPoints *prometheus.CounterVec
}

// NewCollector registers evaluation metrics in registry, a new registry when nil.
func NewCollector(namespace string, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	c := &Collector{
		registry: registry,
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations_total",
				Help:      "Property evaluations by property and outcome",
			},
			[]string{"property", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration by route",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"route"},
		),
		sweepPoints: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sweep_points_total",
				Help:      "Sweep grid points by property",
			},
			[]string{"property"},
		),
	}
	registry.MustRegister(c.evaluations, c.duration, c.sweepPoints)
	return c
}

// Observe counts one evaluation of property x finished with err.
func (c *Collector) Observe(x air.Property, err error) {
	c.evaluations.WithLabelValues(x.String(), outcome(err)).Inc()
}

// ObserveSweep counts the points of a sweep of property x.
func (c *Collector) ObserveSweep(x air.Property, points int) {
	c.sweepPoints.WithLabelValues(x.String()).Add(float64(points))
}

// ObserveDuration records the time spent serving route since start.
func (c *Collector) ObserveDuration(route string, start time.Time) {
	c.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}

func outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	if k := air.Kind(err); k != "" {
		return k
	}
	return "error"
}
