// Package metrics exposes Prometheus metrics about lesson checks run by the
// long-running modes of the tutor tool.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/dhamidi/tutor/lesson"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tutor"

// Check results used as the "result" label.
const (
	ResultOK        = "ok"
	ResultMalformed = "malformed"
	ResultInvariant = "invariant"
	ResultError     = "error"
)

type Collector struct {
	registry *prometheus.Registry

	checks    *prometheus.CounterVec
	duration  prometheus.Histogram
	size      prometheus.Histogram
	steps     prometheus.Histogram
	lastCheck prometheus.Gauge
}

// NewCollector registers the lesson metrics with registry. A nil registry
// gets a fresh one.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lesson_checks_total",
			Help:      "Lesson documents checked, by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lesson_parse_duration_seconds",
			Help:      "Time spent parsing and verifying one lesson document.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		size: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lesson_size_bytes",
			Help:      "Size of checked lesson documents.",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 6),
		}),
		steps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lesson_steps",
			Help:      "Number of steps in lesson documents that parsed.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50},
		}),
		lastCheck: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lesson_last_check_timestamp_seconds",
			Help:      "Unix time of the most recent check.",
		}),
	}

	registry.MustRegister(c.checks, c.duration, c.size, c.steps, c.lastCheck)
	for _, result := range []string{ResultOK, ResultMalformed, ResultInvariant, ResultError} {
		c.checks.WithLabelValues(result)
	}
	return c
}

// Result maps a check error to its label value.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, lesson.ErrMalformedDocument):
		return ResultMalformed
	case errors.Is(err, lesson.ErrInvariantViolation):
		return ResultInvariant
	default:
		return ResultError
	}
}

// ObserveCheck records one check of a document of size bytes. doc is nil
// when the check failed.
func (c *Collector) ObserveCheck(size int, doc *lesson.Document, duration time.Duration, err error) {
	c.checks.WithLabelValues(Result(err)).Inc()
	c.duration.Observe(duration.Seconds())
	c.size.Observe(float64(size))
	if doc != nil {
		c.steps.Observe(float64(len(doc.Steps())))
	}
	c.lastCheck.SetToCurrentTime()
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
