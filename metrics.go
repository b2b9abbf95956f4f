package astar

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
	OutcomeLimit     = "limit"
	OutcomeCancelled = "cancelled"
)

// Metrics collects Prometheus metrics for searches, all namespaced "astar":
//
//   - searches_total (counter, label outcome)
//   - expansions_total (counter)
//   - search_duration_seconds (histogram)
//   - path_steps (histogram, successful searches only)
//
// A nil *Metrics is valid and records nothing. Safe for concurrent use.
type Metrics struct {
	searches   *prometheus.CounterVec
	expansions prometheus.Counter
	duration   prometheus.Histogram
	pathSteps  prometheus.Histogram
}

// NewMetrics creates and registers the search metrics with registry, or
// with prometheus.DefaultRegisterer when registry is nil.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "astar",
			Name:      "searches_total",
			Help:      "Completed searches by outcome",
		}, []string{"outcome"}),
		expansions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "astar",
			Name:      "expansions_total",
			Help:      "Nodes moved to the closed set across all searches",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "astar",
			Name:      "search_duration_seconds",
			Help:      "Wall time of one search",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		pathSteps: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "astar",
			Name:      "path_steps",
			Help:      "Edges on the path of successful searches",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

func (metrics *Metrics) observe(result interface {
	Status() Status
	Expanded() int
	Steps() (int, error)
}, err error, elapsed time.Duration) {
	if metrics == nil {
		return
	}
	metrics.searches.WithLabelValues(outcomeOf(result.Status(), err)).Inc()
	metrics.expansions.Add(float64(result.Expanded()))
	metrics.duration.Observe(elapsed.Seconds())
	if steps, stepsErr := result.Steps(); stepsErr == nil {
		metrics.pathSteps.Observe(float64(steps))
	}
}

func outcomeOf(status Status, err error) string {
	switch {
	case errors.Is(err, ErrExpansionLimit):
		return OutcomeLimit
	case err != nil:
		return OutcomeCancelled
	case status == Found:
		return OutcomeFound
	default:
		return OutcomeExhausted
	}
}
