// Package metrics provides Prometheus instrumentation for seqflow components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for seqflow components.
type Registry struct {
	// Pipeline Metrics
	PipelineOperations *prometheus.CounterVec
	PipelineElements   *prometheus.CounterVec
	PipelineErrors     *prometheus.CounterVec
	TerminalDuration   *prometheus.HistogramVec

	// Container Metrics
	ContainerInserts    *prometheus.CounterVec
	ContainerDuplicates *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by seqflow components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Pipeline Metrics
		PipelineOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "pipeline",
				Name:      "operations_total",
				Help:      "Total number of pipeline operations applied",
			},
			[]string{"operation", "pipeline"},
		),

		PipelineElements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "pipeline",
				Name:      "elements_processed_total",
				Help:      "Total number of elements processed by pipeline operations",
			},
			[]string{"operation", "pipeline"},
		),

		PipelineErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "pipeline",
				Name:      "errors_total",
				Help:      "Total number of pipeline errors",
			},
			[]string{"error_type", "pipeline"},
		),

		TerminalDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "seqflow",
				Subsystem: "pipeline",
				Name:      "terminal_duration_seconds",
				Help:      "Time spent running terminal operations",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation", "pipeline"},
		),

		// Container Metrics
		ContainerInserts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "container",
				Name:      "inserts_total",
				Help:      "Total number of container insert operations",
			},
			[]string{"kind", "target"},
		),

		ContainerDuplicates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seqflow",
				Subsystem: "container",
				Name:      "duplicates_dropped_total",
				Help:      "Total number of duplicate values dropped by deduplicating containers",
			},
			[]string{"kind", "target"},
		),
	}
}
