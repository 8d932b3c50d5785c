package container

import (
	"github.com/vnykmshr/seqflow/pkg/metrics"
)

// MetricsInserter wraps a Container with Prometheus metrics collection.
// Inserts and duplicate drops are recorded per container kind and target
// name; duplicates are detected by comparing Len before and after the
// delegated insert.
type MetricsInserter[E any] struct {
	inner    Container[E]
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics wraps inner with metrics enabled on the shared default
// registry.
func NewWithMetrics[E any](inner Container[E], name string) Container[E] {
	return NewWithConfigAndMetrics(inner, name, metrics.Config{
		Enabled: true,
	})
}

// NewWithConfigAndMetrics wraps inner with the given metrics configuration.
// When metrics are disabled the container is returned unwrapped.
func NewWithConfigAndMetrics[E any](inner Container[E], name string, metricsConfig metrics.Config) Container[E] {
	if !metricsConfig.Enabled {
		return inner
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	return &MetricsInserter[E]{
		inner:    inner,
		name:     name,
		registry: registry,
		enabled:  true,
	}
}

// Insert delegates to the wrapped container and records the insert.
func (mi *MetricsInserter[E]) Insert(v E) {
	before := mi.inner.Len()
	mi.inner.Insert(v)

	if mi.enabled {
		kind := mi.inner.Kind()
		mi.registry.ContainerInserts.WithLabelValues(kind, mi.name).Inc()

		if mi.inner.Len() == before {
			mi.registry.ContainerDuplicates.WithLabelValues(kind, mi.name).Inc()
		}
	}
}

// Len returns the number of elements in the wrapped container.
func (mi *MetricsInserter[E]) Len() int {
	return mi.inner.Len()
}

// Values returns the wrapped container's elements.
func (mi *MetricsInserter[E]) Values() []E {
	return mi.inner.Values()
}

// Kind returns the wrapped container's kind.
func (mi *MetricsInserter[E]) Kind() string {
	return mi.inner.Kind()
}

// EnableMetrics enables metrics collection.
func (mi *MetricsInserter[E]) EnableMetrics(config metrics.Config) error {
	mi.enabled = config.Enabled

	if config.Registry != nil {
		mi.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (mi *MetricsInserter[E]) DisableMetrics() {
	mi.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (mi *MetricsInserter[E]) MetricsEnabled() bool {
	return mi.enabled
}
