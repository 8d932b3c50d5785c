package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Config holds configuration for metrics collection.
type Config struct {
	// Enabled controls whether metrics collection is active.
	Enabled bool

	// Registry is the Prometheus registerer to install metrics on. If nil,
	// the shared DefaultRegistry (bound to prometheus.DefaultRegisterer) is
	// used. A non-nil registerer must not already carry seqflow collectors.
	Registry prometheus.Registerer
}

// DefaultConfig returns a default metrics configuration: enabled, recording
// to the shared default registry.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
	}
}

// Instrumentable is an interface for components that can be instrumented with metrics.
type Instrumentable interface {
	// EnableMetrics enables metrics collection for this component.
	EnableMetrics(config Config) error

	// DisableMetrics disables metrics collection for this component.
	DisableMetrics()

	// MetricsEnabled returns true if metrics are currently enabled.
	MetricsEnabled() bool
}
