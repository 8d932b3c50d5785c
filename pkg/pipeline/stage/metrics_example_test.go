package stage

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/seqflow/pkg/metrics"
)

// Example_metricsBasic demonstrates metrics collection on a pipeline.
func Example_metricsBasic() {
	// Create a separate registry to avoid conflicts
	customRegistry := prometheus.NewRegistry()
	metricsConfig := metrics.Config{
		Enabled:  true,
		Registry: customRegistry,
	}

	// Every operation on this stage and its descendants is recorded under
	// the pipeline name "order_totals"
	orders := FromSliceWithMetrics([]float64{9.99, 24.50, 3.75, 104.00}, "order_totals", metricsConfig)

	total := orders.
		Filter(func(amount float64) bool { return amount < 100 }).
		Fold(0, func(acc, amount float64) float64 { return acc + amount })

	fmt.Printf("Total below 100: %.2f\n", total)

	// Output:
	// Total below 100: 38.24
}

// Example_metricsErrorRecording demonstrates that failed reduces are recorded.
func Example_metricsErrorRecording() {
	customRegistry := prometheus.NewRegistry()
	metricsConfig := metrics.Config{
		Enabled:  true,
		Registry: customRegistry,
	}

	empty := FromSliceWithMetrics([]int{}, "empty_batch", metricsConfig)

	// The failure is returned to the caller and counted under
	// seqflow_pipeline_errors_total{error_type="empty_sequence"}
	_, err := empty.Reduce(func(acc, x int) int { return acc + x })
	fmt.Printf("Reduce on empty batch: %v\n", err)

	// Output:
	// Reduce on empty batch: stage: empty sequence
}

// Example_metricsConfiguration demonstrates different metrics configurations.
func Example_metricsConfiguration() {
	// Metrics disabled: the source behaves exactly like FromSlice
	disabledConfig := metrics.Config{
		Enabled: false,
	}
	plain := FromSliceWithMetrics([]int{1, 2, 3}, "plain_pipeline", disabledConfig)

	// Metrics enabled on a separate registry
	customRegistry := prometheus.NewRegistry()
	enabledConfig := metrics.Config{
		Enabled:  true,
		Registry: customRegistry,
	}
	instrumented := FromSliceWithMetrics([]int{1, 2, 3}, "tracked_pipeline", enabledConfig)

	fmt.Printf("Plain sum: %d\n", plain.Fold(0, func(acc, x int) int { return acc + x }))
	fmt.Printf("Instrumented sum: %d\n", instrumented.Fold(0, func(acc, x int) int { return acc + x }))

	// Output:
	// Plain sum: 6
	// Instrumented sum: 6
}
