// Package metrics provides Prometheus instrumentation for seqflow components.
//
// This package enables monitoring and observability for seqflow's pipeline and
// container components through Prometheus metrics.
//
// # Overview
//
// The metrics package provides automatic instrumentation for:
//   - Pipeline operations (intermediate and terminal operation counts, elements
//     processed, error counts, terminal durations)
//   - Container targets (inserts, duplicates dropped by deduplicating kinds)
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	// Instrumented pipeline source
//	s := stage.FromSliceWithMetrics(orders, "order_totals", metrics.DefaultConfig())
//
//	// Instrumented collect target
//	dst := container.NewWithConfigAndMetrics[int](container.NewHashSet[int](), "seen_ids", metrics.DefaultConfig())
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
//	s := stage.FromSliceWithMetrics(values, "batch_17", config)
//
// # Available Metrics
//
// ## Pipeline Metrics
//
//   - seqflow_pipeline_operations_total: Total number of pipeline operations applied
//   - seqflow_pipeline_elements_processed_total: Total number of elements processed by pipeline operations
//   - seqflow_pipeline_errors_total: Total number of pipeline errors
//   - seqflow_pipeline_terminal_duration_seconds: Time spent running terminal operations
//
// ## Container Metrics
//
//   - seqflow_container_inserts_total: Total number of container insert operations
//   - seqflow_container_duplicates_dropped_total: Total number of duplicate values dropped
//
// # Labels
//
// Metrics include relevant labels for filtering and aggregation:
//
//   - pipeline: User-provided name for the pipeline instance
//   - operation: Pipeline operation name (e.g., "filter", "map", "reduce", "collect")
//   - error_type: Pipeline error class (e.g., "empty_sequence")
//   - kind: Container kind (e.g., "list", "hashset", "treeset")
//   - target: User-provided name for the container instance
//
// # Performance
//
// Metrics collection is designed for minimal overhead:
//   - Metrics are updated only when operations occur
//   - No background goroutines or timers
//   - Conditional metrics updates based on enabled state
//   - Uninstrumented pipelines skip recording entirely
package metrics
