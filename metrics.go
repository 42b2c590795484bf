package clusterlab

import "github.com/clusterlab/clusterlab/orchestrate"

// MetricsCollector receives job lifecycle metrics from the workbench's
// orchestrator. Implement it to integrate with monitoring systems.
type MetricsCollector = orchestrate.Collector

// NoopMetricsCollector is a no-op MetricsCollector.
type NoopMetricsCollector = orchestrate.NoopCollector

// BasicMetricsCollector counts jobs in memory, for debugging and tests.
type BasicMetricsCollector = orchestrate.BasicCollector
