package orchestrate

import (
	"sync/atomic"
	"time"
)

// Collector receives operational metrics from the orchestrator. Implement
// it to integrate with monitoring systems; the zero-cost default is
// NoopCollector.
type Collector interface {
	// RecordSubmit is called when a job is accepted.
	RecordSubmit()

	// RecordComplete is called when a job reaches Completed.
	// duration covers resolution plus clustering.
	RecordComplete(duration time.Duration)

	// RecordFailure is called when a job reaches Failed.
	RecordFailure(duration time.Duration, err error)

	// RecordCancel is called when a job reaches Cancelled.
	RecordCancel()
}

// NoopCollector is a no-op Collector.
type NoopCollector struct{}

func (NoopCollector) RecordSubmit()                      {}
func (NoopCollector) RecordComplete(time.Duration)       {}
func (NoopCollector) RecordFailure(time.Duration, error) {}
func (NoopCollector) RecordCancel()                      {}

// BasicCollector counts jobs in memory. Useful for debugging and tests
// without an external monitoring system.
type BasicCollector struct {
	Submitted      atomic.Int64
	Completed      atomic.Int64
	Failed         atomic.Int64
	Cancelled      atomic.Int64
	CompletedNanos atomic.Int64
}

func (c *BasicCollector) RecordSubmit() { c.Submitted.Add(1) }

func (c *BasicCollector) RecordComplete(d time.Duration) {
	c.Completed.Add(1)
	c.CompletedNanos.Add(int64(d))
}

func (c *BasicCollector) RecordFailure(time.Duration, error) { c.Failed.Add(1) }

func (c *BasicCollector) RecordCancel() { c.Cancelled.Add(1) }
