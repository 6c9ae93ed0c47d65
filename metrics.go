package workspace

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus; see examples/observability for an integration.
type MetricsCollector interface {
	// RecordAllocate is called once per Allocate call. bytes is the summed
	// requested size across all spaces, duration the total time taken and
	// err nil on success.
	RecordAllocate(bytes uint64, duration time.Duration, err error)

	// RecordRelease is called per block during release and rollback. err is
	// non-nil only when the block's readiness wait failed.
	RecordRelease(space Space, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(uint64, time.Duration, error) {}
func (NoopMetricsCollector) RecordRelease(Space, error)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocateCount      atomic.Int64
	AllocateErrors     atomic.Int64
	AllocateBytes      atomic.Int64
	AllocateTotalNanos atomic.Int64
	ReleaseCount       atomic.Int64
	ReleaseErrors      atomic.Int64
}

func (c *BasicMetricsCollector) RecordAllocate(bytes uint64, duration time.Duration, err error) {
	c.AllocateCount.Add(1)
	c.AllocateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		c.AllocateErrors.Add(1)
		return
	}
	c.AllocateBytes.Add(int64(bytes)) //nolint:gosec // sizes are bounded by the allocator
}

func (c *BasicMetricsCollector) RecordRelease(_ Space, err error) {
	c.ReleaseCount.Add(1)
	if err != nil {
		c.ReleaseErrors.Add(1)
	}
}

// AvgAllocateNanos returns the mean Allocate latency in nanoseconds.
func (c *BasicMetricsCollector) AvgAllocateNanos() int64 {
	n := c.AllocateCount.Load()
	if n == 0 {
		return 0
	}
	return c.AllocateTotalNanos.Load() / n
}
