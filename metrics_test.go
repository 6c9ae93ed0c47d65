package workspace

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var c BasicMetricsCollector

	c.RecordAllocate(100, 10*time.Millisecond, nil)
	c.RecordAllocate(200, 20*time.Millisecond, nil)
	c.RecordAllocate(300, 30*time.Millisecond, errors.New("boom"))

	assert.Equal(t, int64(3), c.AllocateCount.Load())
	assert.Equal(t, int64(1), c.AllocateErrors.Load())
	assert.Equal(t, int64(300), c.AllocateBytes.Load(), "failed allocations contribute no bytes")
	assert.Equal(t, (20 * time.Millisecond).Nanoseconds(), c.AvgAllocateNanos())

	c.RecordRelease(SpaceHost, nil)
	c.RecordRelease(SpaceDevice, errors.New("wait failed"))
	assert.Equal(t, int64(2), c.ReleaseCount.Load())
	assert.Equal(t, int64(1), c.ReleaseErrors.Load())
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	var c BasicMetricsCollector
	assert.Zero(t, c.AvgAllocateNanos())
}
