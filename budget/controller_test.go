package budget

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/workspace"
)

func TestController_SpaceBudget(t *testing.T) {
	c := NewController(Config{PinnedLimitBytes: 100})

	// Acquire 50
	err := c.Acquire(context.Background(), workspace.SpacePinned, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), c.Usage(workspace.SpacePinned))

	// Acquire 40
	err = c.Acquire(context.Background(), workspace.SpacePinned, 40)
	require.NoError(t, err)
	assert.Equal(t, int64(90), c.Usage(workspace.SpacePinned))

	// TryAcquire 20 (should fail)
	ok := c.TryAcquire(workspace.SpacePinned, 20)
	assert.False(t, ok)
	assert.Equal(t, int64(90), c.Usage(workspace.SpacePinned))

	// Acquire 20 (should block/timeout)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err = c.Acquire(ctx, workspace.SpacePinned, 20)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Release 50, then 20 fits again
	c.Release(workspace.SpacePinned, 50)
	assert.Equal(t, int64(40), c.Usage(workspace.SpacePinned))
	assert.True(t, c.TryAcquire(workspace.SpacePinned, 20))
}

func TestController_SpacesAreIndependent(t *testing.T) {
	c := NewController(Config{PinnedLimitBytes: 10, DeviceLimitBytes: 10})

	require.True(t, c.TryAcquire(workspace.SpacePinned, 10))
	assert.False(t, c.TryAcquire(workspace.SpacePinned, 1))

	// The device budget is untouched by pinned usage.
	assert.True(t, c.TryAcquire(workspace.SpaceDevice, 10))

	// The host space has no limit, only tracking.
	assert.True(t, c.TryAcquire(workspace.SpaceHost, 1<<40))
	assert.Equal(t, int64(1<<40), c.Usage(workspace.SpaceHost))
}

func TestController_Unlimited(t *testing.T) {
	c := NewController(Config{})

	assert.True(t, c.TryAcquire(workspace.SpaceDevice, 1<<40))
	require.NoError(t, c.Acquire(context.Background(), workspace.SpaceDevice, 1<<40))
	c.Release(workspace.SpaceDevice, 2<<40)
	assert.Equal(t, int64(0), c.Usage(workspace.SpaceDevice))
}

func TestController_Nil(t *testing.T) {
	var c *Controller
	assert.True(t, c.TryAcquire(workspace.SpaceHost, 10))
	assert.NoError(t, c.Acquire(context.Background(), workspace.SpaceHost, 10))
	assert.NotPanics(t, func() { c.Release(workspace.SpaceHost, 10) })
	assert.Zero(t, c.Usage(workspace.SpaceHost))
	assert.NoError(t, c.Throttle(context.Background(), 10))
}

func TestController_Throttle(t *testing.T) {
	c := NewController(Config{AllocBytesPerSec: 1 << 20})

	// Within the burst: effectively immediate.
	start := time.Now()
	require.NoError(t, c.Throttle(context.Background(), 1024))
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	// Canceled context surfaces.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.Throttle(ctx, 1<<20)
	assert.Error(t, err)
}
