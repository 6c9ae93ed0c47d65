// Package budget enforces per-space byte budgets on a workspace Allocator.
//
// Pinned and device memory are scarce; a Controller caps how much of each
// space the wrapped allocator may hand out, and can optionally pace the rate
// of fresh allocations for callers that churn workspaces in tight loops
// instead of pooling them.
package budget

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/hupe1980/workspace"
)

// ErrBudgetExceeded is returned when an allocation would exceed the budget
// configured for its memory space.
var ErrBudgetExceeded = errors.New("budget: space budget exceeded")

// Config holds per-space limits.
type Config struct {
	// HostLimitBytes caps host-space memory. If 0, the host space is only
	// tracked, not limited.
	HostLimitBytes int64

	// PinnedLimitBytes caps pinned-space memory. If 0, unlimited.
	PinnedLimitBytes int64

	// DeviceLimitBytes caps device-space memory. If 0, unlimited.
	DeviceLimitBytes int64

	// AllocBytesPerSec paces fresh allocations across all spaces. If 0,
	// unpaced. Must exceed the largest single allocation, which also serves
	// as the burst size.
	AllocBytesPerSec int64
}

type spaceBudget struct {
	sem  *semaphore.Weighted // nil if unlimited
	used atomic.Int64
}

// Controller tracks and limits workspace memory per space.
type Controller struct {
	cfg     Config
	budgets [3]spaceBudget
	limiter *rate.Limiter // nil if unpaced
}

// NewController creates a new Controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	limits := [3]int64{cfg.HostLimitBytes, cfg.PinnedLimitBytes, cfg.DeviceLimitBytes}
	for i, limit := range limits {
		if limit > 0 {
			c.budgets[i].sem = semaphore.NewWeighted(limit)
		}
	}

	if cfg.AllocBytesPerSec > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.AllocBytesPerSec), int(cfg.AllocBytesPerSec))
	}

	return c
}

// Acquire reserves bytes in the given space, blocking until the space's
// budget has room or ctx is canceled.
func (c *Controller) Acquire(ctx context.Context, space workspace.Space, bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	b := &c.budgets[space]
	if b.sem != nil {
		if err := b.sem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}
	b.used.Add(bytes)
	return nil
}

// TryAcquire reserves bytes in the given space without blocking.
// Returns true if acquired, false if the budget would be exceeded.
func (c *Controller) TryAcquire(space workspace.Space, bytes int64) bool {
	if c == nil || bytes <= 0 {
		return true
	}

	b := &c.budgets[space]
	if b.sem != nil {
		if !b.sem.TryAcquire(bytes) {
			return false
		}
	}
	b.used.Add(bytes)
	return true
}

// Release returns reserved bytes to the given space's budget.
func (c *Controller) Release(space workspace.Space, bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	b := &c.budgets[space]
	if b.sem != nil {
		b.sem.Release(bytes)
	}
	b.used.Add(-bytes)
}

// Usage returns the bytes currently reserved in the given space.
func (c *Controller) Usage(space workspace.Space) int64 {
	if c == nil {
		return 0
	}
	return c.budgets[space].used.Load()
}

// Throttle waits until the pacing budget admits bytes more of allocation.
func (c *Controller) Throttle(ctx context.Context, bytes int64) error {
	if c == nil || c.limiter == nil || bytes <= 0 {
		return nil
	}
	return c.limiter.WaitN(ctx, int(bytes))
}
