package budget

import (
	"context"
	"fmt"

	"github.com/hupe1980/workspace"
)

// Wrap decorates alloc so every space charges c's budgets. Allocations in a
// space whose budget is exhausted fail with an error wrapping
// ErrBudgetExceeded; the workspace orchestrator rolls back and surfaces the
// failure like any other allocation error. Frees credit the budget back.
//
// Several wrapped allocators may share one Controller.
func Wrap(alloc workspace.Allocator, c *Controller) workspace.Allocator {
	return &budgetAllocator{
		host:   budgetMem{inner: alloc.HostMem(), space: workspace.SpaceHost, c: c},
		pinned: budgetMem{inner: alloc.PinnedMem(), space: workspace.SpacePinned, c: c},
		device: budgetMem{inner: alloc.DeviceMem(), space: workspace.SpaceDevice, c: c},
	}
}

type budgetAllocator struct {
	host   budgetMem
	pinned budgetMem
	device budgetMem
}

func (a *budgetAllocator) HostMem() workspace.MemAllocator   { return &a.host }
func (a *budgetAllocator) PinnedMem() workspace.MemAllocator { return &a.pinned }
func (a *budgetAllocator) DeviceMem() workspace.MemAllocator { return &a.device }

type budgetMem struct {
	inner workspace.MemAllocator
	space workspace.Space
	c     *Controller
}

func (m *budgetMem) Alloc(size, alignment uint64) ([]byte, error) {
	bytes := int64(size) //nolint:gosec // budget limits are int64 already

	if err := m.c.Throttle(context.Background(), bytes); err != nil {
		return nil, fmt.Errorf("budget: allocation pacing: %w", err)
	}
	if !m.c.TryAcquire(m.space, bytes) {
		return nil, fmt.Errorf("%w: %s space, %d bytes requested, %d in use",
			ErrBudgetExceeded, m.space, size, m.c.Usage(m.space))
	}

	data, err := m.inner.Alloc(size, alignment)
	if err != nil {
		m.c.Release(m.space, bytes)
		return nil, err
	}
	return data, nil
}

func (m *budgetMem) Free(data []byte, size, alignment uint64) {
	m.inner.Free(data, size, alignment)
	m.c.Release(m.space, int64(size)) //nolint:gosec // symmetric with Alloc
}
