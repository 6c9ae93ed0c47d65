package workspace

import (
	"fmt"
	"os"
	"sync"
	"unsafe"

	"github.com/hupe1980/workspace/internal/conv"
	"github.com/hupe1980/workspace/internal/mem"
	"github.com/hupe1980/workspace/internal/mmap"
)

// HeapAllocator is the default Allocator, backed entirely by process memory.
//
// The host space is served from the garbage-collected heap with explicit
// alignment. The pinned space is served from anonymous mappings that are
// page-locked with mlock (VirtualLock on Windows), so the memory really is
// ineligible for paging, as DMA engines require. The device space is served
// from plain anonymous mappings: off-heap storage with a stable address,
// standing in for device memory on hosts without an accelerator runtime.
//
// A HeapAllocator is safe for concurrent use by multiple workspaces.
type HeapAllocator struct {
	host   hostMem
	pinned mappedMem
	device mappedMem
}

// NewHeapAllocator creates a HeapAllocator.
func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{
		pinned: mappedMem{lock: true, mappings: make(map[uintptr]*mmap.Mapping)},
		device: mappedMem{mappings: make(map[uintptr]*mmap.Mapping)},
	}
}

func (a *HeapAllocator) HostMem() MemAllocator   { return &a.host }
func (a *HeapAllocator) PinnedMem() MemAllocator { return &a.pinned }
func (a *HeapAllocator) DeviceMem() MemAllocator { return &a.device }

var defaultAllocator = sync.OnceValue(func() *HeapAllocator {
	return NewHeapAllocator()
})

// DefaultAllocator returns the process-wide HeapAllocator used by Allocate
// when no allocator is supplied.
func DefaultAllocator() Allocator {
	return defaultAllocator()
}

// hostMem serves the host space from the garbage-collected heap. Free drops
// the reference; the collector reclaims the storage.
type hostMem struct{}

func (hostMem) Alloc(size, alignment uint64) ([]byte, error) {
	n, err := conv.Uint64ToInt(size)
	if err != nil {
		return nil, fmt.Errorf("host alloc: %w", err)
	}
	align, err := conv.Uint64ToUintptr(alignment)
	if err != nil {
		return nil, fmt.Errorf("host alloc: %w", err)
	}
	return mem.AllocAligned(n, align), nil
}

func (hostMem) Free([]byte, uint64, uint64) {}

// mappedMem serves a space from anonymous mappings, optionally page-locked.
// Mappings are tracked by the address of the first returned byte so Free can
// find the mapping to unlock and unmap.
type mappedMem struct {
	lock     bool
	mu       sync.Mutex
	mappings map[uintptr]*mmap.Mapping
}

func (m *mappedMem) Alloc(size, alignment uint64) ([]byte, error) {
	n, err := conv.Uint64ToInt(size)
	if err != nil {
		return nil, fmt.Errorf("mapped alloc: %w", err)
	}

	// Mappings are page-aligned already; over-allocate only when the
	// requested alignment exceeds the page size.
	total := n
	pageSize := uint64(os.Getpagesize()) //nolint:gosec // page size is small and positive
	if alignment > pageSize {
		extra, err := conv.Uint64ToInt(alignment)
		if err != nil {
			return nil, fmt.Errorf("mapped alloc: %w", err)
		}
		total += extra
	}

	mapping, err := mmap.MapAnon(total)
	if err != nil {
		return nil, fmt.Errorf("mapped alloc: %w", err)
	}
	if m.lock {
		if err := mapping.Lock(); err != nil {
			_ = mapping.Close()
			return nil, fmt.Errorf("mapped alloc: page locking failed: %w", err)
		}
	}

	buf := mapping.Bytes()
	var offset uintptr
	if alignment > pageSize {
		align := uintptr(alignment)
		addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // alignment needs the raw address
		offset = (align - (addr & (align - 1))) & (align - 1)
	}
	data := buf[offset : offset+uintptr(n) : offset+uintptr(n)]

	m.mu.Lock()
	m.mappings[uintptr(unsafe.Pointer(&data[0]))] = mapping //nolint:gosec // key only, never dereferenced
	m.mu.Unlock()

	return data, nil
}

func (m *mappedMem) Free(data []byte, _, _ uint64) {
	if len(data) == 0 {
		return
	}
	key := uintptr(unsafe.Pointer(&data[0])) //nolint:gosec // key only, never dereferenced

	m.mu.Lock()
	mapping, ok := m.mappings[key]
	delete(m.mappings, key)
	m.mu.Unlock()

	if !ok {
		panic(fmt.Sprintf("workspace: free of unknown mapped block at %#x", key))
	}
	_ = mapping.Close()
}
