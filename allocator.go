package workspace

// MemAllocator allocates and frees raw storage in a single memory space.
//
// The size and alignment passed to Free must exactly match those passed to
// the Alloc call that produced the data; implementations may rely on this
// symmetry for their bookkeeping.
//
// Implementations must be safe for reentrant use across many workspaces;
// this package never mutates an allocator, it only calls it.
type MemAllocator interface {
	// Alloc returns storage of at least size bytes whose first byte is
	// aligned to the given power-of-two alignment.
	Alloc(size, alignment uint64) ([]byte, error)

	// Free releases storage previously returned by Alloc.
	Free(data []byte, size, alignment uint64)
}

// Allocator supplies a MemAllocator per memory space.
//
// An Allocator is borrowed, never owned: it must outlive every Unique built
// against it, since the release action frees blocks through it.
type Allocator interface {
	HostMem() MemAllocator
	PinnedMem() MemAllocator
	DeviceMem() MemAllocator
}

// memFor returns the space-specific allocator of a.
func memFor(a Allocator, s Space) MemAllocator {
	switch s {
	case SpaceHost:
		return a.HostMem()
	case SpacePinned:
		return a.PinnedMem()
	default:
		return a.DeviceMem()
	}
}
