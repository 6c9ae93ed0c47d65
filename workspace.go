package workspace

// Event represents asynchronous work that may still be writing into a memory
// block. Wait blocks the calling goroutine until that work has completed.
//
// Events are observed, never owned: this package waits on them during
// release but does not create or destroy them. Their lifecycle belongs to
// the execution engine that issued the work. The caller must not invalidate
// an event before the owning Unique has been released.
type Event interface {
	Wait() error
}

// EventFunc adapts a plain function to the Event interface.
type EventFunc func() error

// Wait calls f.
func (f EventFunc) Wait() error { return f() }

// Block is the per-space part of a Workspace.
//
// Data is nil iff the block holds no allocation; a zero-size requirement
// never allocates. Req always records the requirement the block was built
// from, allocated or not, because Free demands the exact size and alignment
// passed to Alloc. Ready, when non-nil, must complete before the block may
// be freed.
type Block struct {
	Data  []byte
	Req   MemRequirement
	Ready Event
}

// Workspace is the composite of up to three memory blocks, one per space.
//
// Workspace is a plain value describing what exists; it carries no ownership
// semantics by itself. Ownership lives in Unique.
type Workspace struct {
	Host   Block
	Pinned Block
	Device Block
}

// BlockFor returns the block for the given space.
func (w *Workspace) BlockFor(s Space) *Block {
	switch s {
	case SpaceHost:
		return &w.Host
	case SpacePinned:
		return &w.Pinned
	default:
		return &w.Device
	}
}
