package workspace

import "fmt"

// AllocError indicates that the allocator could not satisfy the request for
// one memory space. Any blocks acquired before the failure have already been
// rolled back when this error is returned.
//
// The underlying allocator error can be accessed via errors.Unwrap.
type AllocError struct {
	Space     Space
	Size      uint64
	Alignment uint64
	cause     error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("workspace: %s allocation of %d bytes (alignment %d) failed: %v",
		e.Space, e.Size, e.Alignment, e.cause)
}

func (e *AllocError) Unwrap() error { return e.cause }

// SyncError indicates that waiting for a block's readiness event failed
// during release. The block's true completion state is unknown at that
// point, so neither freeing nor skipping the free is safe; release escalates
// this by panicking with a *SyncError rather than leaking or use-after-free.
//
// The underlying wait error can be accessed via errors.Unwrap.
type SyncError struct {
	Space Space
	cause error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("workspace: readiness wait for %s block failed: %v", e.Space, e.cause)
}

func (e *SyncError) Unwrap() error { return e.cause }
