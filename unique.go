package workspace

// ReleaseFunc releases the blocks of a workspace. It is invoked at most once
// by Unique, with the workspace passed by reference so the function can nil
// out freed blocks as it goes.
type ReleaseFunc func(*Workspace)

// Unique owns a Workspace and its underlying storage, in the way a unique
// pointer with a custom deleter would.
//
// A Unique is move-only: use Move to transfer ownership, never copy the
// struct, since two owners of the same storage would double-free. The zero
// value is an empty Unique owning nothing; releasing it is a no-op.
//
// Only one goroutine may drive a given Unique's lifetime.
type Unique struct {
	ws      Workspace
	release ReleaseFunc
}

// NewUnique takes ownership of all three blocks of ws. release is invoked
// exactly once, on the first Release call, with the owned workspace.
func NewUnique(ws Workspace, release ReleaseFunc) *Unique {
	return &Unique{ws: ws, release: release}
}

// Get returns read-only access to the owned workspace. The returned pointer
// is valid only while u remains the owner; after Release it observes the
// all-nil state.
func (u *Unique) Get() *Workspace {
	return &u.ws
}

// Move transfers ownership to a fresh Unique, leaving u empty. Releasing u
// afterwards is a no-op.
func (u *Unique) Move() *Unique {
	out := &Unique{ws: u.ws, release: u.release}
	u.ws = Workspace{}
	u.release = nil
	return out
}

// Release runs the release action, then clears the workspace and the action
// so a second Release is a no-op. Call it on every exit path, typically via
// defer, immediately after obtaining the Unique.
//
// If a block's readiness wait fails during release this is unrecoverable and
// Release panics with a *SyncError (see SyncError).
func (u *Unique) Release() {
	if u == nil || u.release == nil {
		return
	}
	rel := u.release
	u.release = nil
	rel(&u.ws)
	u.ws = Workspace{}
}

// releaser is the release strategy bound to an Allocator. It backs both the
// normal release path and rollback of partial allocations, so the two can
// never drift apart.
type releaser struct {
	alloc   Allocator
	logger  *Logger
	metrics MetricsCollector
}

// run releases every allocated block of ws in fixed order: host, then
// pinned, then device. For each block it first waits on the readiness event
// if one is attached, then frees the data with the recorded requirement and
// nils it out. Freeing is always sequenced strictly after that block's wait
// completes.
//
// run panics with a *SyncError if a readiness wait fails.
func (r *releaser) run(ws *Workspace) {
	for _, s := range Spaces {
		b := ws.BlockFor(s)
		if b.Ready != nil {
			if err := b.Ready.Wait(); err != nil {
				r.metrics.RecordRelease(s, err)
				panic(&SyncError{Space: s, cause: err})
			}
		}
		if b.Data != nil {
			memFor(r.alloc, s).Free(b.Data, b.Req.Size, b.Req.Alignment)
			r.logger.LogRelease(s, b.Req.Size)
			r.metrics.RecordRelease(s, nil)
			b.Data = nil
		}
	}
}
