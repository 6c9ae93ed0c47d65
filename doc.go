// Package workspace provides composite scratch memory for accelerator-bound
// operators.
//
// An operator invocation often needs transient buffers in several memory
// spaces at once: regular host memory, page-locked (pinned) host memory and
// device memory. This package merges the requirements of many operators into
// one covering requirement per space, allocates all three spaces as a unit,
// and owns the result so that release happens exactly once on every path,
// after any in-flight asynchronous work has completed.
//
// # Quick Start
//
//	req := workspace.MergeRequirements(opA.WorkspaceReq(), opB.WorkspaceReq())
//
//	ws, err := workspace.Allocate(req, nil) // nil selects the heap allocator
//	if err != nil {
//	    return err
//	}
//	defer ws.Release()
//
//	launch(ws.Get().Device.Data)
//
// # Requirement Algebra
//
// Merge computes the smallest aligned region covering two requirements:
//
//	alignment = max(a.Alignment, b.Alignment)
//	size      = AlignUp(max(a.Size, b.Size), alignment)
//
// The result covers both inputs for non-simultaneous reuse, not
// co-residency. Repeated pairwise merging combines the needs of a whole
// pipeline into a single allocation.
//
// # Ownership
//
// Unique owns its three blocks exclusively and is move-only. The release
// action waits on each block's readiness Event before freeing it, so a
// workspace may be released while an asynchronous engine is still writing
// into it. The Allocator capability is borrowed and must outlive every
// Unique built against it.
//
// Allocate is a convenience and performs up to three allocations per call;
// for tight loops some reuse scheme or pooling on the caller's side is
// recommended.
package workspace
