package workspace

import "fmt"

// MemRequirement describes the scratch memory an operator needs in a single
// memory space.
//
// Alignment must be a power of two and Size a multiple of Alignment. A
// zero-size requirement is the neutral element of Merge and may carry any
// alignment. The zero value {0, 0} is treated as "no requirement".
type MemRequirement struct {
	Size      uint64
	Alignment uint64
}

// MemReq builds a MemRequirement, rounding size up to the next multiple of
// alignment. It panics if alignment is not a power of two.
func MemReq(size, alignment uint64) MemRequirement {
	if size == 0 {
		return MemRequirement{Size: 0, Alignment: 1}
	}
	mustPow2(alignment)
	return MemRequirement{Size: AlignUp(size, alignment), Alignment: alignment}
}

// Requirements is the combined scratch memory requirement of an operator,
// one MemRequirement per memory space. Spaces are orthogonal; there are no
// cross-space invariants.
type Requirements struct {
	Host   MemRequirement
	Pinned MemRequirement
	Device MemRequirement
}

// TotalSize returns the summed size across all three spaces. Informational
// only; the spaces are never allocated from a common region.
func (r Requirements) TotalSize() uint64 {
	return r.Host.Size + r.Pinned.Size + r.Device.Size
}

// AlignUp rounds v up to the next multiple of alignment. alignment must be a
// power of two.
func AlignUp(v, alignment uint64) uint64 {
	mask := alignment - 1
	return (v + mask) &^ mask
}

// mustPow2 fails fast on invalid alignments. A bad alignment is a
// programming error in the operator's requirement computation, not a
// recoverable condition.
func mustPow2(alignment uint64) {
	if alignment == 0 || alignment&(alignment-1) != 0 {
		panic(fmt.Sprintf("workspace: alignment %d is not a power of two", alignment))
	}
}

// Merge computes a requirement that covers both a and b:
//
//	alignment = max(a.Alignment, b.Alignment)
//	size      = AlignUp(max(a.Size, b.Size), alignment)
//
// The result is the smallest aligned region satisfying either requirement
// when the two users are not live simultaneously. Merge is commutative,
// associative and idempotent; {Size: 0, Alignment: 1} is its neutral
// element.
//
// Merge panics if an input with nonzero size carries a non-power-of-two
// alignment.
func Merge(a, b MemRequirement) MemRequirement {
	if a.Size != 0 {
		mustPow2(a.Alignment)
	}
	if b.Size != 0 {
		mustPow2(b.Alignment)
	}

	var ret MemRequirement
	ret.Alignment = max(a.Alignment, b.Alignment)
	if ret.Alignment == 0 {
		ret.Alignment = 1
	}
	mustPow2(ret.Alignment)
	ret.Size = AlignUp(max(a.Size, b.Size), ret.Alignment)
	return ret
}

// MergeRequirements applies Merge independently to each memory space.
//
// Callers combine the needs of a pipeline of operators by repeated pairwise
// merging, then allocate once:
//
//	req := opA.WorkspaceReq()
//	req = workspace.MergeRequirements(req, opB.WorkspaceReq())
//	req = workspace.MergeRequirements(req, opC.WorkspaceReq())
func MergeRequirements(a, b Requirements) Requirements {
	return Requirements{
		Host:   Merge(a.Host, b.Host),
		Pinned: Merge(a.Pinned, b.Pinned),
		Device: Merge(a.Device, b.Device),
	}
}
