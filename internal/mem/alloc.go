// Package mem provides aligned heap allocation.
package mem

import (
	"unsafe"
)

// AllocAligned allocates a byte slice of the given size whose first byte is
// aligned to the given power-of-two alignment. The returned slice has
// length and capacity equal to size and is zero-initialized.
//
// Note: This function allocates slightly more memory than requested to ensure
// alignment. The underlying array is kept alive by the returned slice.
func AllocAligned(size int, alignment uintptr) []byte {
	if size <= 0 {
		return nil
	}
	if alignment <= 1 {
		return make([]byte, size)
	}

	// Allocate size + alignment to ensure we can find an aligned offset.
	// We need enough space to shift the start pointer up to alignment-1 bytes.
	totalSize := size + int(alignment)
	buf := make([]byte, totalSize)

	// Calculate the offset to the first aligned byte
	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (alignment - (addr & (alignment - 1))) & (alignment - 1)

	// Return the slice starting at the aligned offset
	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}
