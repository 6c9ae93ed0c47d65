// Package mmap provides anonymous memory mappings for off-heap allocation.
//
// # Overview
//
// MapAnon() creates read-write anonymous mappings outside the Go garbage
// collector's control. The workspace heap allocator obtains pinned and
// device-space blocks from such mappings: the memory has a stable address
// for the lifetime of the mapping and can be page-locked via Lock().
//
// # Platform Support
//
// The package provides a unified API across platforms:
//
//   - Unix (Linux, macOS, BSD): mmap(2) with mlock(2)/munlock(2)
//   - Windows: VirtualAlloc with VirtualLock/VirtualUnlock
//
// # Thread Safety
//
// A Mapping's Close() method is idempotent and protected by atomic
// operations. Callers must ensure no goroutines access Bytes() after
// Close() returns.
package mmap
