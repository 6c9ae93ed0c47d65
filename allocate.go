package workspace

import "time"

// Allocate acquires scratch memory for every space in req and returns a
// Unique owning the result.
//
// Spaces with a zero-size requirement are skipped; their block keeps a nil
// Data. Each block records its requirement either way, so the later Free
// call mirrors the Alloc call exactly. If any allocation fails, everything
// acquired so far is rolled back through the same release logic the Unique
// would use, and a *AllocError wrapping the allocator's error is returned;
// partial allocations never leak and are never handed to the caller.
//
// A nil alloc selects the default heap-backed allocator (see
// HeapAllocator). The allocator is borrowed and must outlive the returned
// Unique.
func Allocate(req Requirements, alloc Allocator, opts ...Option) (*Unique, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if alloc == nil {
		alloc = DefaultAllocator()
	}

	rel := &releaser{alloc: alloc, logger: o.logger, metrics: o.metrics}

	var ws Workspace
	ws.Host.Req = req.Host
	ws.Pinned.Req = req.Pinned
	ws.Device.Req = req.Device

	start := time.Now()
	for _, s := range Spaces {
		b := ws.BlockFor(s)
		if b.Req.Size == 0 {
			continue
		}
		data, err := memFor(alloc, s).Alloc(b.Req.Size, b.Req.Alignment)
		if err != nil {
			// Roll back whatever was already acquired, then surface the
			// original failure.
			rel.run(&ws)
			o.metrics.RecordAllocate(req.TotalSize(), time.Since(start), err)
			o.logger.LogAllocateError(s, b.Req.Size, err)
			return nil, &AllocError{Space: s, Size: b.Req.Size, Alignment: b.Req.Alignment, cause: err}
		}
		b.Data = data
	}

	o.metrics.RecordAllocate(req.TotalSize(), time.Since(start), nil)
	o.logger.LogAllocate(req)
	return NewUnique(ws, rel.run), nil
}
