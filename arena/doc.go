// Package arena implements the engine's heap: a single contiguous byte
// region holding every GC-managed cell, addressed only through compressed
// pointers (spec.md §3 "Compressed pointer", §4.1).
//
// # Overview
//
// Host pointers are never stored persistently. Every on-heap back-reference
// is a CellRef — a small integer computed as (offset - base) >> AlignShift —
// so the collector can walk objects without caring about the host's pointer
// width, and a heap image can be serialised as a snapshot without relocation
// (spec.md §6 "Snapshots").
//
// # Allocator
//
// Arena implements a segregated free-list allocator over size classes,
// backed by a bump pointer for the common case where no free cell fits.
// Size classes and the free-list strategy are a direct generalisation of
// the teacher's FastAllocator: linear classes for small requests,
// logarithmic classes above a threshold, and an unbounded "large" class
// serviced by a plain linked list. Freed cells are not coalesced with free
// neighbours.
//
// # Growth
//
// When no free cell services a request, Arena grows the backing slice in
// page-sized increments (PageSize) rather than a raw append, so that a
// snapshot or externally-owned arena can still reason about bin boundaries
// the way the teacher's HBIN growth does.
package arena
