package gc

import (
	"github.com/jerryscript-go/jerry/arena"
)

// Scanner reports the CellRefs a cell of some arena.Class points to, given
// that cell's payload. push is called once per outgoing reference; pushing
// arena.CellRef(0) (NULL) is harmless, the collector ignores it.
type Scanner func(payload []byte, push func(arena.CellRef))

// FreeCallback is invoked during sweep for every unmarked cell of a class
// that registered one, letting native-info cells release host resources
// before the backing memory is reclaimed (spec.md §4.7 "native-info
// descriptor table").
type FreeCallback func(ref arena.CellRef, payload []byte)

// Collector runs the mark/sweep pass over a single Arena.
type Collector struct {
	Arena *arena.Arena

	scanners  map[arena.Class]Scanner
	freeHooks map[arena.Class]FreeCallback

	// refcounted marks classes whose cells are reclaimed by
	// value.Heap.Release/arraybuf.Release instead of this pass (spec.md
	// §3/§4.7: strings, symbols, BigInts, extended primitives, and
	// ArrayBuffers are refcounted, not traced). Collect's sweep must never
	// free a cell in one of these classes — only mark/sweep's own classes
	// (the object model: headers, prop lists, properties) and any other
	// class nobody has exempted are swept.
	refcounted map[arena.Class]bool

	// Roots is called at the start of every Collect to enumerate the
	// current root set: realms' globals, call stack locals, the job
	// queue, module registry, symbol registry, the exception slot, and
	// externally-refcounted objects (spec.md §4.7).
	Roots func(push func(arena.CellRef))
}

// New creates an empty Collector bound to a. RegisterScanner must be called
// for every arena.Class that can hold outgoing references before the first
// Collect, or the mark pass will silently treat that class as a leaf.
func New(a *arena.Arena) *Collector {
	return &Collector{
		Arena:      a,
		scanners:   make(map[arena.Class]Scanner),
		freeHooks:  make(map[arena.Class]FreeCallback),
		refcounted: make(map[arena.Class]bool),
	}
}

// RegisterScanner associates a Scanner with an arena.Class.
func (c *Collector) RegisterScanner(cls arena.Class, s Scanner) {
	c.scanners[cls] = s
}

// RegisterFreeHook associates a FreeCallback with an arena.Class, invoked
// during sweep just before an unmarked cell of that class is freed.
func (c *Collector) RegisterFreeHook(cls arena.Class, f FreeCallback) {
	c.freeHooks[cls] = f
}

// ExemptFromSweep marks classes as refcount-owned: Collect's sweep pass
// skips every cell in these classes, however unreachable they look from
// Roots, because they're freed by value.Heap.Release/arraybuf.Release
// reaching a zero refcount instead (spec.md §4.7 "reference counting for
// primitives, augmented by mark/sweep solely for object cycles").
func (c *Collector) ExemptFromSweep(classes ...arena.Class) {
	for _, cls := range classes {
		c.refcounted[cls] = true
	}
}

// Stats summarises one Collect call.
type Stats struct {
	Marked int
	Freed  int
}

// Collect runs one full mark/sweep pass: an iterative (non-recursive)
// depth-first walk from Roots, using a visited-set keyed by CellRef in
// place of a true bitmap (CellRef is already a dense small integer, so a
// map here plays the same role the teacher's offset bitmap played over
// cell offsets), followed by a sweep that frees every live cell the walk
// never reached, except cells of classes exempted from sweep (spec.md §4.7).
func (c *Collector) Collect() Stats {
	visited := make(map[arena.CellRef]bool)
	var stack []arena.CellRef

	push := func(ref arena.CellRef) {
		if ref == 0 || visited[ref] {
			return
		}
		visited[ref] = true
		stack = append(stack, ref)
	}

	if c.Roots != nil {
		c.Roots(push)
	}

	for len(stack) > 0 {
		ref := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cls, ok := c.Arena.ClassOf(ref)
		if !ok {
			continue // already freed; stale root
		}
		scan, ok := c.scanners[cls]
		if !ok {
			continue // leaf class: strings, bigints, native blobs with no outgoing refs
		}
		payload := c.Arena.Payload(ref)
		if payload == nil {
			continue
		}
		scan(payload, push)
	}

	stats := Stats{Marked: len(visited)}
	for _, ref := range c.Arena.LiveRefs() {
		if visited[ref] {
			continue
		}
		cls, ok := c.Arena.ClassOf(ref)
		if ok && c.refcounted[cls] {
			continue // owned by refcounting, not this pass
		}
		if ok {
			if hook, ok := c.freeHooks[cls]; ok {
				hook(ref, c.Arena.Payload(ref))
			}
		}
		if err := c.Arena.Free(ref); err == nil {
			stats.Freed++
		}
	}
	return stats
}
