package arena

import (
	"encoding/binary"
	"sync"

	"github.com/jerryscript-go/jerry/internal/layout"
	"github.com/jerryscript-go/jerry/internal/pageflush"
)

// Offset is an absolute byte position inside an Arena's backing buffer. It is
// never stored on the heap; only its compressed form (CellRef) is.
type Offset = int32

// CellRef is a compressed pointer: a small non-zero integer identifying a
// cell by (offset >> AlignShift). The reserved value 0 denotes NULL
// (spec.md §3).
type CellRef = uint32

// Class identifies the kind of cell being allocated, mirroring the
// teacher's alloc.Class (ClassNK, ClassVK, ...) but over ECMAScript cell
// kinds. Layout is identical across classes (a raw byte payload); the GC
// uses the Class recorded for each live cell (ClassOf) to pick the cell's
// Scanner during mark and to skip classes exempted from sweep.
type Class uint8

const (
	ClassObjectHeader Class = iota
	ClassProperty
	ClassPropList
	ClassString
	ClassSymbol
	ClassBigInt
	ClassExtendedPrimitive
	ClassArrayElements
	ClassArrayBuffer
	ClassModuleRecord
	ClassPromiseReaction
	ClassNativeInfo
	ClassMisc
)

const (
	// headerReserve is the space at the start of every arena reserved so
	// offset 0 is never a valid cell start; this lets CellRef 0 mean NULL
	// unambiguously, exactly as spec.md requires.
	headerReserve = layout.AlignQuantum

	// cellHeaderSize is the int32 size field preceding every cell's payload,
	// negative when allocated and positive when free (teacher's Cell.RawSize
	// convention).
	cellHeaderSize = 4

	// minCellSize is the smallest total cell size (header + payload).
	minCellSize = 16

	// PageSize is the growth increment: the arena grows by whole pages,
	// generalising the teacher's 4KB HBIN growth granularity.
	PageSize = 1 << 16
)

// Stats mirrors heap_stats() from spec.md §4.1: current size, peak, and
// bytes actually allocated to live cells.
type Stats struct {
	Size      int64
	Peak      int64
	Allocated int64
	GrowCalls int
	AllocCalls int
	FreeCalls  int
}

// Arena is the engine's single contiguous heap region. It is not safe for
// concurrent use — spec.md §5 makes the context single-threaded and the
// arena belongs to exactly one context.
type Arena struct {
	mu sync.Mutex // guards buf/freeLists during concurrent Go-runtime finalizer callbacks only; engine API itself is single-threaded per spec.md §5

	buf   []byte
	width layout.PointerWidth

	sizeTable *sizeClassTable
	freeLists []freeList
	largeFree *largeBlock

	// classOf tracks each live cell's allocation Class out of band, the way
	// arraybuf tracks its external-buffer free callbacks out of band: the
	// cell payload itself never reserves space for a tag the GC doesn't
	// otherwise need. Entries are removed on Free.
	classOf map[CellRef]Class

	stats Stats

	// onExhausted is invoked once when Alloc cannot satisfy a request even
	// after Grow; the engine's GC (gc.Collector.Collect) hooks this to run
	// a collection pass and retry, matching spec.md's "invokes the
	// collector once; if still out of space, returns a failure sentinel".
	onExhausted func(need int32) bool

	// mmapBacked marks an Arena created by NewMmapBacked: its backing
	// buffer is a single fixed-size mapping reserved up front rather than
	// a make()+copy-grown slice, and Flush/Close become meaningful.
	mmapBacked bool
}

type freeCell struct {
	off  Offset
	size int32
}

type freeList struct {
	cells []freeCell
}

type largeBlock struct {
	off  Offset
	size int32
	next *largeBlock
}

// New creates an Arena with an initial empty page and the given pointer
// width. Use Config.PointerWidth from the engine package to choose 16 vs 32
// bits; a 16-bit arena can only address up to 1<<16 aligned cells.
func New(width layout.PointerWidth) *Arena {
	a := &Arena{
		buf:       make([]byte, headerReserve, PageSize),
		width:     width,
		sizeTable: defaultSizeClassTable(),
		classOf:   make(map[CellRef]Class),
	}
	a.freeLists = make([]freeList, a.sizeTable.NumClasses())
	a.stats.Size = int64(cap(a.buf))
	return a
}

// NewMmapBacked creates an Arena whose backing buffer is a single private
// anonymous mapping of maxBytes, reserved up front (spec.md §4.1 "reserve
// virtual address space, commit pages on demand"), for hosts that want a
// heap they can msync to a durable or shared mapping via Flush rather than
// an ordinary process-heap Arena created by New. Growth beyond maxBytes
// fails with ErrGrowFail instead of reallocating, since the mapping's size
// is fixed at creation.
func NewMmapBacked(width layout.PointerWidth, maxBytes int) (*Arena, error) {
	mapped, err := pageflush.Map(maxBytes)
	if err != nil {
		return nil, err
	}
	a := &Arena{
		buf:        mapped[:headerReserve:maxBytes],
		width:      width,
		sizeTable:  defaultSizeClassTable(),
		classOf:    make(map[CellRef]Class),
		mmapBacked: true,
	}
	a.freeLists = make([]freeList, a.sizeTable.NumClasses())
	a.stats.Size = int64(maxBytes)
	return a, nil
}

// Flush synchronizes an mmap-backed Arena's dirty pages to their backing
// store (spec.md §4.1/§4.7's page-dirty flush path). It is a no-op on an
// ordinary process-heap Arena created by New.
func (a *Arena) Flush() error {
	if !a.mmapBacked {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return pageflush.Sync(a.buf[:cap(a.buf)])
}

// Close releases an mmap-backed Arena's mapping. It is a no-op on an
// ordinary process-heap Arena created by New.
func (a *Arena) Close() error {
	if !a.mmapBacked {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return pageflush.Unmap(a.buf[:cap(a.buf)])
}

// SetExhaustionHook installs the callback Alloc invokes exactly once when it
// cannot otherwise satisfy a request (spec.md §4.1/§4.7 low/high pressure
// collector trigger). The hook should attempt to free cells and return true
// if the caller should retry.
func (a *Arena) SetExhaustionHook(hook func(need int32) bool) {
	a.onExhausted = hook
}

// Pack compresses an absolute offset into a CellRef. off must be aligned to
// AlignQuantum; off == 0 is invalid (use NullPointer instead).
func (a *Arena) Pack(off Offset) CellRef {
	if off == 0 {
		return layout.NullPointer
	}
	return uint32(off) >> layout.AlignShift
}

// Unpack expands a CellRef back into an absolute offset. Unpack(NullPointer)
// returns 0; callers must check for NULL before dereferencing.
func (a *Arena) Unpack(ref CellRef) Offset {
	if ref == layout.NullPointer {
		return 0
	}
	return Offset(ref) << layout.AlignShift
}

// Bytes returns the full backing buffer. Callers must not retain slices
// across a Grow (the backing array may be reallocated).
func (a *Arena) Bytes() []byte { return a.buf }

// Stats returns a snapshot of allocator statistics.
func (a *Arena) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Alloc allocates a cell of at least `need` payload bytes plus the header,
// returning its CellRef and a slice over the payload region. On exhaustion
// it invokes the installed hook once (the GC's collect-and-retry path) and
// retries; if still unsatisfied, it returns the allocation error
// (ErrGrowFail when the arena cannot grow, ErrNeedTooSmall for a negative
// need).
func (a *Arena) Alloc(need int32, cls Class) (CellRef, []byte, error) {
	ref, payload, err := a.allocOnce(need, cls)
	if err == nil {
		return ref, payload, nil
	}
	if a.onExhausted != nil && a.onExhausted(need) {
		return a.allocOnce(need, cls)
	}
	return layout.NullPointer, nil, err
}

// AllocNullOnError is the null-on-error variant spec.md §4.1 calls for at
// API entry points that can surface the failure as an ordinary exception
// instead of propagating a Go error.
func (a *Arena) AllocNullOnError(need int32, cls Class) (CellRef, []byte) {
	ref, payload, err := a.Alloc(need, cls)
	if err != nil {
		return layout.NullPointer, nil
	}
	return ref, payload
}

func (a *Arena) allocOnce(need int32, cls Class) (CellRef, []byte, error) {
	if need < 0 {
		return layout.NullPointer, nil, ErrNeedTooSmall
	}
	total := layout.Align(need + cellHeaderSize)
	if total < minCellSize {
		total = minCellSize
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if off, ok := a.takeFree(total); ok {
		if have := a.rawSize(off); have-total < minCellSize {
			total = have // maybeSplit left the remainder inside this cell
		}
		a.markAllocated(off, total)
		a.stats.AllocCalls++
		a.stats.Allocated += int64(total)
		ref := a.Pack(off)
		a.classOf[ref] = cls
		return ref, a.payloadAt(off, total), nil
	}

	off, err := a.bumpGrow(total)
	if err != nil {
		return layout.NullPointer, nil, err
	}
	a.markAllocated(off, total)
	a.stats.AllocCalls++
	a.stats.Allocated += int64(total)
	ref := a.Pack(off)
	a.classOf[ref] = cls
	return ref, a.payloadAt(off, total), nil
}

// ClassOf reports the allocation Class a live cell was created with, used
// by the garbage collector to pick the right Scanner during mark. It
// returns false for a ref that was never allocated or has since been
// freed.
func (a *Arena) ClassOf(ref CellRef) (Class, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	c, ok := a.classOf[ref]
	return c, ok
}

// Free returns a cell to the free list for its size class. The cell is not
// merged with adjacent free cells.
func (a *Arena) Free(ref CellRef) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	off := a.Unpack(ref)
	if off <= 0 || int(off)+cellHeaderSize > len(a.buf) {
		return ErrBadRef
	}
	size := a.rawSize(off)
	if size < 0 {
		return ErrNotFree // already free; double-free is caller error
	}

	a.stats.FreeCalls++
	a.stats.Allocated -= int64(size)
	a.putSize(off, size) // flip sign to positive (free)
	a.addFree(off, size)
	delete(a.classOf, ref)
	return nil
}

func (a *Arena) rawSize(off Offset) int32 {
	v := int32(binary.LittleEndian.Uint32(a.buf[off:]))
	if v < 0 {
		return -v
	}
	return v
}

func (a *Arena) markAllocated(off Offset, size int32) {
	binary.LittleEndian.PutUint32(a.buf[off:], uint32(-size))
}

func (a *Arena) putSize(off Offset, size int32) {
	binary.LittleEndian.PutUint32(a.buf[off:], uint32(size))
}

func (a *Arena) payloadAt(off Offset, total int32) []byte {
	start := off + cellHeaderSize
	end := off + total
	return a.buf[start:end:end]
}

// LiveRefs returns every currently-allocated cell's CellRef, the sweep
// pass's enumeration of candidates to free (spec.md §4.7).
func (a *Arena) LiveRefs() []CellRef {
	a.mu.Lock()
	defer a.mu.Unlock()
	refs := make([]CellRef, 0, len(a.classOf))
	for ref := range a.classOf {
		refs = append(refs, ref)
	}
	return refs
}

// Payload returns the payload slice for an already-allocated cell given its
// reference, without going through Alloc. Used by every package that stores
// a CellRef and later needs to read/write the cell's fields.
func (a *Arena) Payload(ref CellRef) []byte {
	off := a.Unpack(ref)
	if off <= 0 || int(off)+cellHeaderSize > len(a.buf) {
		return nil
	}
	size := a.rawSize(off)
	return a.payloadAt(off, size)
}

func (a *Arena) takeFree(need int32) (Offset, bool) {
	class := a.sizeTable.ClassFor(need)
	if class < len(a.freeLists) {
		for ci := class; ci < len(a.freeLists); ci++ {
			fl := &a.freeLists[ci]
			for i, fc := range fl.cells {
				if fc.size >= need {
					fl.cells = append(fl.cells[:i], fl.cells[i+1:]...)
					a.maybeSplit(fc.off, fc.size, need)
					return fc.off, true
				}
			}
		}
	}
	// large-allocation linked list, first fit
	var prev *largeBlock
	for lb := a.largeFree; lb != nil; lb = lb.next {
		if lb.size >= need {
			if prev == nil {
				a.largeFree = lb.next
			} else {
				prev.next = lb.next
			}
			a.maybeSplit(lb.off, lb.size, need)
			return lb.off, true
		}
		prev = lb
	}
	return 0, false
}

func (a *Arena) maybeSplit(off Offset, haveSize, need int32) {
	remainder := haveSize - need
	if remainder < minCellSize {
		return // too small to be its own cell; caller gets the full block
	}
	a.putSize(off+need, remainder)
	a.addFree(off+need, remainder)
}

func (a *Arena) addFree(off Offset, size int32) {
	class := a.sizeTable.ClassFor(size)
	if class < len(a.freeLists) {
		a.freeLists[class].cells = append(a.freeLists[class].cells, freeCell{off: off, size: size})
		return
	}
	a.largeFree = &largeBlock{off: off, size: size, next: a.largeFree}
}

// bumpGrow returns the current bump pointer's offset, growing the backing
// buffer by whole PageSize increments first if there isn't enough room.
func (a *Arena) bumpGrow(need int32) (Offset, error) {
	end := int32(len(a.buf))
	if int(end)+int(need) > cap(a.buf) {
		if err := a.growBuffer(need); err != nil {
			return 0, err
		}
	}
	maxOffset := a.maxOffset()
	if int64(end)+int64(need) > maxOffset {
		return 0, ErrGrowFail
	}
	a.buf = a.buf[:end+need]
	a.stats.GrowCalls++ // counts every bump extension request, like the teacher's AllocCalls/AllocSlowPath split
	a.stats.Size = int64(cap(a.buf))
	if int64(len(a.buf)) > a.stats.Peak {
		a.stats.Peak = int64(len(a.buf))
	}
	return end, nil
}

func (a *Arena) maxOffset() int64 {
	if a.width == layout.PointerWidth16 {
		return int64(1) << 16 << layout.AlignShift
	}
	return int64(1) << 32 << layout.AlignShift
}

func (a *Arena) growBuffer(need int32) error {
	if a.mmapBacked {
		// The mapping's size was fixed at NewMmapBacked; there is no
		// further address space to reserve, only the already-mapped
		// remainder (if any) to commit by re-slicing.
		return ErrGrowFail
	}
	pages := (int64(need) + PageSize - 1) / PageSize
	if pages < 1 {
		pages = 1
	}
	newCap := int64(cap(a.buf)) + pages*PageSize
	if newCap > a.maxOffset() {
		newCap = a.maxOffset()
	}
	if newCap <= int64(cap(a.buf)) {
		return ErrGrowFail
	}
	grown := make([]byte, len(a.buf), newCap)
	copy(grown, a.buf)
	a.buf = grown
	return nil
}
