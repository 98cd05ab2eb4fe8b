package value

import (
	"encoding/binary"

	"github.com/jerryscript-go/jerry/internal/layout"
)

// Every refcounted heap cell (string, symbol, BigInt, extended primitive)
// carries its refcount as the first 4 bytes of its payload, so a single
// pair of helpers can acquire/release any of them without knowing the
// rest of the cell's layout (spec.md §3 "copying a reference value
// increments the referent's refcount. free(value) drops one reference").
// ArrayBuffer cells follow the same convention but live in the arraybuf
// package, which owns their external-free-callback bookkeeping too.
const refcountFieldSize = 4

func readRefcount(payload []byte) uint32 {
	if len(payload) < refcountFieldSize {
		return 0
	}
	return binary.LittleEndian.Uint32(payload[0:refcountFieldSize])
}

func writeRefcount(payload []byte, n uint32) {
	if len(payload) < refcountFieldSize {
		return
	}
	binary.LittleEndian.PutUint32(payload[0:refcountFieldSize], n)
}

// acquireRefcounted increments v's refcount in place.
func (h *Heap) acquireRefcounted(v Value) {
	payload := h.Arena.Payload(v.Ref())
	writeRefcount(payload, readRefcount(payload)+1)
}

// releaseRefcounted decrements v's refcount, freeing the cell and
// reporting true when it reaches zero.
func (h *Heap) releaseRefcounted(v Value) bool {
	payload := h.Arena.Payload(v.Ref())
	rc := readRefcount(payload)
	if rc <= 1 {
		_ = h.Arena.Free(v.Ref())
		return true
	}
	writeRefcount(payload, rc-1)
	return false
}

// releaseErrorRef releases an extended-primitive cell, and — once its own
// refcount reaches zero — the value it wraps, which newErrorRef acquired
// on the wrapper's behalf when the cell was created.
func (h *Heap) releaseErrorRef(v Value) {
	wrapped := h.GetValueFromError(v)
	if h.releaseRefcounted(v) {
		h.Release(wrapped)
	}
}

// Acquire increments the refcount of a reference value (string, symbol,
// BigInt, or extended primitive) and returns it unchanged, mirroring
// spec.md §3's acquire(value). Every other Value kind — immediates, heap
// floats (not refcounted; see value/number.go doc), and objects (reclaimed
// only by the collector's mark/sweep over prototype/property cycles, never
// refcounted) — passes through as a no-op.
func (h *Heap) Acquire(v Value) Value {
	switch v.Tag() {
	case layout.TagString, layout.TagSymbol, layout.TagBigInt, layout.TagErrorRef:
		h.acquireRefcounted(v)
	}
	return v
}

// Release drops one reference to v, freeing its backing cell once the
// count reaches zero (spec.md §3 "free(value) drops one reference"; §8
// testable property #1 "acquire(v); release(v) restores the original
// state"). Objects and immediates are left untouched.
func (h *Heap) Release(v Value) {
	switch v.Tag() {
	case layout.TagString, layout.TagSymbol, layout.TagBigInt:
		h.releaseRefcounted(v)
	case layout.TagErrorRef:
		h.releaseErrorRef(v)
	}
}

// RefCount returns the live refcount of a refcounted reference value, or 0
// for any Value kind that doesn't carry one. Exposed mainly for tests that
// want to assert acquire/release round-trips exactly.
func (h *Heap) RefCount(v Value) uint32 {
	switch v.Tag() {
	case layout.TagString, layout.TagSymbol, layout.TagBigInt, layout.TagErrorRef:
		return readRefcount(h.Arena.Payload(v.Ref()))
	default:
		return 0
	}
}
