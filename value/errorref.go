package value

import (
	"encoding/binary"

	"github.com/jerryscript-go/jerry/arena"
)

// errorRefSize is an ExtendedPrimitive cell wrapping an error reference
// (spec.md GLOSSARY "Extended primitive", "Error reference"):
//
//	[0:4]  refcount (value/refcount.go)
//	[4:12] wrapped value (the thrown payload)
//	[12]   flags: abort bit 0
const errorRefSize = 13
const errorRefPayloadOffset = 4
const errorRefFlagsOffset = 12

const flagAbort = 1 << 0

// NewErrorRef wraps payload as a thrown-value error reference
// (create_error_from_value with abort=false).
func (h *Heap) NewErrorRef(payload Value) Value {
	return h.newErrorRef(payload, false)
}

// NewAbortRef wraps payload as a non-catchable abort value
// (create_abort_from_value). An abort propagates through every
// try/catch without being catchable (spec.md §7).
func (h *Heap) NewAbortRef(payload Value) Value {
	return h.newErrorRef(payload, true)
}

// newErrorRef allocates the wrapper cell with an initial refcount of 1
// (spec.md §3/§4.7: extended primitives are refcounted, not traced), and
// acquires its own reference to payload so releasing the wrapper later
// (releaseErrorRef) can release payload in turn without double-freeing a
// reference the caller still holds.
func (h *Heap) newErrorRef(payload Value, abort bool) Value {
	ref, cell, err := h.Arena.Alloc(errorRefSize, arena.ClassExtendedPrimitive)
	if err != nil {
		return Undefined()
	}
	writeRefcount(cell, 1)
	payload = h.Acquire(payload)
	binary.LittleEndian.PutUint64(cell[errorRefPayloadOffset:errorRefPayloadOffset+8], uint64(payload))
	if abort {
		cell[errorRefFlagsOffset] = flagAbort
	}
	return ErrorRef(ref)
}

// GetValueFromError unwraps an error reference's payload. It is total: a
// non-error-reference Value is returned unchanged (get_value_from_error on
// an ordinary value is a no-op per the original's documented behavior).
func (h *Heap) GetValueFromError(v Value) Value {
	if !v.IsErrorRef() {
		return v
	}
	cell := h.Arena.Payload(v.Ref())
	if len(cell) < errorRefSize {
		return Undefined()
	}
	return Value(binary.LittleEndian.Uint64(cell[errorRefPayloadOffset : errorRefPayloadOffset+8]))
}

// IsAbort reports whether an error reference is a non-catchable abort
// value rather than an ordinary thrown value. Non-error-reference Values
// are never aborts.
func (h *Heap) IsAbort(v Value) bool {
	if !v.IsErrorRef() {
		return false
	}
	cell := h.Arena.Payload(v.Ref())
	if len(cell) < errorRefSize {
		return false
	}
	return cell[errorRefFlagsOffset]&flagAbort != 0
}

// Retag rewraps an existing error reference's payload with a possibly
// different abort flag (the shared implementation behind
// create_error_from_value/create_abort_from_value's "re-tag" behavior when
// handed an existing error reference rather than a plain value).
func (h *Heap) Retag(v Value, abort bool) Value {
	return h.newErrorRef(h.GetValueFromError(v), abort)
}
