package value

import (
	"math"

	"github.com/jerryscript-go/jerry/internal/layout"
)

// Value is the engine's one-word representation of any ECMAScript value
// (spec.md §3 "Value word"). The low tagBits bits carry the Tag; the
// remaining bits carry either an inline immediate payload (small integer)
// or a compressed pointer (arena.CellRef) to the backing heap cell.
type Value uint64

const (
	tagBits  = 5
	tagMask  = (1 << tagBits) - 1
	payShift = tagBits
)

// Tag returns the value's discriminator.
func (v Value) Tag() layout.Tag { return layout.Tag(v & tagMask) }

// rawPayload returns the bits above the tag, common to both encodings.
func (v Value) rawPayload() uint64 { return uint64(v) >> payShift }

func makeValue(tag layout.Tag, payload uint64) Value {
	return Value(payload<<payShift | uint64(tag))
}

// --- Constructors -----------------------------------------------------

// Undefined is the ECMAScript `undefined` value.
func Undefined() Value { return makeValue(layout.TagUndefined, 0) }

// Null is the ECMAScript `null` value.
func Null() Value { return makeValue(layout.TagNull, 0) }

// Empty is the internal "no value here" sentinel (array holes, uninitialised
// bindings). It is never observable from script.
func Empty() Value { return makeValue(layout.TagEmpty, 0) }

// Boolean returns the tagged true/false immediate for b.
func Boolean(b bool) Value {
	if b {
		return makeValue(layout.TagTrue, 0)
	}
	return makeValue(layout.TagFalse, 0)
}

// SmallInt returns the tagged immediate for a small (fits in int32) integer.
// Larger or non-integral numbers must be boxed on the heap by the caller
// (see Heap.Number in heap.go) and use TagFloat instead.
func SmallInt(i int32) Value {
	return makeValue(layout.TagSmallInt, uint64(uint32(i)))
}

// FitsSmallInt reports whether f can round-trip through SmallInt without
// losing precision — i.e. it is an integer within int32 range.
func FitsSmallInt(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	if f != math.Trunc(f) {
		return false
	}
	return f >= math.MinInt32 && f <= math.MaxInt32
}

// heapRef builds a Value whose payload is a compressed pointer, used by the
// object/arraybuf/value packages once they've allocated the backing cell.
func heapRef(tag layout.Tag, ref uint32) Value {
	return makeValue(tag, uint64(ref))
}

// HeapFloat wraps a CellRef to a boxed heap float cell.
func HeapFloat(ref uint32) Value { return heapRef(layout.TagFloat, ref) }

// HeapString wraps a CellRef to a heap string cell.
func HeapString(ref uint32) Value { return heapRef(layout.TagString, ref) }

// HeapObject wraps a CellRef to a heap object cell.
func HeapObject(ref uint32) Value { return heapRef(layout.TagObject, ref) }

// HeapSymbol wraps a CellRef to a heap symbol cell.
func HeapSymbol(ref uint32) Value { return heapRef(layout.TagSymbol, ref) }

// HeapBigInt wraps a CellRef to a heap BigInt cell.
func HeapBigInt(ref uint32) Value { return heapRef(layout.TagBigInt, ref) }

// ErrorRef wraps a CellRef to an ExtendedPrimitive (the thrown-value
// payload + abort flag, spec.md §3/§4.8). This is the one tag that marks a
// Value as "not an ordinary return" at the API boundary.
func ErrorRef(ref uint32) Value { return heapRef(layout.TagErrorRef, ref) }

// --- Predicates ---------------------------------------------------------

func (v Value) IsUndefined() bool { return v.Tag() == layout.TagUndefined }
func (v Value) IsNull() bool      { return v.Tag() == layout.TagNull }
func (v Value) IsTrue() bool      { return v.Tag() == layout.TagTrue }
func (v Value) IsFalse() bool     { return v.Tag() == layout.TagFalse }
func (v Value) IsEmpty() bool     { return v.Tag() == layout.TagEmpty }
func (v Value) IsBoolean() bool   { return v.IsTrue() || v.IsFalse() }
func (v Value) IsSmallInt() bool  { return v.Tag() == layout.TagSmallInt }
func (v Value) IsNullish() bool   { return v.IsUndefined() || v.IsNull() }

func (v Value) IsHeapFloat() bool  { return v.Tag() == layout.TagFloat }
func (v Value) IsString() bool     { return v.Tag() == layout.TagString }
func (v Value) IsObject() bool     { return v.Tag() == layout.TagObject }
func (v Value) IsSymbol() bool     { return v.Tag() == layout.TagSymbol }
func (v Value) IsBigInt() bool     { return v.Tag() == layout.TagBigInt }
func (v Value) IsErrorRef() bool   { return v.Tag() == layout.TagErrorRef }
func (v Value) IsNumber() bool     { return v.IsSmallInt() || v.IsHeapFloat() }

// Ref returns the compressed pointer carried by a heap-tagged value, or
// layout.NullPointer if v does not carry one.
func (v Value) Ref() uint32 {
	if !layout.IsHeapTag(v.Tag()) {
		return layout.NullPointer
	}
	return uint32(v.rawPayload())
}

// AsInt32Immediate returns the raw int32 payload of a SmallInt value. Call
// only when IsSmallInt() is true.
func (v Value) AsInt32Immediate() int32 {
	return int32(uint32(v.rawPayload()))
}
