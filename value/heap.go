package value

import (
	"encoding/binary"
	"math"

	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/internal/strenc"
)

// Heap binds the tagged-value constructors that need to materialise a cell
// to a concrete arena, the way every hive.NK/VK method takes the owning
// *hive.Hive to resolve cross-cell references (spec.md §4.1 + §4.2).
type Heap struct {
	Arena *arena.Arena
}

// NewHeap wraps an arena for value-level allocation.
func NewHeap(a *arena.Arena) *Heap { return &Heap{Arena: a} }

// --- Heap floats ---------------------------------------------------------

// Number returns the Value for a float64, choosing the small-integer
// immediate when it round-trips exactly and otherwise boxing the float on
// the heap (spec.md §3 "heap float").
func (h *Heap) Number(f float64) Value {
	if FitsSmallInt(f) {
		return SmallInt(int32(f))
	}
	ref, payload, err := h.Arena.Alloc(8, arena.ClassMisc)
	if err != nil {
		return Undefined()
	}
	binary.LittleEndian.PutUint64(payload, math.Float64bits(f))
	return HeapFloat(ref)
}

// ReadFloat reads the float64 payload from a heap-float Value.
func (h *Heap) ReadFloat(v Value) float64 {
	payload := h.Arena.Payload(v.Ref())
	if len(payload) < 8 {
		return math.NaN()
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(payload))
}

// AsNumber returns the float64 denoted by v, total over every Value kind
// per spec.md §4.2 ("each is total: non-matching inputs yield the neutral
// value, never a trap").
func (h *Heap) AsNumber(v Value) float64 {
	switch {
	case v.IsSmallInt():
		return float64(v.AsInt32Immediate())
	case v.IsHeapFloat():
		return h.ReadFloat(v)
	default:
		return 0
	}
}

// --- Heap strings ----------------------------------------------------

// stringCellHeader is the fixed prefix of a string cell:
//
//	[0:4] refcount (value/refcount.go)
//	[4:8] CESU-8 byte length
//
// followed by that many bytes. Every string stores its bytes inline in the
// cell; there is no external-string variant and no free callback.
const stringHeaderSize = 8
const stringLengthOffset = 4

// NewString creates a heap string cell from UTF-8 bytes, internally stored
// as CESU-8 (spec.md §4.3), with an initial refcount of 1
// (spec.md §3/§4.7: strings are refcounted, not traced).
func (h *Heap) NewString(utf8Bytes []byte) Value {
	cesu := strenc.ToCESU8(utf8Bytes)
	ref, payload, err := h.Arena.Alloc(int32(stringHeaderSize+len(cesu)), arena.ClassString)
	if err != nil {
		return Undefined()
	}
	writeRefcount(payload, 1)
	binary.LittleEndian.PutUint32(payload[stringLengthOffset:], uint32(len(cesu)))
	copy(payload[stringHeaderSize:], cesu)
	return HeapString(ref)
}

// NewStringUTF8 is an alias documenting that the input is plain UTF-8 (as
// opposed to NewStringCESU8), matching the two creation entry points
// spec.md §4.3 calls out ("Strings are created from either CESU-8 or
// UTF-8 byte buffers").
func (h *Heap) NewStringUTF8(utf8Bytes []byte) Value { return h.NewString(utf8Bytes) }

// NewStringCESU8 creates a heap string cell directly from CESU-8 bytes,
// skipping the UTF-8 re-encoding step.
func (h *Heap) NewStringCESU8(cesu []byte) Value {
	ref, payload, err := h.Arena.Alloc(int32(stringHeaderSize+len(cesu)), arena.ClassString)
	if err != nil {
		return Undefined()
	}
	writeRefcount(payload, 1)
	binary.LittleEndian.PutUint32(payload[stringLengthOffset:], uint32(len(cesu)))
	copy(payload[stringHeaderSize:], cesu)
	return HeapString(ref)
}

// StringSizeCESU8 returns the CESU-8 byte size of a string value.
func (h *Heap) StringSizeCESU8(v Value) int {
	if !v.IsString() {
		return 0
	}
	payload := h.Arena.Payload(v.Ref())
	if len(payload) < stringHeaderSize {
		return 0
	}
	return int(binary.LittleEndian.Uint32(payload[stringLengthOffset:]))
}

// StringLength returns the string's length in UTF-16 code units (spec.md
// §4.3 "length counts UCS-2 code units").
func (h *Heap) StringLength(v Value) int {
	return strenc.UTF16Length(h.cesu8Bytes(v))
}

func (h *Heap) cesu8Bytes(v Value) []byte {
	payload := h.Arena.Payload(v.Ref())
	if len(payload) < stringHeaderSize {
		return nil
	}
	n := binary.LittleEndian.Uint32(payload[stringLengthOffset:])
	end := stringHeaderSize + int(n)
	if end > len(payload) {
		end = len(payload)
	}
	return payload[stringHeaderSize:end]
}

// CopyToUTF8 returns the string's contents re-encoded as UTF-8.
func (h *Heap) CopyToUTF8(v Value) []byte {
	return strenc.FromCESU8(h.cesu8Bytes(v))
}

// CopyToCESU8 returns the string's raw CESU-8 bytes.
func (h *Heap) CopyToCESU8(v Value) []byte {
	raw := h.cesu8Bytes(v)
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}

// StringsEqual compares two string values by content, not identity —
// ECMAScript strings are always compared by value.
func (h *Heap) StringsEqual(a, b Value) bool {
	if !a.IsString() || !b.IsString() {
		return false
	}
	ab, bb := h.cesu8Bytes(a), h.cesu8Bytes(b)
	if len(ab) != len(bb) {
		return false
	}
	for i := range ab {
		if ab[i] != bb[i] {
			return false
		}
	}
	return true
}
