package value

import (
	"encoding/binary"

	"github.com/jerryscript-go/jerry/arena"
)

// bigIntHeaderSize is the fixed prefix of a BigInt cell:
//
//	[0:4] refcount (value/refcount.go)
//	[4]   sign: 0 positive/zero, 1 negative
//	[5:9] magnitude byte length
//
// followed by that many big-endian magnitude bytes. BigInt arithmetic and
// the BigInt built-ins are out of scope (spec.md's Non-goals); NewBigInt
// exists so a heap BigInt value can be created, tagged, and refcounted the
// way spec.md §3/§4.7 describes for every non-object reference value.
const bigIntHeaderSize = 9
const bigIntSignOffset = 4
const bigIntLengthOffset = 5

// NewBigInt allocates a heap BigInt cell from a sign and a big-endian
// magnitude, with an initial refcount of 1.
func (h *Heap) NewBigInt(negative bool, magnitude []byte) Value {
	ref, payload, err := h.Arena.Alloc(int32(bigIntHeaderSize+len(magnitude)), arena.ClassBigInt)
	if err != nil {
		return Undefined()
	}
	writeRefcount(payload, 1)
	if negative {
		payload[bigIntSignOffset] = 1
	}
	binary.LittleEndian.PutUint32(payload[bigIntLengthOffset:], uint32(len(magnitude)))
	copy(payload[bigIntHeaderSize:], magnitude)
	return HeapBigInt(ref)
}

// BigIntIsNegative reports whether v's sign bit is set. Non-BigInt Values
// report false.
func (h *Heap) BigIntIsNegative(v Value) bool {
	if !v.IsBigInt() {
		return false
	}
	payload := h.Arena.Payload(v.Ref())
	if len(payload) < bigIntHeaderSize {
		return false
	}
	return payload[bigIntSignOffset] != 0
}

// BigIntMagnitude returns a copy of v's big-endian magnitude bytes.
func (h *Heap) BigIntMagnitude(v Value) []byte {
	if !v.IsBigInt() {
		return nil
	}
	payload := h.Arena.Payload(v.Ref())
	if len(payload) < bigIntHeaderSize {
		return nil
	}
	n := binary.LittleEndian.Uint32(payload[bigIntLengthOffset:])
	end := bigIntHeaderSize + int(n)
	if end > len(payload) {
		end = len(payload)
	}
	out := make([]byte, end-bigIntHeaderSize)
	copy(out, payload[bigIntHeaderSize:end])
	return out
}
