package arraybuf

import (
	"encoding/binary"
	"math"
)

// TypedArray is a view (offset + length + kind) over a Buffer, never a
// copy: every read/write goes straight to the underlying ArrayBuffer cell,
// matching the teacher's zero-copy cell-view idiom applied to typed memory
// instead of registry cells.
type TypedArray struct {
	Buffer      Buffer
	ByteOffset  int
	Length      int // element count
	Kind        ElementKind
}

func (t TypedArray) bytesAt(i int) []byte {
	sz := t.Kind.ByteSize()
	start := t.ByteOffset + i*sz
	return t.Buffer.Data()[start : start+sz]
}

// GetNumber reads element i as a float64. Out-of-range indices, a detached
// buffer, and the BigInt kinds return NaN, IntegerIndexedElementGet's
// "undefined for OOB" collapsed onto the numeric domain the way AsNumber
// collapses non-numbers (spec.md §4.2/§4.5).
func (t TypedArray) GetNumber(i int) float64 {
	if i < 0 || i >= t.Length || t.Buffer.Detached() {
		return math.NaN()
	}
	b := t.bytesAt(i)
	switch t.Kind {
	case Int8Kind:
		return float64(int8(b[0]))
	case Uint8Kind, Uint8ClampedKind:
		return float64(b[0])
	case Int16Kind:
		return float64(int16(binary.LittleEndian.Uint16(b)))
	case Uint16Kind:
		return float64(binary.LittleEndian.Uint16(b))
	case Int32Kind:
		return float64(int32(binary.LittleEndian.Uint32(b)))
	case Uint32Kind:
		return float64(binary.LittleEndian.Uint32(b))
	case Float32Kind:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case Float64Kind:
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	default:
		return math.NaN()
	}
}

// SetNumber writes a float64 into element i, applying the kind's
// conversion: truncating integer kinds wrap modulo their width,
// Uint8Clamped saturates to [0,255] with round-half-to-even
// (spec.md §4.5). Out-of-range indices and BigInt kinds are no-ops; use
// SetBigInt for the latter.
func (t TypedArray) SetNumber(i int, f float64) {
	if i < 0 || i >= t.Length || t.Buffer.Detached() || t.Kind.IsBigInt() {
		return
	}
	b := t.bytesAt(i)
	switch t.Kind {
	case Int8Kind:
		b[0] = byte(int8(toInt32Wrap(f)))
	case Uint8Kind:
		b[0] = byte(toUint32Wrap(f))
	case Uint8ClampedKind:
		b[0] = clampUint8(f)
	case Int16Kind:
		binary.LittleEndian.PutUint16(b, uint16(int16(toInt32Wrap(f))))
	case Uint16Kind:
		binary.LittleEndian.PutUint16(b, uint16(toUint32Wrap(f)))
	case Int32Kind:
		binary.LittleEndian.PutUint32(b, uint32(toInt32Wrap(f)))
	case Uint32Kind:
		binary.LittleEndian.PutUint32(b, toUint32Wrap(f))
	case Float32Kind:
		binary.LittleEndian.PutUint32(b, math.Float32bits(float32(f)))
	case Float64Kind:
		binary.LittleEndian.PutUint64(b, math.Float64bits(f))
	}
}

// GetBigInt64/SetBigInt give the two 64-bit BigInt kinds typed access
// without going through the lossy float64 path.
func (t TypedArray) GetBigInt64() []int64 {
	if t.Buffer.Detached() {
		return nil
	}
	out := make([]int64, t.Length)
	for i := range out {
		out[i] = int64(binary.LittleEndian.Uint64(t.bytesAt(i)))
	}
	return out
}

func (t TypedArray) SetBigInt(i int, v int64) {
	if i < 0 || i >= t.Length || t.Buffer.Detached() || !t.Kind.IsBigInt() {
		return
	}
	binary.LittleEndian.PutUint64(t.bytesAt(i), uint64(v))
}

// clampUint8 implements ClampRound: saturate to [0,255], ties round to even
// (spec.md §4.5 "Uint8Clamped saturation/round-half-to-even").
func clampUint8(f float64) byte {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	floor := math.Floor(f)
	diff := f - floor
	switch {
	case diff < 0.5:
		return byte(floor)
	case diff > 0.5:
		return byte(floor) + 1
	default:
		if int64(floor)%2 == 0 {
			return byte(floor)
		}
		return byte(floor) + 1
	}
}

func toInt32Wrap(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int32(uint32(int64(math.Trunc(f))))
}

func toUint32Wrap(f float64) uint32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return uint32(int64(math.Trunc(f)))
}
