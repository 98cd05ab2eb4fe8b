package value

import "math"

// ToBoolean implements the ECMAScript ToBoolean abstract operation
// (spec.md §4.2). It never fails.
func (h *Heap) ToBoolean(v Value) bool {
	switch {
	case v.IsUndefined(), v.IsNull(), v.IsEmpty():
		return false
	case v.IsTrue():
		return true
	case v.IsFalse():
		return false
	case v.IsSmallInt():
		return v.AsInt32Immediate() != 0
	case v.IsHeapFloat():
		f := h.ReadFloat(v)
		return f != 0 && !math.IsNaN(f)
	case v.IsString():
		return h.StringSizeCESU8(v) != 0
	default:
		return true // objects, symbols, bigints (non-zero), error refs
	}
}

// ToNumber implements the ECMAScript ToNumber abstract operation for the
// primitive kinds; object coercion (via ToPrimitive/valueOf/toString) is the
// object package's job since it requires calling back into script. Boolean
// and nullish inputs never error per spec.md §4.2.
func (h *Heap) ToNumber(v Value) float64 {
	switch {
	case v.IsUndefined():
		return math.NaN()
	case v.IsNull():
		return 0
	case v.IsTrue():
		return 1
	case v.IsFalse():
		return 0
	case v.IsNumber():
		return h.AsNumber(v)
	case v.IsString():
		return parseNumericString(h.CopyToUTF8(v))
	default:
		return math.NaN()
	}
}

// ToInteger implements ToInteger: NaN -> 0, +-Inf preserved, otherwise
// truncated toward zero (spec.md §4.2).
func ToInteger(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	if math.IsInf(f, 0) {
		return f
	}
	return math.Trunc(f)
}

// ToInt32 implements the standard 32-bit modulo reduction, including the
// NaN/Inf -> 0 cases (spec.md §8 testable property).
func ToInt32(f float64) int32 {
	i := ToInteger(f)
	if math.IsInf(i, 0) || i == 0 {
		return 0
	}
	mod := math.Mod(i, 4294967296)
	if mod < 0 {
		mod += 4294967296
	}
	if mod >= 2147483648 {
		mod -= 4294967296
	}
	return int32(mod)
}

// ToUint32 implements the standard unsigned 32-bit modulo reduction.
func ToUint32(f float64) uint32 {
	i := ToInteger(f)
	if math.IsInf(i, 0) || i == 0 {
		return 0
	}
	mod := math.Mod(i, 4294967296)
	if mod < 0 {
		mod += 4294967296
	}
	return uint32(mod)
}

// StrictEquals implements the === operator. +0 === -0 is true; NaN is never
// equal to anything including itself (spec.md §4.2).
func (h *Heap) StrictEquals(a, b Value) bool {
	if a.IsNumber() && b.IsNumber() {
		af, bf := h.AsNumber(a), h.AsNumber(b)
		if math.IsNaN(af) || math.IsNaN(bf) {
			return false
		}
		return af == bf // Go's == already treats +0 == -0 as true
	}
	if a.IsString() && b.IsString() {
		return h.StringsEqual(a, b)
	}
	if a.Tag() != b.Tag() {
		return false
	}
	if layoutIsHeapRef(a) {
		return a.Ref() == b.Ref() // object/symbol/bigint identity
	}
	return a == b
}

func layoutIsHeapRef(v Value) bool {
	return v.IsObject() || v.IsSymbol() || v.IsBigInt() || v.IsErrorRef()
}

// AbstractEquals implements the == operator's coercion lattice
// (spec.md §4.2) for the primitive kinds. Object operands are expected to
// already have been reduced to a primitive by the caller via ToPrimitive
// (object package), since that step can invoke script.
func (h *Heap) AbstractEquals(a, b Value) bool {
	if a.Tag() == b.Tag() || (a.IsNumber() && b.IsNumber()) {
		return h.StrictEquals(a, b)
	}
	switch {
	case a.IsNullish() && b.IsNullish():
		return true
	case a.IsNullish() || b.IsNullish():
		return false
	case a.IsNumber() && b.IsString():
		return h.AsNumber(a) == h.ToNumber(b)
	case a.IsString() && b.IsNumber():
		return h.ToNumber(a) == h.AsNumber(b)
	case a.IsBoolean():
		return h.AbstractEquals(h.Number(boolToFloat(a.IsTrue())), b)
	case b.IsBoolean():
		return h.AbstractEquals(a, h.Number(boolToFloat(b.IsTrue())))
	default:
		return false
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Add implements the ECMAScript `+` operator for primitives: string
// concatenation wins if either operand is a string, otherwise numeric
// addition. Object operands must be reduced via ToPrimitive first.
func (h *Heap) Add(a, b Value) Value {
	if a.IsString() || b.IsString() {
		return h.NewString(append(append([]byte{}, h.stringOrNumberText(a)...), h.stringOrNumberText(b)...))
	}
	return h.Number(h.ToNumber(a) + h.ToNumber(b))
}

func (h *Heap) stringOrNumberText(v Value) []byte {
	if v.IsString() {
		return h.CopyToUTF8(v)
	}
	return []byte(formatFloat(h.ToNumber(v)))
}

// RelationalCompare implements the abstract relational comparison (<, <=,
// >, >=) over two already-primitive operands. ok is false when either
// operand is NaN, per the spec's "undefined" comparison result.
func (h *Heap) RelationalCompare(a, b Value) (less bool, ok bool) {
	if a.IsString() && b.IsString() {
		as, bs := h.CopyToUTF8(a), h.CopyToUTF8(b)
		return string(as) < string(bs), true
	}
	af, bf := h.ToNumber(a), h.ToNumber(b)
	if math.IsNaN(af) || math.IsNaN(bf) {
		return false, false
	}
	return af < bf, true
}
