package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBooleanPrimitives(t *testing.T) {
	h := newTestHeap(t)
	assert.False(t, h.ToBoolean(Undefined()))
	assert.False(t, h.ToBoolean(Null()))
	assert.False(t, h.ToBoolean(SmallInt(0)))
	assert.True(t, h.ToBoolean(SmallInt(1)))
	assert.False(t, h.ToBoolean(h.Number(math.NaN())))
	assert.False(t, h.ToBoolean(h.NewString(nil)))
	assert.True(t, h.ToBoolean(h.NewString([]byte("x"))))
}

func TestToIntegerEdgeCases(t *testing.T) {
	assert.Equal(t, float64(0), ToInteger(math.NaN()))
	assert.Equal(t, math.Inf(1), ToInteger(math.Inf(1)))
	assert.Equal(t, math.Inf(-1), ToInteger(math.Inf(-1)))
	assert.Equal(t, float64(3), ToInteger(3.9))
}

func TestToInt32Wraps(t *testing.T) {
	assert.Equal(t, int32(0), ToInt32(math.NaN()))
	assert.Equal(t, int32(0), ToInt32(math.Inf(1)))
	assert.Equal(t, int32(-1), ToInt32(4294967295))
	assert.Equal(t, int32(0), ToInt32(4294967296))
}

func TestToUint32Wraps(t *testing.T) {
	assert.Equal(t, uint32(4294967295), ToUint32(-1))
	assert.Equal(t, uint32(0), ToUint32(4294967296))
}

func TestStrictEqualsPlusZeroMinusZero(t *testing.T) {
	h := newTestHeap(t)
	assert.True(t, h.StrictEquals(h.Number(0), h.Number(math.Copysign(0, -1))))
}

func TestStrictEqualsNaNNeverEqual(t *testing.T) {
	h := newTestHeap(t)
	nan := h.Number(math.NaN())
	assert.False(t, h.StrictEquals(nan, nan))
}

func TestStrictEqualsStringsByContent(t *testing.T) {
	h := newTestHeap(t)
	a := h.NewString([]byte("abc"))
	b := h.NewString([]byte("abc"))
	assert.True(t, h.StrictEquals(a, b))
}

func TestAbstractEqualsNullUndefined(t *testing.T) {
	h := newTestHeap(t)
	assert.True(t, h.AbstractEquals(Null(), Undefined()))
	assert.False(t, h.AbstractEquals(Null(), SmallInt(0)))
}

func TestAbstractEqualsNumberString(t *testing.T) {
	h := newTestHeap(t)
	assert.True(t, h.AbstractEquals(SmallInt(42), h.NewString([]byte("42"))))
}

func TestAbstractEqualsBoolean(t *testing.T) {
	h := newTestHeap(t)
	assert.True(t, h.AbstractEquals(Boolean(true), SmallInt(1)))
	assert.False(t, h.AbstractEquals(Boolean(true), SmallInt(2)))
}

func TestAddConcatenatesWhenEitherOperandIsString(t *testing.T) {
	h := newTestHeap(t)
	v := h.Add(h.NewString([]byte("n=")), SmallInt(5))
	assert.Equal(t, "n=5", string(h.CopyToUTF8(v)))
}

func TestAddNumbers(t *testing.T) {
	h := newTestHeap(t)
	v := h.Add(SmallInt(2), SmallInt(3))
	assert.Equal(t, float64(5), h.AsNumber(v))
}

func TestRelationalCompareNaNIsUndefined(t *testing.T) {
	h := newTestHeap(t)
	_, ok := h.RelationalCompare(h.Number(math.NaN()), SmallInt(1))
	assert.False(t, ok)
}

func TestRelationalCompareStrings(t *testing.T) {
	h := newTestHeap(t)
	less, ok := h.RelationalCompare(h.NewString([]byte("a")), h.NewString([]byte("b")))
	assert.True(t, ok)
	assert.True(t, less)
}

func TestParseNumericStringWhitespaceIsZero(t *testing.T) {
	assert.Equal(t, float64(0), parseNumericString([]byte("   ")))
}

func TestFormatFloatSpecialValues(t *testing.T) {
	assert.Equal(t, "NaN", formatFloat(math.NaN()))
	assert.Equal(t, "Infinity", formatFloat(math.Inf(1)))
	assert.Equal(t, "-Infinity", formatFloat(math.Inf(-1)))
	assert.Equal(t, "0", formatFloat(math.Copysign(0, -1)))
}
