package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/internal/layout"
)

func newTestHeap(t *testing.T) *Heap {
	t.Helper()
	return NewHeap(arena.New(layout.PointerWidth32))
}

func TestImmediatesRoundTrip(t *testing.T) {
	assert.True(t, Undefined().IsUndefined())
	assert.True(t, Null().IsNull())
	assert.True(t, Boolean(true).IsTrue())
	assert.True(t, Boolean(false).IsFalse())
	assert.True(t, Empty().IsEmpty())
}

func TestSmallIntRoundTrip(t *testing.T) {
	v := SmallInt(-42)
	require.True(t, v.IsSmallInt())
	assert.Equal(t, int32(-42), v.AsInt32Immediate())
}

func TestFitsSmallInt(t *testing.T) {
	assert.True(t, FitsSmallInt(42))
	assert.True(t, FitsSmallInt(-42))
	assert.False(t, FitsSmallInt(1.5))
	assert.False(t, FitsSmallInt(math.NaN()))
	assert.False(t, FitsSmallInt(math.Inf(1)))
	assert.False(t, FitsSmallInt(float64(math.MaxInt32)+1))
}

func TestHeapNumberBoxesNonIntegers(t *testing.T) {
	h := newTestHeap(t)
	v := h.Number(3.5)
	require.True(t, v.IsHeapFloat())
	assert.Equal(t, 3.5, h.ReadFloat(v))
}

func TestHeapNumberUsesSmallIntFastPath(t *testing.T) {
	h := newTestHeap(t)
	v := h.Number(7)
	assert.True(t, v.IsSmallInt())
}

func TestStringRoundTripsThroughCESU8(t *testing.T) {
	h := newTestHeap(t)
	v := h.NewString([]byte("hello, 世界"))
	require.True(t, v.IsString())
	got := string(h.CopyToUTF8(v))
	assert.Equal(t, "hello, 世界", got)
	dumpOnFailure(t, "round-tripped string value", struct {
		Value Value
		Got   string
	}{v, got})
}

func TestStringsEqualComparesByContent(t *testing.T) {
	h := newTestHeap(t)
	a := h.NewString([]byte("same"))
	b := h.NewString([]byte("same"))
	assert.True(t, h.StringsEqual(a, b))
	assert.NotEqual(t, a, b) // distinct cells
}

func TestStringLengthCountsUTF16CodeUnits(t *testing.T) {
	h := newTestHeap(t)
	// U+1F600 (grinning face) is one astral code point but two UTF-16 units.
	v := h.NewString([]byte("a\U0001F600b"))
	assert.Equal(t, 4, h.StringLength(v))
}
