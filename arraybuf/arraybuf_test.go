package arraybuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/internal/layout"
)

func TestBufferDetach(t *testing.T) {
	a := arena.New(layout.PointerWidth32)
	ref, err := New(a, 16)
	require.NoError(t, err)
	b := ViewBuffer(a.Payload(ref))

	assert.Equal(t, 16, b.ByteLength())
	assert.False(t, b.Detached())
	b.Detach()
	assert.True(t, b.Detached())
}

func TestTypedArrayInt32RoundTrip(t *testing.T) {
	a := arena.New(layout.PointerWidth32)
	ref, err := New(a, 16)
	require.NoError(t, err)
	b := ViewBuffer(a.Payload(ref))

	ta := TypedArray{Buffer: b, Length: 4, Kind: Int32Kind}
	ta.SetNumber(0, -5)
	ta.SetNumber(1, 1000000)
	assert.Equal(t, float64(-5), ta.GetNumber(0))
	assert.Equal(t, float64(1000000), ta.GetNumber(1))
}

func TestTypedArrayOutOfRangeReadsNaN(t *testing.T) {
	a := arena.New(layout.PointerWidth32)
	ref, _ := New(a, 16)
	ta := TypedArray{Buffer: ViewBuffer(a.Payload(ref)), Length: 4, Kind: Uint8Kind}
	got := ta.GetNumber(10)
	assert.True(t, got != got) // NaN
}

func TestUint8ClampedSaturatesAndRoundsToEven(t *testing.T) {
	a := arena.New(layout.PointerWidth32)
	ref, _ := New(a, 16)
	ta := TypedArray{Buffer: ViewBuffer(a.Payload(ref)), Length: 4, Kind: Uint8ClampedKind}

	ta.SetNumber(0, -10)
	assert.Equal(t, float64(0), ta.GetNumber(0))

	ta.SetNumber(1, 300)
	assert.Equal(t, float64(255), ta.GetNumber(1))

	ta.SetNumber(2, 2.5) // round-half-to-even -> 2
	assert.Equal(t, float64(2), ta.GetNumber(2))

	ta.SetNumber(3, 3.5) // round-half-to-even -> 4
	assert.Equal(t, float64(4), ta.GetNumber(3))
}

func TestBigInt64KindRejectsNumberWrites(t *testing.T) {
	a := arena.New(layout.PointerWidth32)
	ref, _ := New(a, 16)
	ta := TypedArray{Buffer: ViewBuffer(a.Payload(ref)), Length: 2, Kind: BigInt64Kind}
	ta.SetNumber(0, 42) // no-op: BigInt64 rejects plain-Number writes
	assert.Equal(t, int64(0), ta.GetBigInt64()[0])
	ta.SetBigInt(0, 42)
	assert.Equal(t, int64(42), ta.GetBigInt64()[0])
}

func TestDataViewEndianness(t *testing.T) {
	a := arena.New(layout.PointerWidth32)
	ref, err := New(a, 16)
	require.NoError(t, err)
	dv := DataView{Buffer: ViewBuffer(a.Payload(ref)), ByteLength: 16}

	require.NoError(t, dv.SetUint32(0, 0x01020304, true))
	le, err := dv.GetUint32(0, true)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), le)

	be, err := dv.GetUint32(0, false)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04030201), be)
}

func TestDataViewOutOfBounds(t *testing.T) {
	a := arena.New(layout.PointerWidth32)
	ref, _ := New(a, 4)
	dv := DataView{Buffer: ViewBuffer(a.Payload(ref)), ByteLength: 4}

	_, err := dv.GetFloat64(0, true)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestDataViewDetachedBufferErrors(t *testing.T) {
	a := arena.New(layout.PointerWidth32)
	ref, _ := New(a, 8)
	buf := ViewBuffer(a.Payload(ref))
	buf.Detach()
	dv := DataView{Buffer: buf, ByteLength: 8}

	_, err := dv.GetUint8(0)
	assert.ErrorIs(t, err, ErrDetached)
}
