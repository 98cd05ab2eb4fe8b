package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBigIntRoundTripsSignAndMagnitude(t *testing.T) {
	h := newTestHeap(t)
	v := h.NewBigInt(true, []byte{0xde, 0xad, 0xbe, 0xef})
	require.True(t, v.IsBigInt())

	assert.True(t, h.BigIntIsNegative(v))
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, h.BigIntMagnitude(v))
}

func TestNewBigIntDefaultsToPositive(t *testing.T) {
	h := newTestHeap(t)
	v := h.NewBigInt(false, []byte{1})
	assert.False(t, h.BigIntIsNegative(v))
}

func TestBigIntAccessorsAreTotalOnNonBigIntValues(t *testing.T) {
	h := newTestHeap(t)
	v := SmallInt(5)
	assert.False(t, h.BigIntIsNegative(v))
	assert.Nil(t, h.BigIntMagnitude(v))
}
