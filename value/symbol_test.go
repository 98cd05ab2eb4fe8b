package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerryscript-go/jerry/internal/strenc"
)

func TestNewSymbolRoundTripsDescription(t *testing.T) {
	h := newTestHeap(t)
	s := h.NewSymbol([]byte("mySymbol"))
	require.True(t, s.IsSymbol())
	assert.Equal(t, []byte("mySymbol"), h.SymbolDescription(s))
}

func TestNewSymbolIsUniquePerCall(t *testing.T) {
	h := newTestHeap(t)
	a := h.NewSymbol([]byte("dup"))
	b := h.NewSymbol([]byte("dup"))
	assert.NotEqual(t, a.Ref(), b.Ref())
	assert.False(t, h.StrictEquals(a, b))
}

func TestSymbolDescriptionOfNonSymbolIsNil(t *testing.T) {
	h := newTestHeap(t)
	assert.Nil(t, h.SymbolDescription(SmallInt(1)))
}

func TestSymbolForInterns(t *testing.T) {
	h := newTestHeap(t)
	reg := strenc.NewSymbolRegistry()

	a := h.SymbolFor(reg, "shared")
	b := h.SymbolFor(reg, "shared")
	assert.Equal(t, a.Ref(), b.Ref())
	assert.True(t, h.StrictEquals(a, b))

	other := h.SymbolFor(reg, "different")
	assert.NotEqual(t, a.Ref(), other.Ref())
}

func TestSymbolKeyForRoundTrips(t *testing.T) {
	h := newTestHeap(t)
	reg := strenc.NewSymbolRegistry()

	s := h.SymbolFor(reg, "registered")
	key, ok := h.SymbolKeyFor(reg, s)
	require.True(t, ok)
	assert.Equal(t, "registered", key)

	fresh := h.NewSymbol([]byte("unregistered"))
	_, ok = h.SymbolKeyFor(reg, fresh)
	assert.False(t, ok)

	_, ok = h.SymbolKeyFor(reg, SmallInt(3))
	assert.False(t, ok)
}
