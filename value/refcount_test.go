package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAcquireThenReleaseRestoresOriginalState is spec.md §8's testable
// property #1: for all values v, acquire(v); release(v) restores the
// original state (count unchanged, no frees).
func TestAcquireThenReleaseRestoresOriginalState(t *testing.T) {
	h := newTestHeap(t)

	cases := map[string]Value{
		"string":   h.NewString([]byte("hello")),
		"symbol":   h.NewSymbol([]byte("sym")),
		"bigint":   h.NewBigInt(false, []byte{1, 2, 3}),
		"errorref": h.NewErrorRef(SmallInt(9)),
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			before := h.RefCount(v)
			h.Acquire(v)
			h.Release(v)
			assert.Equal(t, before, h.RefCount(v))
		})
	}

	// Immediates, heap floats, and objects are no-ops: never freed, never
	// touched.
	immediates := []Value{Undefined(), Null(), Boolean(true), SmallInt(5), h.Number(3.5)}
	for _, v := range immediates {
		h.Acquire(v)
		h.Release(v)
	}
}

func TestReleaseFreesStringAtZero(t *testing.T) {
	h := newTestHeap(t)
	v := h.NewString([]byte("gone"))
	require.EqualValues(t, 1, h.RefCount(v))

	h.Release(v)
	_, ok := h.Arena.ClassOf(v.Ref())
	assert.False(t, ok, "refcount reaching zero must free the cell")
}

func TestAcquireKeepsStringAliveAcrossOneRelease(t *testing.T) {
	h := newTestHeap(t)
	v := h.NewString([]byte("kept"))
	h.Acquire(v)
	require.EqualValues(t, 2, h.RefCount(v))

	h.Release(v)
	_, ok := h.Arena.ClassOf(v.Ref())
	require.True(t, ok, "one release of two references must not free the cell")
	assert.EqualValues(t, 1, h.RefCount(v))

	h.Release(v)
	_, ok = h.Arena.ClassOf(v.Ref())
	assert.False(t, ok)
}

func TestReleaseErrorRefAlsoReleasesWrappedString(t *testing.T) {
	h := newTestHeap(t)
	s := h.NewString([]byte("wrapped"))
	e := h.NewErrorRef(s)
	// newErrorRef acquired its own reference to s.
	require.EqualValues(t, 2, h.RefCount(s))

	h.Release(e)
	_, ok := h.Arena.ClassOf(e.Ref())
	assert.False(t, ok, "error ref cell must be freed")
	assert.EqualValues(t, 1, h.RefCount(s), "releasing the wrapper drops its own reference to the payload")
}
