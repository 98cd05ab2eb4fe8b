package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerryscript-go/jerry/internal/layout"
)

func TestAllocReturnsDistinctRefs(t *testing.T) {
	a := New(layout.PointerWidth32)

	ref1, p1, err := a.Alloc(32, ClassMisc)
	require.NoError(t, err)
	require.NotEqual(t, uint32(0), ref1)
	require.Len(t, p1, 32)

	ref2, p2, err := a.Alloc(32, ClassMisc)
	require.NoError(t, err)
	assert.NotEqual(t, ref1, ref2)
	require.Len(t, p2, 32)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	a := New(layout.PointerWidth32)
	ref, _, err := a.Alloc(64, ClassMisc)
	require.NoError(t, err)

	off := a.Unpack(ref)
	assert.Equal(t, ref, a.Pack(off))
}

func TestNullPointerRoundTrips(t *testing.T) {
	a := New(layout.PointerWidth32)
	assert.Equal(t, layout.NullPointer, a.Pack(0))
	assert.Equal(t, Offset(0), a.Unpack(layout.NullPointer))
}

func TestFreeAndReallocReusesCell(t *testing.T) {
	a := New(layout.PointerWidth32)
	ref, _, err := a.Alloc(64, ClassMisc)
	require.NoError(t, err)

	before := a.Stats()
	require.NoError(t, a.Free(ref))

	ref2, _, err := a.Alloc(64, ClassMisc)
	require.NoError(t, err)
	assert.Equal(t, ref, ref2, "freed cell of the exact right size should be reused before growing")

	after := a.Stats()
	assert.Equal(t, before.Size, after.Size, "reuse must not grow the arena")
}

func TestDoubleFreeIsRejected(t *testing.T) {
	a := New(layout.PointerWidth32)
	ref, _, err := a.Alloc(64, ClassMisc)
	require.NoError(t, err)
	require.NoError(t, a.Free(ref))
	assert.ErrorIs(t, a.Free(ref), ErrNotFree)
}

func TestGrowthAcrossPageBoundary(t *testing.T) {
	a := New(layout.PointerWidth32)
	for i := 0; i < 2000; i++ {
		_, _, err := a.Alloc(64, ClassMisc)
		require.NoError(t, err)
	}
	stats := a.Stats()
	assert.Greater(t, stats.Size, int64(PageSize))
}

func TestPayloadWritesPersistAcrossLookup(t *testing.T) {
	a := New(layout.PointerWidth32)
	ref, payload, err := a.Alloc(16, ClassMisc)
	require.NoError(t, err)
	payload[0] = 0xAB

	again := a.Payload(ref)
	assert.Equal(t, byte(0xAB), again[0])
}

func TestSnapshotRoundTrip(t *testing.T) {
	a := New(layout.PointerWidth32)
	ref, payload, err := a.Alloc(16, ClassMisc)
	require.NoError(t, err)
	payload[0] = 0x42

	img := a.SaveSnapshot()
	loaded, err := LoadSnapshot(img, 0)
	require.NoError(t, err)

	assert.Equal(t, byte(0x42), loaded.Payload(ref)[0])
}

func TestClassOfTracksLiveCells(t *testing.T) {
	a := New(layout.PointerWidth32)
	ref, _, err := a.Alloc(16, ClassString)
	require.NoError(t, err)

	cls, ok := a.ClassOf(ref)
	require.True(t, ok)
	assert.Equal(t, ClassString, cls)

	require.NoError(t, a.Free(ref))
	_, ok = a.ClassOf(ref)
	assert.False(t, ok)
}

func TestLiveRefsReflectsAllocationsAndFrees(t *testing.T) {
	a := New(layout.PointerWidth32)
	ref1, _, err := a.Alloc(16, ClassMisc)
	require.NoError(t, err)
	ref2, _, err := a.Alloc(16, ClassMisc)
	require.NoError(t, err)

	assert.ElementsMatch(t, []CellRef{ref1, ref2}, a.LiveRefs())

	require.NoError(t, a.Free(ref1))
	assert.Equal(t, []CellRef{ref2}, a.LiveRefs())
}
