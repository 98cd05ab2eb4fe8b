package gc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/internal/layout"
	"github.com/jerryscript-go/jerry/object"
	"github.com/jerryscript-go/jerry/value"
)

func TestCollectSweepsUnreachableObject(t *testing.T) {
	a := arena.New(layout.PointerWidth32)
	h := value.NewHeap(a)
	objs := object.NewObjects(h)

	root, err := object.New(a, layout.NullPointer, layout.ClassNone)
	require.NoError(t, err)
	garbage, err := object.New(a, layout.NullPointer, layout.ClassNone)
	require.NoError(t, err)
	require.NoError(t, objs.CreateDataProperty(root, h.NewString([]byte("x")), value.SmallInt(1)))
	_ = garbage

	c := New(a)
	c.RegisterObjectModel()
	c.Roots = func(push func(arena.CellRef)) { push(root) }

	stats := c.Collect()
	assert.Greater(t, stats.Freed, 0)

	_, ok := a.ClassOf(garbage)
	assert.False(t, ok, "unreferenced object should have been swept")

	_, ok = a.ClassOf(root)
	assert.True(t, ok, "rooted object must survive")
}

func TestCollectKeepsReachableChain(t *testing.T) {
	a := arena.New(layout.PointerWidth32)
	h := value.NewHeap(a)
	objs := object.NewObjects(h)

	proto, err := object.New(a, layout.NullPointer, layout.ClassNone)
	require.NoError(t, err)
	child, err := object.New(a, proto, layout.ClassNone)
	require.NoError(t, err)

	c := New(a)
	c.RegisterObjectModel()
	c.Roots = func(push func(arena.CellRef)) { push(child) }

	c.Collect()

	_, ok := a.ClassOf(proto)
	assert.True(t, ok, "prototype reachable through child must survive")
}

func TestCollectLeavesRefcountedClassesAlone(t *testing.T) {
	a := arena.New(layout.PointerWidth32)
	h := value.NewHeap(a)

	s := h.NewString([]byte("unrooted"))

	c := New(a)
	c.RegisterObjectModel()
	c.ExemptFromSweep(arena.ClassString)
	c.Roots = func(push func(arena.CellRef)) {} // nothing roots the string

	c.Collect()

	_, ok := a.ClassOf(s.Ref())
	assert.True(t, ok, "an exempted class must survive a sweep even when unreachable from Roots")
}

func TestCollectInvokesFreeHookForNativeInfo(t *testing.T) {
	a := arena.New(layout.PointerWidth32)
	ref, _, err := a.Alloc(16, arena.ClassNativeInfo)
	require.NoError(t, err)

	c := New(a)
	var freed arena.CellRef
	c.RegisterFreeHook(arena.ClassNativeInfo, func(ref arena.CellRef, payload []byte) {
		freed = ref
	})
	c.Roots = func(push func(arena.CellRef)) {} // unreferenced

	c.Collect()
	assert.Equal(t, ref, freed)
}
