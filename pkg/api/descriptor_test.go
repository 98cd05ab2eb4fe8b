package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/internal/layout"
	"github.com/jerryscript-go/jerry/object"
	"github.com/jerryscript-go/jerry/value"
)

func newTestObjects(t *testing.T) (*object.Objects, *value.MagicStrings) {
	t.Helper()
	h := value.NewHeap(arena.New(layout.PointerWidth32))
	return object.NewObjects(h), value.NewMagicStrings(h)
}

func TestPropertyDescriptorDataRoundTrips(t *testing.T) {
	objs, magic := newTestObjects(t)

	d := object.Descriptor{
		Value: value.SmallInt(123),
		Writable: true, Enumerable: true, Configurable: false,
		HasValue: true, HasWritable: true, HasEnumerable: true, HasConfigurable: true,
	}

	descObj, err := FromPropertyDescriptor(objs, magic, d)
	require.NoError(t, err)

	got, err := ToPropertyDescriptor(objs, magic, descObj)
	require.NoError(t, err)

	assert.True(t, got.HasValue)
	assert.Equal(t, d.Value, got.Value)
	assert.True(t, got.HasWritable)
	assert.Equal(t, d.Writable, got.Writable)
	assert.True(t, got.HasEnumerable)
	assert.Equal(t, d.Enumerable, got.Enumerable)
	assert.True(t, got.HasConfigurable)
	assert.Equal(t, d.Configurable, got.Configurable)
	assert.False(t, got.IsAccessor)
}

func TestPropertyDescriptorAccessorRoundTrips(t *testing.T) {
	objs, magic := newTestObjects(t)

	getterRef, err := object.New(objs.Heap.Arena, layout.NullPointer, layout.ClassFunction)
	require.NoError(t, err)

	d := object.Descriptor{
		IsAccessor: true,
		Get:        getterRef,
		Set:        layout.NullPointer,
		HasGet:     true, HasSet: true,
		Enumerable: true, HasEnumerable: true,
		Configurable: true, HasConfigurable: true,
	}

	descObj, err := FromPropertyDescriptor(objs, magic, d)
	require.NoError(t, err)

	got, err := ToPropertyDescriptor(objs, magic, descObj)
	require.NoError(t, err)

	assert.True(t, got.IsAccessor)
	assert.Equal(t, getterRef, got.Get)
	assert.False(t, got.HasValue)
}

func TestToPropertyDescriptorRejectsMixedValueAndAccessor(t *testing.T) {
	objs, magic := newTestObjects(t)

	ref, err := object.New(objs.Heap.Arena, layout.NullPointer, layout.ClassNone)
	require.NoError(t, err)
	require.NoError(t, objs.CreateDataProperty(ref, magic.Get(value.MagicValue), value.SmallInt(1)))
	require.NoError(t, objs.CreateDataProperty(ref, magic.Get(value.MagicGet), value.HeapObject(arena.CellRef(0))))

	_, err = ToPropertyDescriptor(objs, magic, ref)
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}
