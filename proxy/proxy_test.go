package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/internal/layout"
	"github.com/jerryscript-go/jerry/object"
	"github.com/jerryscript-go/jerry/value"
)

func newTarget(t *testing.T) (*object.Objects, *value.Heap, arena.CellRef) {
	t.Helper()
	h := value.NewHeap(arena.New(layout.PointerWidth32))
	objs := object.NewObjects(h)
	ref, err := object.New(objs_arena(objs), layout.NullPointer, layout.ClassNone)
	require.NoError(t, err)
	return objs, h, ref
}

// objs_arena is a tiny test helper exposing the Objects' arena via its Heap,
// since arena() is unexported and tests live in a different package here.
func objs_arena(o *object.Objects) *arena.Arena { return o.Heap.Arena }

func TestMissingTrapForwardsToTarget(t *testing.T) {
	objs, h, target := newTarget(t)
	key := h.NewString([]byte("x"))
	require.NoError(t, objs.CreateDataProperty(target, key, value.SmallInt(1)))

	p := New(target, &Handler{}, 0)
	v, err := p.Get(objs, key, value.HeapObject(target))
	require.NoError(t, err)
	assert.Equal(t, int32(1), v.AsInt32Immediate())
}

func TestRevokedProxyFails(t *testing.T) {
	objs, h, target := newTarget(t)
	p := New(target, &Handler{}, 0)
	p.Revoke()
	_, err := p.Get(objs, h.NewString([]byte("x")), value.Undefined())
	assert.ErrorIs(t, err, ErrRevoked)
}

func TestGetOwnPropertyInvariantViolation(t *testing.T) {
	objs, h, target := newTarget(t)
	key := h.NewString([]byte("x"))
	require.NoError(t, objs.DefineOwnProperty(target, key, object.Descriptor{
		Value: value.SmallInt(1), Writable: true, Enumerable: true,
		HasValue: true, HasWritable: true, HasEnumerable: true, HasConfigurable: true,
	})) // non-configurable on target

	handler := &Handler{
		GetOwnProperty: func(k value.Value) (object.Descriptor, bool, error) {
			return object.Descriptor{
				Value: value.SmallInt(1), Writable: true, Enumerable: true, Configurable: true,
				HasValue: true, HasWritable: true, HasEnumerable: true, HasConfigurable: true,
			}, true, nil
		},
	}
	p := New(target, handler, 0)
	_, _, err := p.GetOwnProperty(objs, key)
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestSkipResultValidationBypassesInvariant(t *testing.T) {
	objs, h, target := newTarget(t)
	key := h.NewString([]byte("x"))
	require.NoError(t, objs.DefineOwnProperty(target, key, object.Descriptor{
		Value: value.SmallInt(1), Writable: true, Enumerable: true,
		HasValue: true, HasWritable: true, HasEnumerable: true, HasConfigurable: true,
	}))

	handler := &Handler{
		GetOwnProperty: func(k value.Value) (object.Descriptor, bool, error) {
			return object.Descriptor{Configurable: true, HasConfigurable: true}, true, nil
		},
	}
	p := New(target, handler, SkipResultValidation)
	_, _, err := p.GetOwnProperty(objs, key)
	assert.NoError(t, err)
}
