package module

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerryscript-go/jerry/value"
)

func TestLinkSimpleChain(t *testing.T) {
	leaf := New(nil, []string{"x"}, func(m *Module) error { return nil })
	root := New([]*Import{{Specifier: "./leaf", Resolved: leaf}}, nil, func(m *Module) error { return nil })

	l := &Linker{}
	require.NoError(t, l.Link(root))
	assert.Equal(t, Linked, root.State())
	assert.Equal(t, Linked, leaf.State())
}

func TestLinkUsesResolveCallbackForUnresolvedImports(t *testing.T) {
	leaf := New(nil, nil, func(m *Module) error { return nil })
	root := New([]*Import{{Specifier: "./leaf"}}, nil, func(m *Module) error { return nil })

	var seenSpecifier string
	l := &Linker{Resolve: func(spec string, referrer *Module) (*Module, error) {
		seenSpecifier = spec
		return leaf, nil
	}}
	require.NoError(t, l.Link(root))
	assert.Equal(t, "./leaf", seenSpecifier)
	assert.Equal(t, Linked, leaf.State())
}

func TestLinkShortCircuitsCycle(t *testing.T) {
	a := New(nil, nil, func(m *Module) error { return nil })
	b := New([]*Import{{Specifier: "./a", Resolved: a}}, nil, func(m *Module) error { return nil })
	a.Imports = []*Import{{Specifier: "./b", Resolved: b}}

	l := &Linker{}
	require.NoError(t, l.Link(a))
	assert.Equal(t, Linked, a.State())
	assert.Equal(t, Linked, b.State())
}

func TestLinkFailurePropagatesToError(t *testing.T) {
	root := New([]*Import{{Specifier: "./missing"}}, nil, func(m *Module) error { return nil })
	l := &Linker{Resolve: func(spec string, referrer *Module) (*Module, error) {
		return nil, errors.New("not found")
	}}

	err := l.Link(root)
	assert.Error(t, err)
	assert.Equal(t, Error, root.State())
}

func TestEvaluateRequiresLinked(t *testing.T) {
	m := New(nil, nil, func(m *Module) error { return nil })
	l := &Linker{}
	err := l.Evaluate(m)
	assert.ErrorIs(t, err, ErrNotLinked)
}

func TestEvaluatePostOrder(t *testing.T) {
	var order []string
	leaf := New(nil, nil, func(m *Module) error { order = append(order, "leaf"); return nil })
	root := New([]*Import{{Specifier: "./leaf", Resolved: leaf}}, nil, func(m *Module) error {
		order = append(order, "root")
		return nil
	})

	l := &Linker{}
	require.NoError(t, l.Link(root))
	require.NoError(t, l.Evaluate(root))

	assert.Equal(t, []string{"leaf", "root"}, order)
	assert.Equal(t, Evaluated, root.State())
	assert.Equal(t, Evaluated, leaf.State())
}

func TestNativeModuleStartsLinked(t *testing.T) {
	m := NewNative([]string{"x"}, nil)
	assert.Equal(t, Linked, m.State())

	m.SetExport("x", value.SmallInt(5))
	got, ok := m.GetExport("x")
	require.True(t, ok)
	assert.Equal(t, int32(5), got.AsInt32Immediate())
}
