package arraybuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/internal/layout"
)

func TestReleaseFreesInlineBufferAtZero(t *testing.T) {
	a := arena.New(layout.PointerWidth32)
	ref, err := New(a, 16)
	require.NoError(t, err)

	require.NoError(t, Release(a, nil, ref))
	_, ok := a.ClassOf(ref)
	assert.False(t, ok)
}

func TestAcquireKeepsBufferAliveAcrossOneRelease(t *testing.T) {
	a := arena.New(layout.PointerWidth32)
	ref, err := New(a, 16)
	require.NoError(t, err)

	Acquire(a, ref)
	require.NoError(t, Release(a, nil, ref))
	_, ok := a.ClassOf(ref)
	assert.True(t, ok, "one release of two references must not free the cell")

	require.NoError(t, Release(a, nil, ref))
	_, ok = a.ClassOf(ref)
	assert.False(t, ok)
}

func TestReleaseInvokesExternalFreeCallbackOnce(t *testing.T) {
	a := arena.New(layout.PointerWidth32)
	reg := NewExternalRegistry()

	var calls int
	var gotToken uint64
	ref, err := NewExternal(a, reg, []byte{1, 2, 3}, 42, func(token uint64) {
		calls++
		gotToken = token
	})
	require.NoError(t, err)

	require.NoError(t, Release(a, reg, ref))
	assert.Equal(t, 1, calls)
	assert.Equal(t, uint64(42), gotToken)

	_, ok := a.ClassOf(ref)
	assert.False(t, ok)
}
