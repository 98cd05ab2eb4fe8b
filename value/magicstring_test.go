package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagicStringsInternAndCache(t *testing.T) {
	h := newTestHeap(t)
	m := NewMagicStrings(h)

	a := m.Get(MagicLength)
	b := m.Get(MagicLength)
	require.True(t, a.IsString())
	assert.Equal(t, a.Ref(), b.Ref())
}

func TestMagicStringsDistinctIDs(t *testing.T) {
	h := newTestHeap(t)
	m := NewMagicStrings(h)

	length := m.Get(MagicLength)
	proto := m.Get(MagicPrototype)
	assert.NotEqual(t, length.Ref(), proto.Ref())
	assert.Equal(t, []byte("length"), h.CopyToUTF8(length))
	assert.Equal(t, []byte("prototype"), h.CopyToUTF8(proto))
}
