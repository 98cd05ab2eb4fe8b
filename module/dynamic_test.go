package module

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerryscript-go/jerry/promise"
	"github.com/jerryscript-go/jerry/value"
)

func TestDynamicImportFulfillsOnSuccess(t *testing.T) {
	q := &promise.Queue{}
	r := &promise.Resolver{Queue: q, Tracker: &promise.Tracker{}}
	target := NewNative([]string{"x"}, nil)

	var seenSpecifier string
	var seenUser value.Value
	p := DynamicImport(r, func(spec string, user value.Value) (*Module, error) {
		seenSpecifier, seenUser = spec, user
		return target, nil
	}, "x.mjs", value.SmallInt(7), func(m *Module) value.Value { return value.SmallInt(1) })

	assert.Equal(t, "x.mjs", seenSpecifier)
	assert.Equal(t, int32(7), seenUser.AsInt32Immediate())
	assert.Equal(t, promise.Fulfilled, p.State())
}

func TestDynamicImportRejectsOnError(t *testing.T) {
	q := &promise.Queue{}
	r := &promise.Resolver{Queue: q, Tracker: &promise.Tracker{}}

	p := DynamicImport(r, func(spec string, user value.Value) (*Module, error) {
		return nil, errors.New("boom")
	}, "missing.mjs", value.Undefined(), func(m *Module) value.Value { return value.Undefined() })

	require.Equal(t, promise.Rejected, p.State())
}
