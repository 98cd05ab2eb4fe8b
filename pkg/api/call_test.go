package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/value"
)

func TestCallPassesThisAndArgsWithoutNewTarget(t *testing.T) {
	var seen CallInfo
	fn := NativeFunc(func(info CallInfo, args []value.Value) value.Value {
		seen = info
		return args[0]
	})

	this := value.SmallInt(1)
	result := Call(fn, arena.CellRef(7), this, []value.Value{value.SmallInt(9)})

	assert.Equal(t, arena.CellRef(7), seen.Function)
	assert.Equal(t, this, seen.This)
	assert.Equal(t, arena.CellRef(0), seen.NewTarget)
	assert.Equal(t, value.SmallInt(9), result)
}

func TestConstructSetsNewTarget(t *testing.T) {
	var seen CallInfo
	fn := NativeFunc(func(info CallInfo, args []value.Value) value.Value {
		seen = info
		return value.Undefined()
	})

	Construct(fn, arena.CellRef(3), arena.CellRef(3), nil)
	assert.Equal(t, arena.CellRef(3), seen.NewTarget)
}
