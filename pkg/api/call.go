package api

import (
	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/value"
)

// CallInfo exposes the current function object, this-binding, and
// new.target to a native function (spec.md §6 "Native functions:
// fn(call_info, args, argc) ... call_info exposes the current function
// object, this, and new.target").
type CallInfo struct {
	Function  arena.CellRef
	This      value.Value
	NewTarget arena.CellRef
}

// NativeFunc is the shape every host-registered native function
// implements. It returns either an ordinary result or an error reference
// (value.Heap.NewErrorRef-wrapped); callers distinguish the two with
// IsErrorReference, exactly as any other operation that can throw.
type NativeFunc func(info CallInfo, args []value.Value) value.Value

// Call invokes fn as an ordinary (non-constructor) call: NewTarget is the
// null CellRef.
func Call(fn NativeFunc, function arena.CellRef, this value.Value, args []value.Value) value.Value {
	return fn(CallInfo{Function: function, This: this}, args)
}

// Construct invokes fn as a [[Construct]] call: NewTarget is set to
// newTarget (ordinarily the function being constructed itself, or a
// subclass constructor via Reflect.construct).
func Construct(fn NativeFunc, function, newTarget arena.CellRef, args []value.Value) value.Value {
	return fn(CallInfo{Function: function, NewTarget: newTarget}, args)
}
