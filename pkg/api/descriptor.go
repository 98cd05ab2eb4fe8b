package api

import (
	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/internal/engerr"
	"github.com/jerryscript-go/jerry/internal/layout"
	"github.com/jerryscript-go/jerry/object"
	"github.com/jerryscript-go/jerry/value"
)

// ErrInvalidDescriptor reports a descriptor-shaped object with an invalid
// combination of fields (spec.md §9 "invalid combinations ... still raise
// a type error at conversion time"): a value or writable field present
// together with a get or set field.
var ErrInvalidDescriptor = engerr.New(engerr.ThrownValue, "invalid property descriptor")

// ToPropertyDescriptor reads a plain ECMAScript object's own
// value/writable/get/set/enumerable/configurable properties into an
// object.Descriptor (to_property_descriptor). Only fields actually present
// on descObj set the corresponding Has* bit, matching the partial-update
// semantics object.DefineOwnProperty expects.
func ToPropertyDescriptor(objs *object.Objects, magic *value.MagicStrings, descObj arena.CellRef) (object.Descriptor, error) {
	var d object.Descriptor

	hasValue := objs.HasOwnProperty(descObj, magic.Get(value.MagicValue))
	hasWritable := objs.HasOwnProperty(descObj, magic.Get(value.MagicWritable))
	hasGet := objs.HasOwnProperty(descObj, magic.Get(value.MagicGet))
	hasSet := objs.HasOwnProperty(descObj, magic.Get(value.MagicSet))
	hasEnumerable := objs.HasOwnProperty(descObj, magic.Get(value.MagicEnumerable))
	hasConfigurable := objs.HasOwnProperty(descObj, magic.Get(value.MagicConfigurable))

	if (hasValue || hasWritable) && (hasGet || hasSet) {
		return object.Descriptor{}, ErrInvalidDescriptor
	}

	if hasValue {
		d.Value = objs.Get(descObj, magic.Get(value.MagicValue), value.HeapObject(descObj))
		d.HasValue = true
	}
	if hasWritable {
		d.Writable = objs.Heap.StrictEquals(objs.Get(descObj, magic.Get(value.MagicWritable), value.HeapObject(descObj)), value.Boolean(true))
		d.HasWritable = true
	}
	if hasGet {
		g := objs.Get(descObj, magic.Get(value.MagicGet), value.HeapObject(descObj))
		d.Get = g.Ref()
		d.HasGet = true
		d.IsAccessor = true
	}
	if hasSet {
		s := objs.Get(descObj, magic.Get(value.MagicSet), value.HeapObject(descObj))
		d.Set = s.Ref()
		d.HasSet = true
		d.IsAccessor = true
	}
	if hasEnumerable {
		d.Enumerable = objs.Heap.StrictEquals(objs.Get(descObj, magic.Get(value.MagicEnumerable), value.HeapObject(descObj)), value.Boolean(true))
		d.HasEnumerable = true
	}
	if hasConfigurable {
		d.Configurable = objs.Heap.StrictEquals(objs.Get(descObj, magic.Get(value.MagicConfigurable), value.HeapObject(descObj)), value.Boolean(true))
		d.HasConfigurable = true
	}
	return d, nil
}

// FromPropertyDescriptor creates a fresh plain object exposing d's defined
// fields as own data properties (from_property_descriptor), the inverse of
// ToPropertyDescriptor. Round-tripping a Descriptor through both functions
// yields an equivalent descriptor by spec.md §8's testable property.
func FromPropertyDescriptor(objs *object.Objects, magic *value.MagicStrings, d object.Descriptor) (arena.CellRef, error) {
	ref, err := object.New(objs.Heap.Arena, layout.NullPointer, layout.ClassNone)
	if err != nil {
		return layout.NullPointer, err
	}

	if d.IsAccessor {
		if err := objs.CreateDataProperty(ref, magic.Get(value.MagicGet), value.HeapObject(d.Get)); err != nil {
			return layout.NullPointer, err
		}
		if err := objs.CreateDataProperty(ref, magic.Get(value.MagicSet), value.HeapObject(d.Set)); err != nil {
			return layout.NullPointer, err
		}
	} else if d.HasValue || d.HasWritable {
		if err := objs.CreateDataProperty(ref, magic.Get(value.MagicValue), d.Value); err != nil {
			return layout.NullPointer, err
		}
		if err := objs.CreateDataProperty(ref, magic.Get(value.MagicWritable), value.Boolean(d.Writable)); err != nil {
			return layout.NullPointer, err
		}
	}
	if err := objs.CreateDataProperty(ref, magic.Get(value.MagicEnumerable), value.Boolean(d.Enumerable)); err != nil {
		return layout.NullPointer, err
	}
	if err := objs.CreateDataProperty(ref, magic.Get(value.MagicConfigurable), value.Boolean(d.Configurable)); err != nil {
		return layout.NullPointer, err
	}
	return ref, nil
}
