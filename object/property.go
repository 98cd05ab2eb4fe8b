package object

import (
	"encoding/binary"

	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/value"
)

// propertySize is the fixed layout of a property cell:
//
//	[0:8]   key (value.Value, a string or symbol)
//	[8]     flags: writable|enumerable|configurable|isAccessor
//	[9:16]  padding
//	[16:24] data value, or getterRef(4)+setterRef(4) when isAccessor
const propertySize = 24

const (
	flagWritable     = 1 << 0
	flagEnumerable   = 1 << 1
	flagConfigurable = 1 << 2
	flagAccessor     = 1 << 3
)

// Descriptor is the host-facing property descriptor (spec.md §4.4
// "property descriptor"), used both to define new properties and as the
// return shape of GetOwnProperty.
type Descriptor struct {
	Value        value.Value // data properties only
	Get          arena.CellRef
	Set          arena.CellRef
	Writable     bool
	Enumerable   bool
	Configurable bool
	IsAccessor   bool

	HasValue        bool
	HasWritable     bool
	HasGet          bool
	HasSet          bool
	HasEnumerable   bool
	HasConfigurable bool
}

// propertyView is a zero-cost view over a property cell's payload.
type propertyView struct{ buf []byte }

func viewProperty(buf []byte) propertyView { return propertyView{buf: buf} }

func (p propertyView) key() value.Value { return value.Value(binary.LittleEndian.Uint64(p.buf[0:8])) }
func (p propertyView) setKey(v value.Value) {
	binary.LittleEndian.PutUint64(p.buf[0:8], uint64(v))
}

func (p propertyView) flags() byte     { return p.buf[8] }
func (p propertyView) setFlags(f byte) { p.buf[8] = f }

func (p propertyView) isAccessor() bool   { return p.flags()&flagAccessor != 0 }
func (p propertyView) writable() bool     { return p.flags()&flagWritable != 0 }
func (p propertyView) enumerable() bool   { return p.flags()&flagEnumerable != 0 }
func (p propertyView) configurable() bool { return p.flags()&flagConfigurable != 0 }

func (p propertyView) dataValue() value.Value {
	return value.Value(binary.LittleEndian.Uint64(p.buf[16:24]))
}
func (p propertyView) setDataValue(v value.Value) {
	binary.LittleEndian.PutUint64(p.buf[16:24], uint64(v))
}

func (p propertyView) getter() arena.CellRef { return binary.LittleEndian.Uint32(p.buf[16:20]) }
func (p propertyView) setter() arena.CellRef { return binary.LittleEndian.Uint32(p.buf[20:24]) }
func (p propertyView) setAccessors(get, set arena.CellRef) {
	binary.LittleEndian.PutUint32(p.buf[16:20], get)
	binary.LittleEndian.PutUint32(p.buf[20:24], set)
}

func (p propertyView) toDescriptor() Descriptor {
	d := Descriptor{
		Enumerable:      p.enumerable(),
		Configurable:     p.configurable(),
		HasEnumerable:    true,
		HasConfigurable:  true,
	}
	if p.isAccessor() {
		d.IsAccessor = true
		d.Get = p.getter()
		d.Set = p.setter()
		d.HasGet, d.HasSet = true, true
		return d
	}
	d.Value = p.dataValue()
	d.Writable = p.writable()
	d.HasValue, d.HasWritable = true, true
	return d
}

func allocProperty(a *arena.Arena, key value.Value, d Descriptor) (arena.CellRef, error) {
	ref, payload, err := a.Alloc(propertySize, arena.ClassProperty)
	if err != nil {
		return 0, err
	}
	p := viewProperty(payload)
	p.setKey(key)
	var flags byte
	if d.Enumerable {
		flags |= flagEnumerable
	}
	if d.Configurable {
		flags |= flagConfigurable
	}
	if d.IsAccessor {
		flags |= flagAccessor
		p.setFlags(flags)
		p.setAccessors(d.Get, d.Set)
		return ref, nil
	}
	if d.Writable {
		flags |= flagWritable
	}
	p.setFlags(flags)
	p.setDataValue(d.Value)
	return ref, nil
}

// applyDescriptor overwrites only the fields d explicitly sets (the
// "Has*" flags), leaving the rest of an existing property untouched — the
// partial-update semantics ValidateAndApplyPropertyDescriptor requires
// (spec.md §4.4).
func applyDescriptor(p propertyView, d Descriptor) {
	flags := p.flags()
	if d.HasEnumerable {
		if d.Enumerable {
			flags |= flagEnumerable
		} else {
			flags &^= flagEnumerable
		}
	}
	if d.HasConfigurable {
		if d.Configurable {
			flags |= flagConfigurable
		} else {
			flags &^= flagConfigurable
		}
	}
	if d.IsAccessor || d.HasGet || d.HasSet {
		flags |= flagAccessor
		p.setFlags(flags)
		get, set := p.getter(), p.setter()
		if d.HasGet {
			get = d.Get
		}
		if d.HasSet {
			set = d.Set
		}
		p.setAccessors(get, set)
		return
	}
	if d.HasWritable {
		if d.Writable {
			flags |= flagWritable
		} else {
			flags &^= flagWritable
		}
	}
	p.setFlags(flags &^ flagAccessor)
	if d.HasValue {
		p.setDataValue(d.Value)
	}
}
