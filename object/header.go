package object

import (
	"encoding/binary"

	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/internal/layout"
)

// headerSize is the fixed layout of an object cell's header, mirroring the
// teacher's NK fixed-header-plus-offsets convention:
//
//	[0]     class id (layout.ObjectClass)
//	[1]     flags (extensible bit 0)
//	[2:4]   reserved
//	[4:8]   prototypeRef (arena.CellRef, NULL = no prototype)
//	[8:12]  propListRef (arena.CellRef, NULL = no own properties yet)
//	[12:16] propCount (uint32)
const headerSize = 16

const flagExtensible = 1 << 0

// Header is a zero-cost view over an object cell's fixed header.
type Header struct {
	buf []byte
}

// ViewHeader wraps an object cell's payload as a Header. Callers must have
// already resolved ref to a payload via arena.Payload/Alloc.
func ViewHeader(payload []byte) Header { return Header{buf: payload} }

// New allocates a fresh ordinary object with the given prototype (pass
// layout.NullPointer for none) and class, extensible by default per
// OrdinaryObjectCreate (spec.md §4.4).
func New(a *arena.Arena, proto arena.CellRef, class layout.ObjectClass) (arena.CellRef, error) {
	ref, payload, err := a.Alloc(headerSize, arena.ClassObjectHeader)
	if err != nil {
		return layout.NullPointer, err
	}
	h := Header{buf: payload}
	h.setClass(class)
	h.setFlags(flagExtensible)
	h.setPrototype(proto)
	h.setPropList(layout.NullPointer)
	h.setPropCount(0)
	return ref, nil
}

func (h Header) Class() layout.ObjectClass { return layout.ObjectClass(h.buf[0]) }
func (h Header) setClass(c layout.ObjectClass) { h.buf[0] = byte(c) }

func (h Header) flags() byte        { return h.buf[1] }
func (h Header) setFlags(f byte)    { h.buf[1] = f }

// Extensible reports whether new own properties may be added
// (spec.md §4.4 [[DefineOwnProperty]] extensibility check).
func (h Header) Extensible() bool { return h.flags()&flagExtensible != 0 }

// SetExtensible implements PreventExtensions when passed false; it never
// flips back to true once cleared (ECMAScript invariant).
func (h Header) SetExtensible(b bool) {
	if !b {
		h.setFlags(h.flags() &^ flagExtensible)
	}
}

func (h Header) Prototype() arena.CellRef {
	return binary.LittleEndian.Uint32(h.buf[4:8])
}
func (h Header) setPrototype(ref arena.CellRef) {
	binary.LittleEndian.PutUint32(h.buf[4:8], ref)
}

// SetPrototype implements [[SetPrototypeOf]] aside from the cycle check,
// which the caller (SetPrototypeOf in this package) performs first.
func (h Header) SetPrototype(ref arena.CellRef) { h.setPrototype(ref) }

func (h Header) PropList() arena.CellRef {
	return binary.LittleEndian.Uint32(h.buf[8:12])
}
func (h Header) setPropList(ref arena.CellRef) {
	binary.LittleEndian.PutUint32(h.buf[8:12], ref)
}

func (h Header) PropCount() int {
	return int(binary.LittleEndian.Uint32(h.buf[12:16]))
}
func (h Header) setPropCount(n int) {
	binary.LittleEndian.PutUint32(h.buf[12:16], uint32(n))
}
