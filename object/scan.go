package object

import "github.com/jerryscript-go/jerry/arena"

// ScanHeaderRefs reports the outgoing references from an object header
// cell: its prototype and its property list. Registered with gc.Collector
// under arena.ClassObjectHeader.
func ScanHeaderRefs(payload []byte, push func(arena.CellRef)) {
	h := ViewHeader(payload)
	push(h.Prototype())
	push(h.PropList())
}

// ScanPropListRefs reports every property cell a property-list cell
// references. Registered with gc.Collector under arena.ClassPropList.
func ScanPropListRefs(payload []byte, push func(arena.CellRef)) {
	l := viewPropList(payload)
	for i := 0; i < l.count(); i++ {
		push(l.at(i))
	}
}

// ScanPropertyRefs reports the outgoing references from a property cell:
// the key (if it's a heap-tagged string/symbol) and, for accessor
// properties, the getter/setter function objects; for a data property, the
// data value's cell when value.Value.Ref reports one (a heap-tagged value).
func ScanPropertyRefs(payload []byte, push func(arena.CellRef)) {
	p := viewProperty(payload)
	if ref := p.key().Ref(); ref != 0 {
		push(ref)
	}
	if p.isAccessor() {
		push(p.getter())
		push(p.setter())
		return
	}
	if ref := p.dataValue().Ref(); ref != 0 {
		push(ref)
	}
}
