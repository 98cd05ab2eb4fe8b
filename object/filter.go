package object

import (
	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/internal/layout"
	"github.com/jerryscript-go/jerry/value"
)

// KeyFilter is the bitmask object_get_property_names takes to select which
// own (and optionally inherited) keys to return. Earlier ports of this API
// spelled the bit "EXLCUDE" (sic); this implementation uses the corrected
// spelling throughout (spec.md §7, SPEC_FULL.md §E Open Question #2).
type KeyFilter uint16

const (
	ExcludeStrings KeyFilter = 1 << iota
	ExcludeSymbols
	ExcludeIntegerIndices
	IntegerIndicesAsNumber // represent integer indices as Number instead of String
	TraversePrototypeChain
	ExcludeNonConfigurable
	ExcludeNonEnumerable
	ExcludeNonWritable
)

// FilteredOwnKeys implements object_get_property_names: own (and optionally
// inherited, per TraversePrototypeChain) keys selected by filter,
// deduplicated by first appearance when the prototype chain is walked
// (spec.md §7 "duplicate keys ... are filtered in the order of first
// appearance"). Keys are compared with the same StrictEquals test findOwn
// uses. IntegerIndicesAsNumber has no effect here: every key is returned
// as it is stored in its property cell.
func (o *Objects) FilteredOwnKeys(ref arena.CellRef, filter KeyFilter) []value.Value {
	var out []value.Value

	cur := ref
	for cur != layout.NullPointer {
		list := o.props(cur)
		for i := 0; i < list.count(); i++ {
			p := viewProperty(o.arena().Payload(list.at(i)))
			if !keyPasses(o.Heap, p, filter) {
				continue
			}
			k := p.key()
			dup := false
			for _, prev := range out {
				if o.Heap.StrictEquals(prev, k) {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			out = append(out, k)
		}
		if filter&TraversePrototypeChain == 0 {
			break
		}
		cur = o.header(cur).Prototype()
	}
	return out
}

func keyPasses(h *value.Heap, p propertyView, filter KeyFilter) bool {
	key := p.key()
	isInteger := key.IsSmallInt() && key.AsInt32Immediate() >= 0
	switch {
	case key.IsSymbol() && filter&ExcludeSymbols != 0:
		return false
	case isInteger && filter&ExcludeIntegerIndices != 0:
		return false
	case key.IsString() && !isInteger && filter&ExcludeStrings != 0:
		return false
	}
	if filter&ExcludeNonConfigurable != 0 && !p.configurable() {
		return false
	}
	if filter&ExcludeNonEnumerable != 0 && !p.enumerable() {
		return false
	}
	if filter&ExcludeNonWritable != 0 && !p.isAccessor() && !p.writable() {
		return false
	}
	return true
}
