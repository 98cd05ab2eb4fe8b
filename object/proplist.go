package object

import (
	"encoding/binary"

	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/internal/layout"
)

// propList is a zero-cost view over a cell holding a packed array of
// property CellRefs, the direct analogue of the teacher's ValueList: "NK
// cells would be too large if they stored VK offsets inline, so the
// offsets are stored in a separate cell".
type propList struct{ buf []byte }

func viewPropList(buf []byte) propList { return propList{buf: buf} }

// count is the number of property refs in the list. The arena rounds cell
// sizes up, so the payload can hold more slots than entries; the list
// cells are zeroed on allocation and a property ref is never NullPointer,
// so trailing NullPointer slots are not counted.
func (l propList) count() int {
	n := len(l.buf) / 4
	for n > 0 && l.at(n-1) == layout.NullPointer {
		n--
	}
	return n
}

func (l propList) at(i int) arena.CellRef {
	return binary.LittleEndian.Uint32(l.buf[i*4 : i*4+4])
}

func (l propList) set(i int, ref arena.CellRef) {
	binary.LittleEndian.PutUint32(l.buf[i*4:i*4+4], ref)
}

// growPropList reallocates the list cell to hold one more entry, copying
// the existing refs and appending newRef, and frees the old cell. The
// caller repoints the header at the returned cell.
func growPropList(a *arena.Arena, oldRef arena.CellRef, newRef arena.CellRef) (arena.CellRef, error) {
	var old propList
	if oldRef != layout.NullPointer {
		old = viewPropList(a.Payload(oldRef))
	}
	n := old.count()
	ref, payload, err := a.Alloc(int32((n+1)*4), arena.ClassPropList)
	if err != nil {
		return layout.NullPointer, err
	}
	clear(payload)
	fresh := viewPropList(payload)
	for i := 0; i < n; i++ {
		fresh.set(i, old.at(i))
	}
	fresh.set(n, newRef)
	if oldRef != layout.NullPointer {
		_ = a.Free(oldRef)
	}
	return ref, nil
}

// removeFromPropList reallocates the list cell without the entry at index i.
func removeFromPropList(a *arena.Arena, oldRef arena.CellRef, i int) (arena.CellRef, error) {
	old := viewPropList(a.Payload(oldRef))
	n := old.count()
	if n <= 1 {
		_ = a.Free(oldRef)
		return layout.NullPointer, nil
	}
	ref, payload, err := a.Alloc(int32((n-1)*4), arena.ClassPropList)
	if err != nil {
		return layout.NullPointer, err
	}
	clear(payload)
	fresh := viewPropList(payload)
	w := 0
	for r := 0; r < n; r++ {
		if r == i {
			continue
		}
		fresh.set(w, old.at(r))
		w++
	}
	_ = a.Free(oldRef)
	return ref, nil
}
