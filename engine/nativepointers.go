package engine

import "github.com/jerryscript-go/jerry/arena"

// NativeInfo is a native info descriptor (spec.md §4.7, §6): identifies a
// kind of native data an object can carry and how to release it. Two
// objects can each carry data under the same *NativeInfo; comparing
// descriptors by pointer identity is how the table tells them apart,
// mirroring the original's vtable-pointer-as-key convention.
type NativeInfo struct {
	// Free releases data when the owning object cell is collected. It may
	// not call back into the engine (spec.md §5 "Nested entry": a
	// violation from within a free callback is fatal).
	Free func(data any)
}

type nativePointerKey struct {
	obj  arena.CellRef
	info *NativeInfo
}

// NativePointerTable is the refcount backbone for object-attached native
// data the Context owns: Set attaches data with a refcount of one,
// Acquire/Release adjust it, and
// FreeObject runs every surviving entry's NativeInfo.Free when the owning
// object cell is swept (spec.md §4.11 "refcount backbone for the
// native-pointer table").
type NativePointerTable struct {
	entries map[nativePointerKey]*nativePointerEntry
}

type nativePointerEntry struct {
	data     any
	refcount int
}

// NewNativePointerTable returns an empty table.
func NewNativePointerTable() *NativePointerTable {
	return &NativePointerTable{entries: make(map[nativePointerKey]*nativePointerEntry)}
}

// Set attaches data to obj under info, replacing any prior data attached
// under the same info and resetting its refcount to one.
func (t *NativePointerTable) Set(obj arena.CellRef, info *NativeInfo, data any) {
	t.entries[nativePointerKey{obj, info}] = &nativePointerEntry{data: data, refcount: 1}
}

// Get returns the data attached to obj under info, if any.
func (t *NativePointerTable) Get(obj arena.CellRef, info *NativeInfo) (any, bool) {
	e, ok := t.entries[nativePointerKey{obj, info}]
	if !ok {
		return nil, false
	}
	return e.data, true
}

// Delete removes the entry immediately, without running info.Free (the
// caller already owns the data and is taking responsibility for it).
func (t *NativePointerTable) Delete(obj arena.CellRef, info *NativeInfo) {
	delete(t.entries, nativePointerKey{obj, info})
}

// Acquire increments the refcount for an existing entry; it is a no-op if
// no such entry exists.
func (t *NativePointerTable) Acquire(obj arena.CellRef, info *NativeInfo) {
	if e, ok := t.entries[nativePointerKey{obj, info}]; ok {
		e.refcount++
	}
}

// Release decrements the refcount for an existing entry, running
// info.Free and removing the entry once it reaches zero.
func (t *NativePointerTable) Release(obj arena.CellRef, info *NativeInfo) {
	key := nativePointerKey{obj, info}
	e, ok := t.entries[key]
	if !ok {
		return
	}
	e.refcount--
	if e.refcount <= 0 {
		if info.Free != nil {
			info.Free(e.data)
		}
		delete(t.entries, key)
	}
}

// FreeObject runs every native-data entry still attached to obj regardless
// of refcount, and removes them. This is the hook wired into the
// collector's sweep pass (via gc.Collector.RegisterFreeHook) for the
// object arena.Class: once an object cell is unreachable, its native data
// is released unconditionally.
func (t *NativePointerTable) FreeObject(obj arena.CellRef) {
	for key, e := range t.entries {
		if key.obj != obj {
			continue
		}
		if key.info.Free != nil {
			key.info.Free(e.data)
		}
		delete(t.entries, key)
	}
}
