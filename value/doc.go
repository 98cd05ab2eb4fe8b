// Package value implements the tagged-value model of spec.md §3/§4.2: a
// single machine word (Value) that is either an immediate or a compressed
// pointer to a heap cell, plus the abstract operations ECMAScript defines
// over it (ToBoolean, ToNumber, strict/abstract equality, ...).
//
// The encoding mirrors the teacher's zero-cost cell views (hive.NK, hive.VK
// wrap a []byte payload and expose typed field accessors over fixed
// offsets) but collapsed onto a single in-register word for the immediate
// cases, and onto a arena.CellRef for everything heap-allocated.
package value
