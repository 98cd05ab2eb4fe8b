package engine

import "github.com/jerryscript-go/jerry/arena"

// Realm is one distinct global object and lexical environment sharing the
// owning Context's heap and collector with every other realm
// (spec.md §4.11 "Realms").
type Realm struct {
	// Global is the realm's global object cell.
	Global arena.CellRef
	// Builtins maps a well-known built-in name ("Object", "Array", ...) to
	// its constructor/namespace object cell for this realm. Each realm
	// gets its own set so built-ins allocated while a realm is current
	// belong to that realm, never leak across realms.
	Builtins map[string]arena.CellRef
}

// NewRealm creates a realm around an already-allocated global object cell.
func NewRealm(global arena.CellRef) *Realm {
	return &Realm{Global: global, Builtins: make(map[string]arena.CellRef)}
}
