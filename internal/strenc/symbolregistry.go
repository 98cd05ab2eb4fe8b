package strenc

import "sync"

// SymbolRegistry is the global symbol registry backing Symbol.for/keyFor,
// kept distinct from ordinary Symbol() creation: a key that has been
// registered once always yields the same cell reference
// (original_source/ecma-builtin-symbol.c confirms the dedicated table).
// It stores arena.CellRef values by their raw uint32 form to avoid an
// import cycle with the value package (which itself depends on strenc for
// CESU-8/UTF-16 conversion); callers in the value package re-wrap the
// returned ref with value.HeapSymbol.
type SymbolRegistry struct {
	mu    sync.Mutex
	byKey map[string]uint32
	byRef map[uint32]string
}

// NewSymbolRegistry creates an empty registry.
func NewSymbolRegistry() *SymbolRegistry {
	return &SymbolRegistry{byKey: make(map[string]uint32), byRef: make(map[uint32]string)}
}

// For implements Symbol.for(key): returns the existing ref for key, or
// calls create to allocate a fresh symbol cell and registers it.
func (r *SymbolRegistry) For(key string, create func() uint32) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ref, ok := r.byKey[key]; ok {
		return ref
	}
	ref := create()
	r.byKey[key] = ref
	r.byRef[ref] = key
	return ref
}

// KeyFor implements Symbol.keyFor(sym): the registered key for ref, or
// ("", false) if ref was never registered via For.
func (r *SymbolRegistry) KeyFor(ref uint32) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k, ok := r.byRef[ref]
	return k, ok
}
