package value

import (
	"encoding/binary"

	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/internal/strenc"
)

// symbolHeaderSize mirrors stringHeaderSize: a refcount followed by a
// CESU-8 byte-length prefix for the symbol's description, since every
// symbol carries one even though it plays no part in equality (symbols
// are compared by identity, not description content).
const symbolHeaderSize = 8
const symbolLengthOffset = 4

// NewSymbol allocates a fresh, uniquely-identified symbol cell with the
// given description and an initial refcount of 1 (spec.md §3/§4.7:
// symbols are refcounted, not traced). Two calls with the same
// description never compare equal; only the global registry
// (Heap.SymbolFor) interns by key.
func (h *Heap) NewSymbol(description []byte) Value {
	cesu := strenc.ToCESU8(description)
	ref, payload, err := h.Arena.Alloc(int32(symbolHeaderSize+len(cesu)), arena.ClassSymbol)
	if err != nil {
		return Undefined()
	}
	writeRefcount(payload, 1)
	binary.LittleEndian.PutUint32(payload[symbolLengthOffset:], uint32(len(cesu)))
	copy(payload[symbolHeaderSize:], cesu)
	return HeapSymbol(ref)
}

// SymbolDescription returns a symbol's description as UTF-8.
func (h *Heap) SymbolDescription(v Value) []byte {
	if !v.IsSymbol() {
		return nil
	}
	payload := h.Arena.Payload(v.Ref())
	if len(payload) < symbolHeaderSize {
		return nil
	}
	n := binary.LittleEndian.Uint32(payload[symbolLengthOffset:])
	end := symbolHeaderSize + int(n)
	if end > len(payload) {
		end = len(payload)
	}
	return strenc.FromCESU8(payload[symbolHeaderSize:end])
}

// SymbolFor implements Symbol.for(key): a call with the same key always
// returns the same symbol Value (spec.md's global symbol registry,
// distinct from NewSymbol's always-fresh identity).
func (h *Heap) SymbolFor(registry *strenc.SymbolRegistry, key string) Value {
	ref := registry.For(key, func() uint32 {
		return h.NewSymbol([]byte(key)).Ref()
	})
	return HeapSymbol(ref)
}

// SymbolKeyFor implements Symbol.keyFor(sym).
func (h *Heap) SymbolKeyFor(registry *strenc.SymbolRegistry, v Value) (string, bool) {
	if !v.IsSymbol() {
		return "", false
	}
	return registry.KeyFor(v.Ref())
}
