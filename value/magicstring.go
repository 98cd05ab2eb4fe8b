package value

// MagicStringID enumerates the small set of built-in identifiers the
// engine allocates over and over (property names like "length",
// "prototype", well-known Symbol descriptions, ...), interned once per
// Heap and referenced by id instead of re-encoding the same bytes
// repeatedly (spec.md GLOSSARY "Magic string").
type MagicStringID uint16

const (
	MagicLength MagicStringID = iota
	MagicPrototype
	MagicConstructor
	MagicName
	MagicMessage
	MagicValue
	MagicDone
	MagicNext
	MagicIterator
	MagicToStringTag
	MagicWritable
	MagicEnumerable
	MagicConfigurable
	MagicGet
	MagicSet
	magicStringCount
)

var magicStringText = [magicStringCount]string{
	MagicLength:       "length",
	MagicPrototype:    "prototype",
	MagicConstructor:  "constructor",
	MagicName:         "name",
	MagicMessage:      "message",
	MagicValue:        "value",
	MagicDone:         "done",
	MagicNext:         "next",
	MagicIterator:     "iterator",
	MagicToStringTag:  "toStringTag",
	MagicWritable:     "writable",
	MagicEnumerable:   "enumerable",
	MagicConfigurable: "configurable",
	MagicGet:          "get",
	MagicSet:          "set",
}

// MagicStrings caches the interned Value for each MagicStringID against
// one Heap, created lazily on first use.
type MagicStrings struct {
	heap   *Heap
	cached [magicStringCount]Value
	have   [magicStringCount]bool
}

// NewMagicStrings binds a cache to h.
func NewMagicStrings(h *Heap) *MagicStrings {
	return &MagicStrings{heap: h}
}

// Get returns the interned Value for id, allocating it on first use.
func (m *MagicStrings) Get(id MagicStringID) Value {
	if m.have[id] {
		return m.cached[id]
	}
	v := m.heap.NewString([]byte(magicStringText[id]))
	m.cached[id] = v
	m.have[id] = true
	return v
}
