package gc

import (
	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/object"
)

// RegisterObjectModel wires the object package's cell shapes into the
// collector: header cells point at their prototype and property list,
// property-list cells point at their property cells, and property cells
// point at their key/value/accessors. Strings, symbols, BigInts, and
// ArrayBuffers are leaves (no Scanner registered) — they carry no
// outgoing compressed pointers of their own.
func (c *Collector) RegisterObjectModel() {
	c.RegisterScanner(arena.ClassObjectHeader, object.ScanHeaderRefs)
	c.RegisterScanner(arena.ClassPropList, object.ScanPropListRefs)
	c.RegisterScanner(arena.ClassProperty, object.ScanPropertyRefs)
}
