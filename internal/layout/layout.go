// Package layout houses the low-level tag and bit-width constants shared by
// the value, arena, and object packages. Keeping them in one leaf package
// means the tag encoding can change (e.g. a 16-bit build vs. a 32-bit build)
// without touching the packages that only care about the symbolic names.
package layout

// PointerWidth selects how many bits a compressed pointer occupies. It is
// fixed for the lifetime of a context (engine.Config.PointerWidth) and never
// changes once a heap has been created.
type PointerWidth uint8

const (
	// PointerWidth16 packs compressed pointers into 16 bits, matching the
	// original engine's memory-constrained build. A heap in this mode can
	// address at most 1<<16 aligned cells.
	PointerWidth16 PointerWidth = 16
	// PointerWidth32 packs compressed pointers into 32 bits. This is the
	// default and matches hosts without a tight memory budget.
	PointerWidth32 PointerWidth = 32
)

// NullPointer is the reserved compressed-pointer value that denotes NULL.
// It is never a valid cell reference because cell 0 is the heap header.
const NullPointer uint32 = 0

// AlignShift is the number of low bits discarded when compressing a raw
// cell offset into a pointer. All cells are allocated on an 8-byte quantum,
// so an aligned offset's low 3 bits are always zero and can be dropped.
const AlignShift = 3

// AlignQuantum is 1<<AlignShift, the smallest unit the arena ever allocates.
const AlignQuantum = 1 << AlignShift

// Tag occupies the low bits of a value word and discriminates what the rest
// of the word means. The layout deliberately keeps simple/immediate tags
// below heapFirst and heap-referencing tags at or above it so callers can
// test "is this a heap reference" with a single comparison (see IsHeapTag).
type Tag uint8

const (
	TagUndefined Tag = iota
	TagNull
	TagTrue
	TagFalse
	TagEmpty // internal sentinel: an array hole, or "no value here"
	TagSmallInt

	// heapFirst marks the boundary; any tag >= heapFirst addresses a cell
	// through a compressed pointer rather than carrying its payload inline.
	heapFirst

	TagFloat Tag = iota + heapFirst - 1
	TagString
	TagObject
	TagSymbol
	TagBigInt
	TagErrorRef // wraps an ExtendedPrimitive: thrown value + abort flag
)

// IsHeapTag reports whether values carrying this tag are compressed
// pointers into the arena rather than immediates encoded inline.
func IsHeapTag(t Tag) bool { return t >= heapFirst }

// ObjectClass is the secondary discriminator stored in a heap object's
// header for TagObject cells (spec.md §3 "class object"). Ordinary objects
// use ClassNone; every other variant carries type-specific payload reached
// through the class id.
type ObjectClass uint8

const (
	ClassNone ObjectClass = iota
	ClassArray
	ClassFunction
	ClassBoundFunction
	ClassString
	ClassArguments
	ClassTypedArray
	ClassArrayBuffer
	ClassDataView
	ClassModule
	ClassScript
	ClassPromise
	ClassMap
	ClassSet
	ClassWeakRef
	ClassRegExp
	ClassDate
	ClassBoolean
	ClassNumber
	ClassError
	ClassBigInt
	ClassSymbol
	ClassIterator
	ClassProxy
)

// String renders an ObjectClass for logs and debug dumps.
func (c ObjectClass) String() string {
	switch c {
	case ClassNone:
		return "Ordinary"
	case ClassArray:
		return "Array"
	case ClassFunction:
		return "Function"
	case ClassBoundFunction:
		return "BoundFunction"
	case ClassString:
		return "String"
	case ClassArguments:
		return "Arguments"
	case ClassTypedArray:
		return "TypedArray"
	case ClassArrayBuffer:
		return "ArrayBuffer"
	case ClassDataView:
		return "DataView"
	case ClassModule:
		return "Module"
	case ClassScript:
		return "Script"
	case ClassPromise:
		return "Promise"
	case ClassMap:
		return "Map"
	case ClassSet:
		return "Set"
	case ClassWeakRef:
		return "WeakRef"
	case ClassRegExp:
		return "RegExp"
	case ClassDate:
		return "Date"
	case ClassBoolean:
		return "Boolean"
	case ClassNumber:
		return "Number"
	case ClassError:
		return "Error"
	case ClassBigInt:
		return "BigInt"
	case ClassSymbol:
		return "Symbol"
	case ClassIterator:
		return "Iterator"
	case ClassProxy:
		return "Proxy"
	default:
		return "Unknown"
	}
}

// Align rounds n up to the next AlignQuantum boundary, mirroring the
// teacher's cell-alignment rounding (format.CellAlignment) but generalised
// to arbitrary allocation requests rather than a fixed 8-byte registry cell.
func Align(n int32) int32 {
	return (n + AlignQuantum - 1) &^ (AlignQuantum - 1)
}
