// Package arraybuf implements the binary data objects of spec.md §4.5:
// ArrayBuffer (inline or externally-owned backing storage), the eleven
// TypedArray element kinds, and DataView. Each is a thin typed view over a
// backing arena cell, following the same zero-cost-view idiom as the
// object package's Header/propertyView.
package arraybuf
