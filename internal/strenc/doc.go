// Package strenc implements the encoding conversions the string and symbol
// store needs (spec.md §4.3): CESU-8 (the engine's internal representation,
// where supplementary code points are stored as a surrogate pair each
// individually re-encoded as UTF-8) in and out of plain UTF-8, and UTF-16
// code-unit length counting. It generalises the teacher's
// internal/reader/value.go name-decoding helpers, which already convert
// between ASCII/Windows-1252 and UTF-16LE using golang.org/x/text.
package strenc
