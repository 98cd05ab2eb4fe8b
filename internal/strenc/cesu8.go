package strenc

import (
	"unicode/utf16"
	"unicode/utf8"
)

// ToCESU8 re-encodes UTF-8 bytes into the engine's internal CESU-8 form:
// every code point above the Basic Multilingual Plane is split into a
// surrogate pair, and each surrogate half is then encoded as its own
// (invalid-as-UTF-8) three-byte UTF-8 sequence, matching the teacher's
// UTF-16LE handling in internal/reader/value.go but projected onto bytes
// rather than uint16 code units.
func ToCESU8(utf8Bytes []byte) []byte {
	out := make([]byte, 0, len(utf8Bytes))
	for len(utf8Bytes) > 0 {
		r, size := utf8.DecodeRune(utf8Bytes)
		utf8Bytes = utf8Bytes[size:]
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			out = appendSurrogateAsUTF8(out, hi)
			out = appendSurrogateAsUTF8(out, lo)
			continue
		}
		out = utf8.AppendRune(out, r)
	}
	return out
}

// appendSurrogateAsUTF8 encodes a single UTF-16 surrogate half (an invalid
// rune on its own) as a three-byte sequence, the way CESU-8 requires.
func appendSurrogateAsUTF8(dst []byte, surrogate rune) []byte {
	// surrogate is in 0xD800-0xDFFF, always a 3-byte UTF-8 sequence shape.
	return append(dst,
		0xE0|byte(surrogate>>12),
		0x80|byte((surrogate>>6)&0x3F),
		0x80|byte(surrogate&0x3F),
	)
}

// FromCESU8 decodes the engine's internal CESU-8 form back into ordinary
// UTF-8, recombining surrogate pairs that CESU-8 stores as two independent
// three-byte sequences.
func FromCESU8(cesu []byte) []byte {
	out := make([]byte, 0, len(cesu))
	for i := 0; i < len(cesu); {
		r, size := decodeCESU8Rune(cesu[i:])
		i += size
		if isHighSurrogate(r) && i < len(cesu) {
			r2, size2 := decodeCESU8Rune(cesu[i:])
			if isLowSurrogate(r2) {
				combined := utf16.DecodeRune(r, r2)
				out = utf8.AppendRune(out, combined)
				i += size2
				continue
			}
		}
		out = utf8.AppendRune(out, r)
	}
	return out
}

// decodeCESU8Rune decodes one rune like utf8.DecodeRune, except that a
// three-byte encoded surrogate half (lead byte 0xED, second byte
// 0xA0-0xBF), which utf8.DecodeRune rejects, decodes to that surrogate.
func decodeCESU8Rune(b []byte) (rune, int) {
	if len(b) >= 3 && b[0] == 0xED && b[1] >= 0xA0 && b[1] <= 0xBF && b[2]&0xC0 == 0x80 {
		return rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), 3
	}
	return utf8.DecodeRune(b)
}

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

// ValidCESU8 reports whether b is well-formed CESU-8: every byte sequence
// decodes to a rune, and any high surrogate is immediately followed by a
// matching low surrogate.
func ValidCESU8(b []byte) bool {
	for i := 0; i < len(b); {
		r, size := decodeCESU8Rune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return false
		}
		i += size
		if isHighSurrogate(r) {
			if i >= len(b) {
				return false
			}
			r2, size2 := decodeCESU8Rune(b[i:])
			if !isLowSurrogate(r2) {
				return false
			}
			i += size2
		} else if isLowSurrogate(r) {
			return false // lone low surrogate
		}
	}
	return true
}

// UTF16Length returns the length of a UTF-8 or CESU-8 byte string in
// UCS-2/UTF-16 code units, the unit spec.md §4.3 uses for "string length"
// (as opposed to "string size", which is the CESU-8 byte count).
func UTF16Length(utf8Bytes []byte) int {
	n := 0
	for len(utf8Bytes) > 0 {
		r, size := decodeCESU8Rune(utf8Bytes)
		utf8Bytes = utf8Bytes[size:]
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}
