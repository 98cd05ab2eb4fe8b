package strenc

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// utf16LEDecoder/utf16LEEncoder are shared, stateless transformers for
// hosts that hand the engine UTF-16LE source text directly (spec.md §6
// "Source text ... CESU-8 or UTF-8"), generalising the teacher's
// decodeUTF16LE helper in internal/reader/value.go to use the same
// golang.org/x/text/encoding/unicode machinery the teacher reaches for
// when it needs a real decoder rather than a hand-rolled fast path.
var (
	utf16LEDecoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	utf16LEEncoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
)

// DecodeUTF16LE converts raw UTF-16LE bytes (as a host might hand in for a
// module specifier or snapshot metadata string) into UTF-8.
func DecodeUTF16LE(data []byte) ([]byte, error) {
	return transform.Bytes(utf16LEDecoder, data)
}

// EncodeUTF16LE converts UTF-8 bytes into UTF-16LE, used when a host port
// callback (e.g. local-time formatting) needs to hand a platform API a
// UTF-16 string.
func EncodeUTF16LE(data []byte) ([]byte, error) {
	return transform.Bytes(utf16LEEncoder, data)
}
