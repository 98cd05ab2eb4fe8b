package arraybuf

import (
	"encoding/binary"
	"math"

	"github.com/jerryscript-go/jerry/internal/engerr"
)

// ErrOutOfBounds is returned by every DataView accessor when the requested
// range doesn't fit the view (spec.md §4.5 "range-error on OOB").
var ErrOutOfBounds = engerr.New(engerr.ThrownValue, "arraybuf: DataView access out of bounds")

// DataView is an untyped window over a Buffer with explicit per-access
// endianness, unlike TypedArray's fixed element kind.
type DataView struct {
	Buffer     Buffer
	ByteOffset int
	ByteLength int
}

func (d DataView) span(offset, size int) ([]byte, error) {
	if d.Buffer.Detached() {
		return nil, ErrDetached
	}
	if offset < 0 || size < 0 || offset+size > d.ByteLength {
		return nil, ErrOutOfBounds
	}
	start := d.ByteOffset + offset
	return d.Buffer.Data()[start : start+size], nil
}

func order(littleEndian bool) binary.ByteOrder {
	if littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func (d DataView) GetUint8(offset int) (byte, error) {
	b, err := d.span(offset, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d DataView) SetUint8(offset int, v byte) error {
	b, err := d.span(offset, 1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

func (d DataView) GetInt16(offset int, littleEndian bool) (int16, error) {
	b, err := d.span(offset, 2)
	if err != nil {
		return 0, err
	}
	return int16(order(littleEndian).Uint16(b)), nil
}

func (d DataView) SetInt16(offset int, v int16, littleEndian bool) error {
	b, err := d.span(offset, 2)
	if err != nil {
		return err
	}
	order(littleEndian).PutUint16(b, uint16(v))
	return nil
}

func (d DataView) GetUint32(offset int, littleEndian bool) (uint32, error) {
	b, err := d.span(offset, 4)
	if err != nil {
		return 0, err
	}
	return order(littleEndian).Uint32(b), nil
}

func (d DataView) SetUint32(offset int, v uint32, littleEndian bool) error {
	b, err := d.span(offset, 4)
	if err != nil {
		return err
	}
	order(littleEndian).PutUint32(b, v)
	return nil
}

func (d DataView) GetFloat64(offset int, littleEndian bool) (float64, error) {
	b, err := d.span(offset, 8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(order(littleEndian).Uint64(b)), nil
}

func (d DataView) SetFloat64(offset int, v float64, littleEndian bool) error {
	b, err := d.span(offset, 8)
	if err != nil {
		return err
	}
	order(littleEndian).PutUint64(b, math.Float64bits(v))
	return nil
}
