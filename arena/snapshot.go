package arena

import (
	"encoding/binary"

	"github.com/jerryscript-go/jerry/internal/engerr"
	"github.com/jerryscript-go/jerry/internal/layout"
)

// snapshotMagic identifies a snapshot image, analogous to the teacher's
// REGFSignature four-byte file signature.
var snapshotMagic = [4]byte{'j', 's', 'n', 'p'}

const snapshotHeaderSize = 16

// SaveSnapshot serialises the arena into a position-independent,
// word-aligned byte image (spec.md §6 "Snapshots"). Because every
// back-reference inside the arena is already a CellRef relative to the
// arena's own base, the buffer can be copied byte-for-byte; only a small
// header recording the pointer width and length is prepended.
func (a *Arena) SaveSnapshot() []byte {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]byte, snapshotHeaderSize+len(a.buf))
	copy(out[0:4], snapshotMagic[:])
	out[4] = byte(a.width)
	binary.LittleEndian.PutUint32(out[8:], uint32(len(a.buf)))
	copy(out[snapshotHeaderSize:], a.buf)
	return out
}

// LoadSnapshot reconstructs an Arena from a buffer produced by
// SaveSnapshot, bypassing the parser entirely as spec.md §6 requires for
// exec_snapshot. offset allows the image to be embedded inside a larger
// host-owned buffer.
func LoadSnapshot(buf []byte, offset int) (*Arena, error) {
	if offset < 0 || offset+snapshotHeaderSize > len(buf) {
		return nil, engerr.New(engerr.InternalAssert, "arena: snapshot truncated")
	}
	hdr := buf[offset:]
	if string(hdr[0:4]) != string(snapshotMagic[:]) {
		return nil, engerr.New(engerr.InternalAssert, "arena: bad snapshot signature")
	}
	width := layout.PointerWidth(hdr[4])
	if width != layout.PointerWidth16 && width != layout.PointerWidth32 {
		return nil, engerr.New(engerr.InternalAssert, "arena: unknown snapshot pointer width")
	}
	n := binary.LittleEndian.Uint32(hdr[8:])
	start := offset + snapshotHeaderSize
	end := start + int(n)
	if end > len(buf) {
		return nil, engerr.New(engerr.InternalAssert, "arena: snapshot body truncated")
	}

	a := &Arena{
		width:     width,
		sizeTable: defaultSizeClassTable(),
	}
	a.buf = make([]byte, n)
	copy(a.buf, buf[start:end])
	a.freeLists = make([]freeList, a.sizeTable.NumClasses())
	a.stats.Size = int64(len(a.buf))
	return a, nil
}
