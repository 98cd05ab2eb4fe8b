package arraybuf

import (
	"encoding/binary"
	"sync"

	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/internal/engerr"
)

// FreeCallback is invoked exactly once, when an externally-backed buffer's
// refcount drops to zero, handing the host back its original pointer token
// (spec.md §4.5 "external buffers carry a free callback").
type FreeCallback func(token uint64)

// bufferHeaderSize is the fixed prefix of an ArrayBuffer cell:
//
//	[0:4]   byteLength
//	[4]     flags: bit0 detached, bit1 external
//	[5:8]   padding
//	[8:16]  external token (opaque to the engine; only meaningful when the
//	        external flag is set — looked up in an ExternalRegistry to find
//	        the FreeCallback, since a Go func value can't be stored inline
//	        in an arena cell)
//	[16:20] refcount (spec.md §3/§4.7: ArrayBuffers are refcounted, not
//	        traced, the same as strings/symbols/BigInts)
const bufferHeaderSize = 20
const bufferRefcountOffset = 16

// ExternalRegistry maps an external buffer's token to the FreeCallback
// NewExternal registered it with, since the callback itself can't live
// inside the arena cell. One registry is shared by every ArrayBuffer cell
// in a heap (spec.md §4.5).
type ExternalRegistry struct {
	mu        sync.Mutex
	callbacks map[uint64]FreeCallback
}

// NewExternalRegistry creates an empty registry.
func NewExternalRegistry() *ExternalRegistry {
	return &ExternalRegistry{callbacks: make(map[uint64]FreeCallback)}
}

// Register associates token with cb, overwriting any previous registration
// for the same token.
func (r *ExternalRegistry) Register(token uint64, cb FreeCallback) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.callbacks[token] = cb
}

// take removes and returns token's callback, if any.
func (r *ExternalRegistry) take(token uint64) (FreeCallback, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cb, ok := r.callbacks[token]
	if ok {
		delete(r.callbacks, token)
	}
	return cb, ok
}

const (
	flagDetached = 1 << 0
	flagExternal = 1 << 1
)

// Buffer is a zero-cost view over an ArrayBuffer cell.
type Buffer struct{ buf []byte }

func ViewBuffer(payload []byte) Buffer { return Buffer{buf: payload} }

// New allocates an inline ArrayBuffer of byteLength bytes, zero-initialised
// per CreateByteDataBlock, with an initial refcount of 1.
func New(a *arena.Arena, byteLength int) (arena.CellRef, error) {
	ref, payload, err := a.Alloc(int32(bufferHeaderSize+byteLength), arena.ClassArrayBuffer)
	if err != nil {
		return 0, err
	}
	b := Buffer{buf: payload}
	binary.LittleEndian.PutUint32(b.buf[0:4], uint32(byteLength))
	b.setRefcount(1)
	return ref, nil
}

// NewExternal creates a buffer for host-owned memory without copying it
// into the arena: only the header cell lives in the heap, recording
// len(data) as the byte length plus the token. The data slice itself is
// not retained, and no accessor returns it. The token round-trips through
// reg's registered FreeCallback when the buffer's refcount reaches zero
// (spec.md §4.5).
func NewExternal(a *arena.Arena, reg *ExternalRegistry, data []byte, token uint64, cb FreeCallback) (arena.CellRef, error) {
	ref, payload, err := a.Alloc(bufferHeaderSize, arena.ClassArrayBuffer)
	if err != nil {
		return 0, err
	}
	b := Buffer{buf: payload}
	binary.LittleEndian.PutUint32(b.buf[0:4], uint32(len(data)))
	b.buf[4] = flagExternal
	binary.LittleEndian.PutUint64(b.buf[8:16], token)
	b.setRefcount(1)
	if reg != nil && cb != nil {
		reg.Register(token, cb)
	}
	return ref, nil
}

func (b Buffer) ByteLength() int { return int(binary.LittleEndian.Uint32(b.buf[0:4])) }
func (b Buffer) Detached() bool  { return b.buf[4]&flagDetached != 0 }
func (b Buffer) External() bool  { return b.buf[4]&flagExternal != 0 }
func (b Buffer) Token() uint64   { return binary.LittleEndian.Uint64(b.buf[8:16]) }

func (b Buffer) refcount() uint32 {
	if len(b.buf) < bufferRefcountOffset+4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b.buf[bufferRefcountOffset : bufferRefcountOffset+4])
}

func (b Buffer) setRefcount(n uint32) {
	if len(b.buf) < bufferRefcountOffset+4 {
		return
	}
	binary.LittleEndian.PutUint32(b.buf[bufferRefcountOffset:bufferRefcountOffset+4], n)
}

// Acquire increments ref's refcount (spec.md §3 "copying a reference value
// increments the referent's refcount").
func Acquire(a *arena.Arena, ref arena.CellRef) {
	b := ViewBuffer(a.Payload(ref))
	b.setRefcount(b.refcount() + 1)
}

// Release drops one reference to ref, freeing the cell once the count
// reaches zero. For an external buffer this also invokes (and forgets) the
// FreeCallback registered with reg, handing the host its token back
// (spec.md §4.5 "invoked exactly once, when ... refcount drops to zero").
// reg may be nil for inline (non-external) buffers.
func Release(a *arena.Arena, reg *ExternalRegistry, ref arena.CellRef) error {
	b := ViewBuffer(a.Payload(ref))
	if rc := b.refcount(); rc > 1 {
		b.setRefcount(rc - 1)
		return nil
	}
	if b.External() && reg != nil {
		if cb, ok := reg.take(b.Token()); ok {
			cb(b.Token())
		}
	}
	return a.Free(ref)
}

// Detach marks the buffer unusable; every TypedArray/DataView view backed
// by it must check Detached() before every access (spec.md §4.5 "detach
// invalidates every view").
func (b Buffer) Detach() { b.buf[4] |= flagDetached }

// Data returns the bytes stored inline after the header. An external
// buffer stores none of its data in the cell, so for it this slice does
// not hold the host's bytes.
func (b Buffer) Data() []byte {
	return b.buf[bufferHeaderSize:]
}

var ErrDetached = engerr.New(engerr.ThrownValue, "arraybuf: operation on a detached ArrayBuffer")
