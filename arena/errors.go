package arena

import "github.com/jerryscript-go/jerry/internal/engerr"

var (
	// ErrNoSpace names the "no free cell large enough and growth failed"
	// condition. No Arena method returns it: Alloc reports that case as
	// ErrGrowFail.
	ErrNoSpace = engerr.New(engerr.OutOfMemory, "arena: no free cell large enough")

	// ErrBadRef indicates an invalid or out-of-bounds compressed pointer.
	ErrBadRef = engerr.ErrBadCompressedPtr

	// ErrGrowFail indicates growing the backing region failed (ceiling hit
	// or requested size exceeds the configured PointerWidth's address space).
	ErrGrowFail = engerr.New(engerr.OutOfMemory, "arena: grow failed")

	// ErrNotFree indicates an attempt to free a cell that is not allocated.
	ErrNotFree = engerr.Assertf("arena: expected an allocated cell")

	// ErrNeedTooSmall indicates a negative requested payload size.
	ErrNeedTooSmall = engerr.Assertf("arena: need must not be negative")
)
