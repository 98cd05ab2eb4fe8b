//go:build !unix

package pageflush

// Sync is a no-op on platforms without msync; Map below falls back to a
// plain heap allocation, so there are no dirty mapped pages to flush.
func Sync(b []byte) error { return nil }

// Map falls back to an ordinary heap allocation on non-unix platforms
// (generalising the teacher's mmfile_fallback.go/loader_other.go split).
func Map(size int) ([]byte, error) { return make([]byte, size), nil }

// Unmap is a no-op for the heap-allocated fallback; the GC reclaims it.
func Unmap(b []byte) error { return nil }
