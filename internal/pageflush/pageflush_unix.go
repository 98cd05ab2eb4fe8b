//go:build unix

package pageflush

import "golang.org/x/sys/unix"

// Sync flushes every dirty page in b to the mapping's backing store via
// msync(MS_SYNC), mirroring the teacher's hive/dirty flush_unix.go.
func Sync(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Msync(b, unix.MS_SYNC)
}

// Map reserves a private anonymous mapping of size bytes, used as an
// mmap-backed Arena's fixed address-space reservation (spec.md §4.1
// "reserve virtual address space, commit pages on demand").
func Map(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// Unmap releases a mapping previously returned by Map.
func Unmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munmap(b)
}
