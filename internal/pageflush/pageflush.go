// Package pageflush synchronizes a mmap-backed arena's dirty pages to their
// backing store, the platform-specific half of an mmap-backed Arena's Flush
// (spec.md §4.1/§4.7). Process-heap arenas never call into this package.
package pageflush
