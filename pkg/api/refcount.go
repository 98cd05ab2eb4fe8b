package api

import "github.com/jerryscript-go/jerry/value"

// Acquire increments v's refcount and returns it unchanged
// (spec.md §3 "copying a reference value increments the referent's
// refcount"; §7 "error references may be acquired like any value").
func Acquire(h *value.Heap, v value.Value) value.Value { return h.Acquire(v) }

// Free drops one reference to v, the API-boundary spelling of
// value.Heap.Release (spec.md §3 "free(value) drops one reference; error
// references free the inner value as well").
func Free(h *value.Heap, v value.Value) { h.Release(v) }
