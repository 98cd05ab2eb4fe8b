package api

import "github.com/jerryscript-go/jerry/value"

// IsErrorReference reports whether v is an error reference, the first
// check a caller makes on any value that might have propagated a throw
// (spec.md §7 "first check is_error_reference").
func IsErrorReference(v value.Value) bool { return v.IsErrorRef() }

// GetValueFromError unwraps an error reference's payload
// (get_value_from_error). When releaseInput is true, ownership of the
// unwrapped payload passes to the caller and errRef is released: the
// payload is acquired first so releasing the wrapper — which may drop it
// to zero and free it — can never strand the value the caller is about to
// receive (spec.md §3 "free(value) drops one reference").
func GetValueFromError(h *value.Heap, errRef value.Value, releaseInput bool) value.Value {
	payload := h.GetValueFromError(errRef)
	if releaseInput && errRef.IsErrorRef() {
		payload = h.Acquire(payload)
		h.Release(errRef)
	}
	return payload
}

// CreateErrorFromValue promotes payload to a catchable thrown-value error
// reference (create_error_from_value). If payload is already an error
// reference, its abort flag is cleared and its payload kept
// (re-tagging, per spec.md §7 "promote or re-tag"). The new wrapper
// acquires its own reference to payload; when releaseInput is true the
// caller's reference is released afterward.
func CreateErrorFromValue(h *value.Heap, payload value.Value, releaseInput bool) value.Value {
	var out value.Value
	if payload.IsErrorRef() {
		out = h.Retag(payload, false)
	} else {
		out = h.NewErrorRef(payload)
	}
	if releaseInput {
		h.Release(payload)
	}
	return out
}

// CreateAbortFromValue promotes payload to a non-catchable abort value
// (create_abort_from_value). Abort values propagate through every
// try/catch without being caught; only IsAbort or engine.Context.Cleanup
// can observe one (spec.md §7). See CreateErrorFromValue for the
// acquire/release convention around releaseInput.
func CreateAbortFromValue(h *value.Heap, payload value.Value, releaseInput bool) value.Value {
	var out value.Value
	if payload.IsErrorRef() {
		out = h.Retag(payload, true)
	} else {
		out = h.NewAbortRef(payload)
	}
	if releaseInput {
		h.Release(payload)
	}
	return out
}

// IsAbort reports whether v is a non-catchable abort value
// (value_is_abort).
func IsAbort(h *value.Heap, v value.Value) bool { return h.IsAbort(v) }
