// Package proxy implements the Proxy exotic object of spec.md §4.6: a pair
// of owning references (target, handler) where each internal method first
// consults the handler for a matching trap and falls back to forwarding
// straight to the target's own internal method when the trap is absent.
// Trap results are validated against the ECMAScript invariants unless the
// construction-time SkipResultValidation option disables the check.
package proxy
