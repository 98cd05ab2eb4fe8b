// Package engerr is the error channel described in spec.md §4.8 and §7: a
// typed error classifying failures so callers can branch on the Kind rather
// than on message text, the way pkg/types.Error does for hive corruption
// kinds in the teacher repo.
package engerr

import "fmt"

// Kind classifies a failure. Only ThrownValue and Abort are observable to
// script; every other kind is Fatal (see Kind.Fatal). Errors of every
// kind, fatal ones included, are returned to the caller as Go errors; no
// package in this module calls the host's fatal port.
type Kind int

const (
	OutOfMemory Kind = iota
	RefCountLimit
	DisabledByteCode
	InternalAssert
	ThrownValue
	Abort
)

func (k Kind) String() string {
	switch k {
	case OutOfMemory:
		return "OutOfMemory"
	case RefCountLimit:
		return "RefCountLimit"
	case DisabledByteCode:
		return "DisabledByteCode"
	case InternalAssert:
		return "InternalAssert"
	case ThrownValue:
		return "ThrownValue"
	case Abort:
		return "Abort"
	default:
		return "UnknownKind"
	}
}

// Fatal reports whether a Kind is one of the non-script failure kinds. It
// only classifies: an *Error of a fatal kind is returned to the caller
// like any other error.
func (k Kind) Fatal() bool {
	switch k {
	case OutOfMemory, RefCountLimit, DisabledByteCode, InternalAssert:
		return true
	default:
		return false
	}
}

// Error is a typed error with an optional wrapped cause, the engine-wide
// error type for anything that is not itself a thrown ECMAScript value
// (those are carried by value.ErrorRef / value.Value, not this type).
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs an *Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap constructs an *Error of the given kind around a cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Sentinels shared across packages. Compare with errors.Is.
var (
	ErrOutOfMemory       = New(OutOfMemory, "out of memory")
	ErrRefCountLimit     = New(RefCountLimit, "refcount saturated")
	ErrDisabledByteCode  = New(DisabledByteCode, "bytecode execution is disabled for this context")
	ErrBadCompressedPtr  = New(InternalAssert, "invalid compressed pointer")
	ErrContextUnavailable = New(InternalAssert, "engine API is not available (between Cleanup phases)")
	ErrNestedFromFree    = New(InternalAssert, "engine call attempted from within a native free callback")
)

// Assertf constructs an InternalAssert error with a formatted message,
// mirroring the teacher's fmt.Errorf-heavy error construction style.
func Assertf(format string, args ...any) *Error {
	return New(InternalAssert, fmt.Sprintf(format, args...))
}
