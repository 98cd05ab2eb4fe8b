package engine

import (
	"time"

	"github.com/jerryscript-go/jerry/value"
)

// LogLevel mirrors the handful of severities the host log port accepts.
type LogLevel int

const (
	LogError LogLevel = iota
	LogWarning
	LogInfo
	LogDebug
	LogTrace
)

// Port is the host boundary spec.md §6 describes: everything the core
// needs from its environment but cannot itself decide (wall clock,
// timezone, how source bytes are read and released, where a fatal
// error goes, ...). Every deployment supplies a concrete implementation;
// DefaultPort in port_default.go is the one wired in when the host
// doesn't care to customize it.
type Port interface {
	// Now returns the current time, used for Date and debugging.
	Now() time.Time

	// LocalTZOffset returns the local timezone offset in milliseconds for
	// the given UTC time expressed in milliseconds since the epoch.
	LocalTZOffset(utcMillis int64) int64

	// ReadSource reads the bytes for a source identified by path,
	// returning a release function the caller must call once done with
	// the returned slice (mirrors the original's reader/release pair so a
	// host can mmap source files instead of copying them).
	ReadSource(path string) (data []byte, release func(), err error)

	// Fatal is the host hook for a Kind whose engerr.Kind.Fatal() is true.
	// It never returns to the caller under normal operation; a test Port
	// may choose to panic or record the call instead of exiting the
	// process. No engine package calls it: fatal-kind failures are
	// returned as Go errors.
	Fatal(code int)

	// Log receives free-form diagnostic output at the given level.
	Log(level LogLevel, format string, args ...any)

	// Sleep pauses the calling goroutine for d, used only by the optional
	// debugger transport's polling loop.
	Sleep(d time.Duration)

	// TrackPromiseRejection is the host-installable hook fired for
	// unhandled/handled-late promise rejections; see promise.Tracker for
	// the engine-internal event plumbing this feeds.
	TrackPromiseRejection(p value.Value, handled bool)

	// ResolveNativeModule looks up a native module registered under name,
	// returning ok=false if no such module was registered by the host.
	ResolveNativeModule(name string) (module any, ok bool)
}
