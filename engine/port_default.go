package engine

import (
	"fmt"
	"os"
	"time"

	"github.com/jerryscript-go/jerry/value"
)

// DefaultPort is the out-of-the-box Port implementation, mirroring the
// original's jerry-port/default split (original_source/jerryscript-port.h):
// wall-clock time and UTC offset via the Go runtime, source files read
// straight off disk, fatal errors exit the process, and log output goes to
// stderr above a configurable threshold.
type DefaultPort struct {
	// MinLogLevel suppresses Log calls above this level (LogTrace is the
	// most verbose). Its zero value is LogError, so a zero DefaultPort logs
	// only errors; NewDefaultPort sets LogTrace, which logs everything.
	MinLogLevel LogLevel
}

// NewDefaultPort returns a DefaultPort that logs everything.
func NewDefaultPort() *DefaultPort {
	return &DefaultPort{MinLogLevel: LogTrace}
}

func (p *DefaultPort) Now() time.Time { return time.Now() }

func (p *DefaultPort) LocalTZOffset(utcMillis int64) int64 {
	t := time.UnixMilli(utcMillis).UTC()
	_, offsetSeconds := t.Local().Zone()
	return int64(offsetSeconds) * 1000
}

func (p *DefaultPort) ReadSource(path string) ([]byte, func(), error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() {}, nil
}

// Fatal terminates the process, matching jerry_port_fatal's documented
// behavior of never returning.
func (p *DefaultPort) Fatal(code int) {
	os.Exit(code)
}

func (p *DefaultPort) Log(level LogLevel, format string, args ...any) {
	if level > p.MinLogLevel {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

func (p *DefaultPort) Sleep(d time.Duration) {
	time.Sleep(d)
}

// TrackPromiseRejection is a no-op by default; hosts that care about
// unhandled rejections install their own Port or swap this field on a
// copy of DefaultPort.
func (p *DefaultPort) TrackPromiseRejection(v value.Value, handled bool) {}

// ResolveNativeModule reports no native modules by default; hosts that
// embed native modules install their own Port.
func (p *DefaultPort) ResolveNativeModule(name string) (any, bool) { return nil, false }
