package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPortReadSourceRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "source.js")
	require.NoError(t, os.WriteFile(path, []byte("1+1;"), 0o644))

	p := NewDefaultPort()
	data, release, err := p.ReadSource(path)
	require.NoError(t, err)
	assert.Equal(t, "1+1;", string(data))
	release()
}

func TestDefaultPortReadSourceMissingFileErrors(t *testing.T) {
	p := NewDefaultPort()
	_, _, err := p.ReadSource(filepath.Join(t.TempDir(), "missing.js"))
	assert.Error(t, err)
}

func TestDefaultPortLocalTZOffsetIsStable(t *testing.T) {
	p := NewDefaultPort()
	ms := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	a := p.LocalTZOffset(ms)
	b := p.LocalTZOffset(ms)
	assert.Equal(t, a, b)
}

func TestDefaultPortLogDoesNotPanicAtAnyLevel(t *testing.T) {
	p := &DefaultPort{MinLogLevel: LogError}
	// Should not panic regardless of whether the message is suppressed.
	p.Log(LogError, "visible")
	p.Log(LogTrace, "suppressed")
}
