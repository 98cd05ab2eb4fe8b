package value

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// dumpOnFailure logs a %#v-style structural dump of v if t has already
// failed, the way a round-trip test wants to show exactly which fields
// diverged instead of just testify's one-line diff.
func dumpOnFailure(t *testing.T, label string, v any) {
	t.Helper()
	if t.Failed() {
		t.Logf("%s:\n%s", label, spew.Sdump(v))
	}
}
