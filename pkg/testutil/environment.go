package testutil

import (
	"testing"

	"github.com/adrg/xdg"
)

// IsolateState points the XDG state directory, and with it the log file,
// at a fresh temp dir for the duration of the test.
func IsolateState(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}
