// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"
)

// SetConfigHome points the platform's per-user configuration root at dir and
// returns a cleanup function restoring the original value.
//
// Platform handling:
//   - Windows: Sets APPDATA
//   - macOS: Sets HOME (config lives under ~/Library/Application Support)
//   - Linux/others: Sets XDG_CONFIG_HOME
func SetConfigHome(t testing.TB, dir string) func() {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		return MustSetenv(t, "APPDATA", dir)
	case "darwin":
		return MustSetenv(t, "HOME", dir)
	default:
		return MustSetenv(t, "XDG_CONFIG_HOME", dir)
	}
}
