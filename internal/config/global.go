// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride replaces the platform lookup in ConfigDir when set.
var configDirOverride string

// SetConfigDirOverride makes ConfigDir return dir. Tests use it because
// os.UserHomeDir() ignores $HOME on some platforms.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset clears the override set by SetConfigDirOverride.
func Reset() {
	configDirOverride = ""
}
