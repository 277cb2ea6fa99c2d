// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/fop/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/fop/config.cue on macOS, %APPDATA%\fop\config.cue
// on Windows), falling back to ./config.cue. It locates the shop whose modules are
// renamed, the shell commands used to install and uninstall modules, the subtrees
// the rename leaves alone, and UI settings.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
