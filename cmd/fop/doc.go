// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the fop command line: module renaming, command naming
// checks and configuration management.
package cmd
