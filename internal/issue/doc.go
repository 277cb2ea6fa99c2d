// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// An ActionableError carries the failed operation, the resource involved and
// suggestions for the user. It may point at an Issue: a Markdown page from the
// catalog in this package, rendered with glamour when the error reaches the CLI.
package issue
