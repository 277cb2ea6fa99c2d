// SPDX-License-Identifier: MPL-2.0

// Package rename renames a shop module: it derives the replacement table for
// the old and new names, copies the module directory, rewrites the copy, and
// swaps the installed module, asking for confirmation before each step that
// touches the shop.
//
// Steps run strictly in order and are not rolled back. Declining a prompt
// stops the run with ErrDeclined and leaves completed steps in place.
package rename
