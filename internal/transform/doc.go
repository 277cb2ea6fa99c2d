// SPDX-License-Identifier: MPL-2.0

// Package transform applies a replacement table to every file of a directory
// tree: file contents are rewritten in place and entries whose relative path
// contains a search key are renamed.
//
// The walk is collected up front, so renames never disturb traversal.
// A failure part way through leaves the tree partially rewritten: there is no
// rollback, and the returned error names the path that failed.
package transform
