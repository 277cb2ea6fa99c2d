// SPDX-License-Identifier: MPL-2.0

package transform

import (
	"errors"
	"fmt"
)

// ErrIO is the sentinel error wrapped by IOError.
var ErrIO = errors.New("tree transform I/O failure")

// IOError reports a filesystem failure while transforming a tree.
// It matches both ErrIO and the underlying cause with errors.Is.
type IOError struct {
	// Op is the failed operation ("walk", "read", "write", "rename").
	Op string
	// Path is the absolute path involved.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns ErrIO and the underlying cause.
func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }
