// SPDX-License-Identifier: MPL-2.0

package rename

import (
	"errors"
	"fmt"
)

var (
	// ErrDeclined is returned when the user answers no to a confirmation.
	ErrDeclined = errors.New("declined by user")
	// ErrModuleNotFound is returned when the old module directory does not exist.
	ErrModuleNotFound = errors.New("module not found")
	// ErrModuleExists is returned when the new module directory already exists.
	ErrModuleExists = errors.New("module already exists")
)

type (
	// DeclinedError records which confirmation was declined.
	DeclinedError struct {
		Step Step
	}

	// ModuleError reports a module directory that is missing or in the way.
	ModuleError struct {
		Module string
		Path   string
		Err    error
	}
)

// Error implements the error interface.
func (e *DeclinedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Step, ErrDeclined)
}

// Unwrap returns ErrDeclined.
func (e *DeclinedError) Unwrap() error { return ErrDeclined }

// Error implements the error interface.
func (e *ModuleError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Module, e.Path, e.Err)
}

// Unwrap returns the sentinel (ErrModuleNotFound or ErrModuleExists).
func (e *ModuleError) Unwrap() error { return e.Err }
