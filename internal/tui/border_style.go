// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	// BorderNone disables the border (zero value).
	BorderNone BorderStyle = ""
	// BorderNormal renders a standard single-line border.
	BorderNormal BorderStyle = "normal"
	// BorderRounded renders a single-line border with rounded corners.
	BorderRounded BorderStyle = "rounded"
	// BorderThick renders a thick/heavy border.
	BorderThick BorderStyle = "thick"
	// BorderDouble renders a double-line border.
	BorderDouble BorderStyle = "double"
)

// ErrInvalidBorderStyle is the sentinel error wrapped by InvalidBorderStyleError.
var ErrInvalidBorderStyle = errors.New("invalid border style")

type (
	// BorderStyle selects how tables are framed.
	// The zero value ("") means no border.
	BorderStyle string

	// InvalidBorderStyleError is returned when a BorderStyle value is not recognized.
	// It wraps ErrInvalidBorderStyle for errors.Is() compatibility.
	InvalidBorderStyleError struct {
		Value BorderStyle
	}
)

// String returns the string representation of the BorderStyle.
func (b BorderStyle) String() string { return string(b) }

// Validate returns nil if the BorderStyle is one of the defined styles.
func (b BorderStyle) Validate() error {
	if _, ok := b.border(); !ok {
		return &InvalidBorderStyleError{Value: b}
	}
	return nil
}

func (b BorderStyle) border() (lipgloss.Border, bool) {
	switch b {
	case BorderNone:
		return lipgloss.HiddenBorder(), true
	case BorderNormal:
		return lipgloss.NormalBorder(), true
	case BorderRounded:
		return lipgloss.RoundedBorder(), true
	case BorderThick:
		return lipgloss.ThickBorder(), true
	case BorderDouble:
		return lipgloss.DoubleBorder(), true
	default:
		return lipgloss.Border{}, false
	}
}

// Error implements the error interface for InvalidBorderStyleError.
func (e *InvalidBorderStyleError) Error() string {
	return fmt.Sprintf("invalid border style %q (valid: none, normal, rounded, thick, double)", e.Value)
}

// Unwrap returns ErrInvalidBorderStyle for errors.Is() compatibility.
func (e *InvalidBorderStyleError) Unwrap() error { return ErrInvalidBorderStyle }
