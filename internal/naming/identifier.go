// SPDX-License-Identifier: MPL-2.0

package naming

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidIdentifier is the sentinel error wrapped by InvalidIdentifierError.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// identifierPattern accepts "Base" or "Prefix_Base" with alphanumeric parts.
var identifierPattern = regexp.MustCompile(`^(?:([[:alnum:]]+)_)?([[:alnum:]]+)$`)

type (
	// Identifier is a module or class name split into an optional prefix and a base.
	// Base is never empty for a parsed Identifier.
	Identifier struct {
		Prefix string
		Base   string
	}

	// InvalidIdentifierError is returned when a raw identifier does not have the
	// "Prefix_Base" or "Base" shape. It wraps ErrInvalidIdentifier.
	InvalidIdentifierError struct {
		Value string
	}
)

// ParseIdentifier parses raw as "Prefix_Base" or "Base".
func ParseIdentifier(raw string) (Identifier, error) {
	m := identifierPattern.FindStringSubmatch(raw)
	if m == nil {
		return Identifier{}, &InvalidIdentifierError{Value: raw}
	}
	return Identifier{Prefix: m[1], Base: m[2]}, nil
}

// Error implements the error interface for InvalidIdentifierError.
func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q: expected Prefix_Base or Base (letters and digits, at most one underscore)", e.Value)
}

// Unwrap returns ErrInvalidIdentifier for errors.Is() compatibility.
func (e *InvalidIdentifierError) Unwrap() error { return ErrInvalidIdentifier }

// HasPrefix reports whether the identifier carries a prefix.
func (id Identifier) HasPrefix() bool { return id.Prefix != "" }

// String returns the identifier in its raw "Prefix_Base" or "Base" form.
func (id Identifier) String() string {
	if id.Prefix == "" {
		return id.Base
	}
	return id.Prefix + "_" + id.Base
}

// Joined returns prefix and base concatenated without a separator.
func (id Identifier) Joined() string { return id.Prefix + id.Base }

// ModuleName returns the lower-case directory name of the module the identifier names.
func (id Identifier) ModuleName() string { return toLower(id.String()) }

// PrefixVariants returns the two prefix renderings of old paired with the same
// renderings of new: "PREFIXBase" and "PREFIX_Base". The prefix is upper-cased
// and the base kept as given. Both pairs are produced even when a prefix is
// empty, so an unprefixed old name still yields "Base" and "_Base" keys.
func PrefixVariants(oldID, newID Identifier) []Pair {
	oldPrefix, newPrefix := toUpper(oldID.Prefix), toUpper(newID.Prefix)
	return []Pair{
		{Search: oldPrefix + oldID.Base, Replace: newPrefix + newID.Base},
		{Search: oldPrefix + "_" + oldID.Base, Replace: newPrefix + "_" + newID.Base},
	}
}
