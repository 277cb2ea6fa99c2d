// SPDX-License-Identifier: MPL-2.0

package replace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fopconsole/fop/internal/naming"
)

// ErrInvalidExtra is the sentinel error wrapped by InvalidExtraError.
var ErrInvalidExtra = errors.New("invalid extra replacement")

type (
	// BuildOptions are the inputs of Build.
	BuildOptions struct {
		// Old is the identifier being renamed.
		Old naming.Identifier
		// New is the identifier it is renamed to.
		New naming.Identifier
		// OldAuthor is the author currently recorded for the module.
		OldAuthor string
		// NewAuthor, when non-empty, requests an author rename.
		NewAuthor string
		// Extra holds caller-supplied pairs. They have the lowest priority.
		Extra []naming.Pair
	}

	// InvalidExtraError is returned when a "search,replace" argument is malformed.
	// It wraps ErrInvalidExtra for errors.Is() compatibility.
	InvalidExtraError struct {
		Value  string
		Reason string
	}
)

// Build assembles the replacement table for renaming opts.Old to opts.New.
//
// Families are inserted lowest priority first, so a later family overwrites an
// earlier one when two renderings collide:
//
//  1. caller-supplied extra pairs
//  2. "PREFIXBase" and "PREFIX_Base" renderings, with the prefix possibly empty
//  3. every base convention over "PrefixBase" and "Prefix_Base" (prefixed identifiers only)
//  4. every base convention over the base alone
//  5. author Pascal/camel renderings, when a different author is requested
func Build(opts BuildOptions) *Table {
	t := NewTable()

	t.SetPairs(opts.Extra)

	t.SetPairs(naming.PrefixVariants(opts.Old, opts.New))

	if opts.Old.HasPrefix() {
		t.SetPairs(naming.Variants(naming.BaseConventions, opts.Old.Joined(), opts.New.Joined()))
		t.SetPairs(naming.Variants(naming.BaseConventions, opts.Old.String(), opts.New.String()))
	}

	t.SetPairs(naming.Variants(naming.BaseConventions, opts.Old.Base, opts.New.Base))

	if opts.NewAuthor != "" && opts.OldAuthor != opts.NewAuthor {
		t.SetPairs(naming.AuthorVariants(opts.OldAuthor, opts.NewAuthor))
	}

	return t
}

// ParseExtra parses "search,replace" arguments. The first comma separates the
// two halves, so replacements may themselves contain commas.
func ParseExtra(args []string) ([]naming.Pair, error) {
	pairs := make([]naming.Pair, 0, len(args))
	for _, arg := range args {
		search, replacement, found := strings.Cut(arg, ",")
		if !found {
			return nil, &InvalidExtraError{Value: arg, Reason: "missing comma"}
		}
		if search == "" {
			return nil, &InvalidExtraError{Value: arg, Reason: "empty search string"}
		}
		pairs = append(pairs, naming.Pair{Search: search, Replace: replacement})
	}
	return pairs, nil
}

// Error implements the error interface for InvalidExtraError.
func (e *InvalidExtraError) Error() string {
	return fmt.Sprintf("invalid extra replacement %q: %s (expected \"search,replace\")", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidExtra for errors.Is() compatibility.
func (e *InvalidExtraError) Unwrap() error { return ErrInvalidExtra }
