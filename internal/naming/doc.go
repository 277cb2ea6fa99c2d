// SPDX-License-Identifier: MPL-2.0

// Package naming splits identifiers into words and renders word lists in the
// casing conventions fop understands (PascalCase, camelCase, snake_case, ...).
//
// The same primitives back both the module rename engine and the command naming
// checker, so a convention is modelled once as a Convention value dispatched to a
// pure render function over a word list.
package naming
