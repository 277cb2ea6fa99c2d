// SPDX-License-Identifier: MPL-2.0

package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Split breaks a CamelCase identifier into its words.
//
// The first rune is upper-cased, then the string is cut immediately before every
// upper-case rune. Empty fragments are dropped. An empty input yields a list
// holding a single empty string, which callers must tell apart from an empty list.
func Split(identifier string) []string {
	if identifier == "" {
		return []string{""}
	}

	s := ucfirst(identifier)
	words := make([]string, 0, 4)
	start := 0
	for i, r := range s {
		if i > start && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		words = append(words, s[start:])
	}
	return words
}

// ucfirst upper-cases the first rune of s.
func ucfirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// lcfirst lower-cases the first rune of s.
func lcfirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string { return ucfirst(s) }

// mapWords applies fn to every word and returns a new list.
func mapWords(words []string, fn func(string) string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = fn(w)
	}
	return out
}

// joinMapped applies fn to every word and joins the results with sep.
func joinMapped(words []string, sep string, fn func(string) string) string {
	return strings.Join(mapWords(words, fn), sep)
}
