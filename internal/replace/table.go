// SPDX-License-Identifier: MPL-2.0

package replace

import (
	"sort"
	"strings"

	"github.com/fopconsole/fop/internal/naming"
)

// Table is an insertion-ordered mapping from search string to replacement.
// The zero value is an empty table ready for use.
type Table struct {
	keys   []string
	values map[string]string
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{values: make(map[string]string)}
}

// Set associates search with replace. Empty search strings are ignored, since
// they would match everywhere. Setting an existing key overwrites its value in place.
func (t *Table) Set(search, replace string) {
	if search == "" {
		return
	}
	if t.values == nil {
		t.values = make(map[string]string)
	}
	if _, exists := t.values[search]; !exists {
		t.keys = append(t.keys, search)
	}
	t.values[search] = replace
}

// SetPairs sets every pair in order.
func (t *Table) SetPairs(pairs []naming.Pair) {
	for _, p := range pairs {
		t.Set(p.Search, p.Replace)
	}
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.keys) }

// Keys returns the search strings in insertion order.
func (t *Table) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Pairs returns the entries in insertion order.
func (t *Table) Pairs() []naming.Pair {
	pairs := make([]naming.Pair, 0, len(t.keys))
	for _, k := range t.keys {
		pairs = append(pairs, naming.Pair{Search: k, Replace: t.values[k]})
	}
	return pairs
}

// Replacer returns a replacer that substitutes every key of the table in a
// single left-to-right pass. At each position the longest matching key wins and
// replaced text is never scanned again.
func (t *Table) Replacer() *strings.Replacer {
	keys := t.Keys()
	// strings.Replacer picks the first matching argument at a position, so
	// longer keys must come first.
	sort.SliceStable(keys, func(i, j int) bool {
		return len(keys[i]) > len(keys[j])
	})
	oldnew := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		oldnew = append(oldnew, k, t.values[k])
	}
	return strings.NewReplacer(oldnew...)
}

// Apply substitutes every key of the table in s.
func (t *Table) Apply(s string) string {
	if t.Len() == 0 {
		return s
	}
	return t.Replacer().Replace(s)
}

// FirstMatch returns the first key, in table order, that occurs in s.
func (t *Table) FirstMatch(s string) (string, bool) {
	for _, k := range t.keys {
		if strings.Contains(s, k) {
			return k, true
		}
	}
	return "", false
}
