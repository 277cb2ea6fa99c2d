// SPDX-License-Identifier: MPL-2.0

package replace

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fopconsole/fop/internal/naming"
)

func TestTable_SetKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	var table Table
	table.Set("b", "1")
	table.Set("a", "2")
	table.Set("c", "3")
	table.Set("a", "4")

	assert.Equal(t, []string{"b", "a", "c"}, table.Keys())
	v, ok := lookup(&table, "a")
	assert.True(t, ok)
	assert.Equal(t, "4", v)
	assert.Equal(t, 3, table.Len())
}

func TestTable_SetIgnoresEmptySearch(t *testing.T) {
	t.Parallel()

	table := NewTable()
	table.Set("", "everything")
	table.SetPairs([]naming.Pair{{Search: "", Replace: "x"}, {Search: "k", Replace: "v"}})

	assert.Equal(t, []string{"k"}, table.Keys())
}

func TestTable_ApplyLongestKeyFirst(t *testing.T) {
	t.Parallel()

	table := NewTable()
	table.Set("Foo", "Bar")
	table.Set("FooBar", "Baz")

	assert.Equal(t, "Baz Bar", table.Apply("FooBar Foo"))
}

func TestTable_ApplyDoesNotChainReplacements(t *testing.T) {
	t.Parallel()

	table := NewTable()
	table.Set("a", "b")
	table.Set("b", "c")

	assert.Equal(t, "bc", table.Apply("ab"))
}

func TestTable_ApplyWithoutMatchesIsIdentity(t *testing.T) {
	t.Parallel()

	table := Build(BuildOptions{
		Old: naming.Identifier{Base: "OldMod"},
		New: naming.Identifier{Base: "NewMod"},
	})
	content := "nothing to see here\n\x00\x01binary-ish\n"

	assert.Equal(t, content, table.Apply(content))
	assert.Equal(t, "unchanged", NewTable().Apply("unchanged"))
}

func TestTable_FirstMatch(t *testing.T) {
	t.Parallel()

	table := NewTable()
	table.Set("zzz", "1")
	table.Set("mod", "2")
	table.Set("my", "3")

	key, ok := table.FirstMatch("src/mymod.php")
	assert.True(t, ok)
	assert.Equal(t, "mod", key)

	_, ok = table.FirstMatch("README.md")
	assert.False(t, ok)
}

// lookup returns the replacement stored for search.
func lookup(t *Table, search string) (string, bool) {
	v, ok := t.values[search]
	return v, ok
}
