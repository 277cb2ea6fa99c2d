// SPDX-License-Identifier: MPL-2.0

package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "two words", input: "HelloWorld", want: []string{"Hello", "World"}},
		{name: "lower-case single word", input: "abc", want: []string{"Abc"}},
		{name: "empty input", input: "", want: []string{""}},
		{name: "camel case", input: "moduleHooks", want: []string{"Module", "Hooks"}},
		{name: "acronym splits per letter", input: "PSModule", want: []string{"P", "S", "Module"}},
		{name: "underscore stays inside word", input: "ps_checkout", want: []string{"Ps_checkout"}},
		{name: "digits stay inside word", input: "Module2Export", want: []string{"Module2", "Export"}},
		{name: "non-ascii upper case", input: "ÉtéÉclair", want: []string{"Été", "Éclair"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Split(tt.input))
		})
	}
}

func TestSplit_ReconstructsPascalCase(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"fooBarBaz", "FooBar", "x", "SomeHTTPThing"} {
		words := Split(input)
		assert.Equal(t, Capitalize(input), strings.Join(words, ""), "input %q", input)
		for _, w := range words {
			assert.NotEmpty(t, w, "input %q produced an empty word", input)
		}
	}
}
