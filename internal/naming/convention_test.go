// SPDX-License-Identifier: MPL-2.0

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_SingleWord(t *testing.T) {
	t.Parallel()

	words := Split("Foo")
	want := map[Convention]string{
		Pascal:         "Foo",
		Camel:          "foo",
		Ducapitalized:  "Foo",
		Lower:          "foo",
		ScreamingSnake: "FOO",
		Snake:          "foo",
		Title:          "Foo",
		Sentence:       "Foo",
	}
	for c, expected := range want {
		assert.Equal(t, expected, Render(c, words), "convention %s", c)
	}
}

func TestRender_MultiWord(t *testing.T) {
	t.Parallel()

	words := Split("myGreatModule")
	tests := []struct {
		convention Convention
		want       string
	}{
		{Pascal, "MyGreatModule"},
		{Camel, "myGreatModule"},
		{Ducapitalized, "Mygreatmodule"},
		{Lower, "mygreatmodule"},
		{ScreamingSnake, "MY_GREAT_MODULE"},
		{Snake, "my_great_module"},
		{Title, "My Great Module"},
		{Sentence, "My great module"},
	}

	for _, tt := range tests {
		t.Run(tt.convention.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Render(tt.convention, words))
		})
	}
}

func TestRender_UnknownConventionConcatenates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "HelloWorld", Render(Convention("kebab"), []string{"Hello", "World"}))
}

func TestRenderString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "module_hooks", RenderString(Snake, "ModuleHooks"))
	assert.Equal(t, "module_hooks", RenderString(Snake, "moduleHooks"))
	assert.Equal(t, "", RenderString(Snake, ""))
}

func TestVariants_Deterministic(t *testing.T) {
	t.Parallel()

	first := Variants(BaseConventions, "OldThing", "NewStuff")
	second := Variants(BaseConventions, "OldThing", "NewStuff")

	require.Len(t, first, len(BaseConventions))
	assert.Equal(t, first, second)
	assert.Equal(t, Pair{Search: "OldThing", Replace: "NewStuff"}, first[0])
	assert.Equal(t, Pair{Search: "OLD_THING", Replace: "NEW_STUFF"}, first[4])
	assert.Equal(t, Pair{Search: "Old thing", Replace: "New stuff"}, first[7])
}

func TestAuthorVariants(t *testing.T) {
	t.Parallel()

	pairs := AuthorVariants("JohnDoe", "JaneRoe")
	assert.Equal(t, []Pair{
		{Search: "JohnDoe", Replace: "JaneRoe"},
		{Search: "johnDoe", Replace: "janeRoe"},
	}, pairs)
}
