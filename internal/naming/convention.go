// SPDX-License-Identifier: MPL-2.0

package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Pascal concatenates capitalized words: "HelloWorld".
	Pascal Convention = "pascal"
	// Camel is Pascal with a lower-case first letter: "helloWorld".
	Camel Convention = "camel"
	// Ducapitalized lower-cases the joined words, then capitalizes the first letter: "Helloworld".
	Ducapitalized Convention = "ducapitalized"
	// Lower concatenates lower-cased words: "helloworld".
	Lower Convention = "lower"
	// ScreamingSnake joins upper-cased words with underscores: "HELLO_WORLD".
	ScreamingSnake Convention = "screaming_snake"
	// Snake joins lower-cased words with underscores: "hello_world".
	Snake Convention = "snake"
	// Title joins capitalized words with spaces: "Hello World".
	Title Convention = "title"
	// Sentence joins words with spaces and capitalizes only the first letter: "Hello world".
	Sentence Convention = "sentence"
)

type (
	// Convention names a deterministic rendering of a word list into one string style.
	Convention string

	// Pair is a single search → replace association.
	Pair struct {
		Search  string
		Replace string
	}

	renderFunc func(words []string) string
)

var (
	// BaseConventions lists the eight conventions applied to module names, in the
	// order their pairs are emitted.
	BaseConventions = []Convention{
		Pascal,
		Camel,
		Ducapitalized,
		Lower,
		ScreamingSnake,
		Snake,
		Title,
		Sentence,
	}

	// AuthorConventions lists the conventions applied to author names.
	AuthorConventions = []Convention{Pascal, Camel}

	renderers = map[Convention]renderFunc{
		Pascal: renderPascal,
		Camel: func(words []string) string {
			return lcfirst(renderPascal(words))
		},
		Ducapitalized: func(words []string) string {
			return ucfirst(toLower(strings.Join(words, "")))
		},
		Lower: func(words []string) string {
			return joinMapped(words, "", toLower)
		},
		ScreamingSnake: func(words []string) string {
			return joinMapped(words, "_", toUpper)
		},
		Snake: func(words []string) string {
			return joinMapped(words, "_", toLower)
		},
		Title: func(words []string) string {
			return joinMapped(words, " ", ucfirst)
		},
		Sentence: func(words []string) string {
			return ucfirst(toLower(strings.Join(words, " ")))
		},
	}
)

// String returns the string representation of the Convention.
func (c Convention) String() string { return string(c) }

// Render renders words in convention c. Unknown conventions render as the
// plain concatenation of the words.
func Render(c Convention, words []string) string {
	fn, ok := renderers[c]
	if !ok {
		return strings.Join(words, "")
	}
	return fn(words)
}

// RenderString splits s into words and renders them in convention c.
func RenderString(c Convention, s string) string {
	return Render(c, Split(s))
}

// Variants renders oldName and newName in every convention of conventions and
// pairs the results positionally. The order of the returned pairs follows
// conventions, so the output is stable for a fixed input.
func Variants(conventions []Convention, oldName, newName string) []Pair {
	oldWords, newWords := Split(oldName), Split(newName)
	pairs := make([]Pair, 0, len(conventions))
	for _, c := range conventions {
		pairs = append(pairs, Pair{
			Search:  Render(c, oldWords),
			Replace: Render(c, newWords),
		})
	}
	return pairs
}

// AuthorVariants pairs the author renderings of oldAuthor and newAuthor.
func AuthorVariants(oldAuthor, newAuthor string) []Pair {
	return Variants(AuthorConventions, oldAuthor, newAuthor)
}

func renderPascal(words []string) string {
	return joinMapped(words, "", ucfirst)
}

// toLower and toUpper build a fresh caser per call: a cases.Caser keeps state
// and must not be shared.
func toLower(s string) string { return cases.Lower(language.Und).String(s) }

func toUpper(s string) string { return cases.Upper(language.Und).String(s) }
