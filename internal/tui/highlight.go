package tui

import (
	"regexp"
	"unicode/utf8"

	"github.com/ja-he/flycreate/internal/theme"
)

// pythonToken matches, leftmost first, a string literal, a comment, a number
// or a word. Strings come first so that '#' inside a string is no comment.
var pythonToken = regexp.MustCompile(
	`(?s)('''.*?'''|""".*?"""|'(?:\\.|[^'\\\n])*'|"(?:\\.|[^"\\\n])*")` +
		`|(#[^\n]*)` +
		`|\b(\d+(?:\.\d+)?)\b` +
		`|\b([A-Za-z_]\w*)\b`,
)

var pythonKeywords = setOf(
	"False", "None", "True", "and", "as", "assert", "async", "await", "break",
	"class", "continue", "def", "del", "elif", "else", "except", "finally",
	"for", "from", "global", "if", "import", "in", "is", "lambda", "nonlocal",
	"not", "or", "pass", "raise", "return", "try", "while", "with", "yield",
)

var pythonBuiltins = setOf(
	"abs", "all", "any", "bool", "bytes", "callable", "chr", "dict", "dir",
	"enumerate", "eval", "exec", "filter", "float", "format", "getattr",
	"hasattr", "hash", "help", "hex", "id", "input", "int", "isinstance",
	"issubclass", "iter", "len", "list", "map", "max", "min", "next", "object",
	"open", "ord", "pow", "print", "range", "repr", "reversed", "round", "set",
	"setattr", "slice", "sorted", "str", "sum", "super", "tuple", "type", "zip",
	"Exception", "ValueError", "TypeError", "KeyError", "IndexError",
	"self", "__name__",
)

func setOf(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// highlight returns the token class of every rune of text; runes outside any
// token get the empty class.
func highlight(text string) []theme.TokenClass {
	classes := make([]theme.TokenClass, utf8.RuneCountInString(text))

	byteOffset, runeOffset := 0, 0
	for _, m := range pythonToken.FindAllStringSubmatchIndex(text, -1) {
		class := tokenClass(text, m)
		if class == "" {
			continue
		}
		runeOffset += utf8.RuneCountInString(text[byteOffset:m[0]])
		n := utf8.RuneCountInString(text[m[0]:m[1]])
		for i := runeOffset; i < runeOffset+n; i++ {
			classes[i] = class
		}
		byteOffset, runeOffset = m[1], runeOffset+n
	}
	return classes
}

func tokenClass(text string, m []int) theme.TokenClass {
	switch {
	case m[2] >= 0:
		return theme.TokenString
	case m[4] >= 0:
		return theme.TokenComment
	case m[6] >= 0:
		return theme.TokenNumber
	}
	word := text[m[8]:m[9]]
	switch {
	case pythonKeywords[word]:
		return theme.TokenKeyword
	case pythonBuiltins[word]:
		return theme.TokenBuiltin
	}
	return ""
}
