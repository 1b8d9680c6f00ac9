package theme

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Names of the built-in themes, which always exist.
const (
	BuiltinLightName = "Светлая"
	BuiltinDarkName  = "Тёмная"
)

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("bad built-in color '" + s + "'")
	}
	return c
}

func builtinLight() Theme {
	return Theme{
		Name:                 BuiltinLightName,
		Background:           hex("#ffffff"),
		Foreground:           hex("#000000"),
		Cursor:               hex("#000000"),
		SelectBackground:     hex("#2f2f2f"),
		SelectForeground:     hex("#ffffff"),
		TabBackground:        hex("#f5f5f5"),
		LineNumberBackground: hex("#f0f0f0"),
		Tags: map[TokenClass]colorful.Color{
			TokenKeyword: hex("#0000ff"),
			TokenString:  hex("#a31515"),
			TokenComment: hex("#008000"),
			TokenNumber:  hex("#098658"),
			TokenBuiltin: hex("#795e26"),
		},
	}
}

func builtinDark() Theme {
	return Theme{
		Name:                 BuiltinDarkName,
		Background:           hex("#1e1e1e"),
		Foreground:           hex("#d4d4d4"),
		Cursor:               hex("#ffffff"),
		SelectBackground:     hex("#dbeeff"),
		SelectForeground:     hex("#000000"),
		TabBackground:        hex("#2a2a2a"),
		LineNumberBackground: hex("#2b2b2b"),
		Tags: map[TokenClass]colorful.Color{
			TokenKeyword: hex("#569cd6"),
			TokenString:  hex("#ce9178"),
			TokenComment: hex("#6a9955"),
			TokenNumber:  hex("#b5cea8"),
			TokenBuiltin: hex("#dcdcaa"),
		},
	}
}

// Builtins returns the built-in themes.
func Builtins() []Theme {
	return []Theme{builtinLight(), builtinDark()}
}
