// Package theme holds the color themes known to the editor and tracks which
// one is active.
package theme

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/flycreate/internal/colors"
	"github.com/ja-he/flycreate/internal/library"
)

var (
	// ErrThemeNotFound is returned when a theme is requested by a name that is
	// not registered.
	ErrThemeNotFound = errors.New("theme not found")
	// ErrInvalidTheme is returned for theme payloads that cannot be turned into
	// a theme.
	ErrInvalidTheme = errors.New("invalid theme")
)

// TokenClass is a class of source tokens that themes color individually.
type TokenClass string

// The token classes themes can color.
const (
	TokenKeyword TokenClass = "keyword"
	TokenString  TokenClass = "string"
	TokenComment TokenClass = "comment"
	TokenNumber  TokenClass = "number"
	TokenBuiltin TokenClass = "builtin"
)

// TokenClasses lists all token classes in display order.
var TokenClasses = []TokenClass{TokenKeyword, TokenString, TokenComment, TokenNumber, TokenBuiltin}

// Attribute keys of a theme payload.
const (
	KeyBackground           = "background"
	KeyForeground           = "foreground"
	KeyCursor               = "cursor"
	KeySelectBackground     = "selectbackground"
	KeySelectForeground     = "selectforeground"
	KeyTabBackground        = "tab_bg"
	KeyLineNumberBackground = "linenumber_bg"
	KeyTags                 = "tag"
)

// FlatKeys are the keys whose presence marks a theme payload as a single flat
// theme, as opposed to a map of named variants.
var FlatKeys = []string{KeyBackground, KeyForeground, KeyCursor}

// Theme is a named set of colors for the editor surfaces.
type Theme struct {
	Name string

	Background           colorful.Color
	Foreground           colorful.Color
	Cursor               colorful.Color
	SelectBackground     colorful.Color
	SelectForeground     colorful.Color
	TabBackground        colorful.Color
	LineNumberBackground colorful.Color

	Tags map[TokenClass]colorful.Color
}

// Tag returns the color for the token class, which is the foreground color
// unless the theme specifies one.
func (t *Theme) Tag(class TokenClass) colorful.Color {
	if c, ok := t.Tags[class]; ok {
		return c
	}
	return t.Foreground
}

// Parse builds a theme from a theme payload object.
//
// Missing base colors are taken from the light built-in theme. Missing
// derived colors follow the base colors: the selection foreground is the
// foreground, the tab background is the background, and the line number
// background is a shade off the background.
func Parse(name string, raw []byte) (Theme, error) {
	obj, err := library.DecodeObject(raw)
	if err != nil {
		return Theme{}, fmt.Errorf("%w: '%s' (%s)", ErrInvalidTheme, name, err.Error())
	}

	fallback := builtinLight()
	t := Theme{Name: name, Tags: map[TokenClass]colorful.Color{}}

	color := func(key string, dst *colorful.Color, def func() colorful.Color) error {
		s, ok := obj.String(key)
		if !ok {
			if _, present := obj.Values[key]; present {
				return fmt.Errorf("%w: '%s' has non-string '%s'", ErrInvalidTheme, name, key)
			}
			*dst = def()
			return nil
		}
		c, err := colors.Parse(s)
		if err != nil {
			return fmt.Errorf("%w: '%s' has bad '%s' (%s)", ErrInvalidTheme, name, key, err.Error())
		}
		*dst = c
		return nil
	}

	steps := []struct {
		key string
		dst *colorful.Color
		def func() colorful.Color
	}{
		{KeyBackground, &t.Background, func() colorful.Color { return fallback.Background }},
		{KeyForeground, &t.Foreground, func() colorful.Color { return fallback.Foreground }},
		{KeyCursor, &t.Cursor, func() colorful.Color { return t.Foreground }},
		{KeySelectBackground, &t.SelectBackground, func() colorful.Color { return colors.Shift(t.Background, 40) }},
		{KeySelectForeground, &t.SelectForeground, func() colorful.Color { return t.Foreground }},
		{KeyTabBackground, &t.TabBackground, func() colorful.Color { return t.Background }},
		{KeyLineNumberBackground, &t.LineNumberBackground, func() colorful.Color { return colors.Shift(t.Background, 6) }},
	}
	for _, step := range steps {
		if err := color(step.key, step.dst, step.def); err != nil {
			return Theme{}, err
		}
	}

	if rawTags, ok := obj.Values[KeyTags]; ok && string(rawTags) != "null" {
		tags, err := library.DecodeObject(rawTags)
		if err != nil {
			return Theme{}, fmt.Errorf("%w: '%s' has bad '%s' (%s)", ErrInvalidTheme, name, KeyTags, err.Error())
		}
		for _, class := range TokenClasses {
			rawTag, ok := tags.Values[string(class)]
			if !ok {
				continue
			}
			tag, err := library.DecodeObject(rawTag)
			if err != nil {
				return Theme{}, fmt.Errorf("%w: '%s' has bad tag '%s' (%s)", ErrInvalidTheme, name, class, err.Error())
			}
			fg, ok := tag.String(KeyForeground)
			if !ok {
				continue
			}
			c, err := colors.Parse(fg)
			if err != nil {
				return Theme{}, fmt.Errorf("%w: '%s' has bad tag '%s' (%s)", ErrInvalidTheme, name, class, err.Error())
			}
			t.Tags[class] = c
		}
	}

	return t, nil
}

// IsFlat returns whether the payload object is a single theme rather than a
// map of named variants.
func IsFlat(obj library.Object) bool {
	return obj.Has(FlatKeys...)
}
