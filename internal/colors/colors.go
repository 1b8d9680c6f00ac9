// Package colors parses and manipulates the colors used by themes.
package colors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for color values that are neither hexadecimal
// nor a known color name.
var ErrInvalidColor = errors.New("invalid color")

// Parse parses a color value as found in theme files.
// Accepted are HTML notation leading with '#' ('#fff', '#1e1e1e') and the
// color names known to tcell ('white', 'darkslategray').
func Parse(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		color, err := colorful.Hex(expandShortHex(s))
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: '%s' (%s)", ErrInvalidColor, s, err.Error())
		}
		return color, nil
	}

	named, ok := tcell.ColorNames[strings.ToLower(s)]
	if !ok {
		return colorful.Color{}, fmt.Errorf("%w: '%s'", ErrInvalidColor, s)
	}
	r, g, b := named.RGB()
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}, nil
}

// expandShortHex expands '#rgb' to '#rrggbb'.
func expandShortHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}

// ToTcell converts the color to a tcell RGB color.
func ToTcell(color colorful.Color) tcell.Color {
	r, g, b := color.Clamped().RGB255()

	rgb := ((uint32(r)) << 16) | (uint32(g) << 8) | (uint32(b))

	return tcell.NewHexColor(int32(rgb))
}

// Lighten moves the lightness of the color towards white by the given
// percentage.
func Lighten(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()

	scalar := float64(percentage) / 100.0

	lightnessDelta := 1.0 - ltn
	newLightness := ltn + (lightnessDelta * scalar)

	return colorful.Hsl(hue, sat, newLightness)
}

// Darken moves the lightness of the color towards black by the given
// percentage.
func Darken(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()

	scalar := float64(percentage) / 100.0

	darknessDelta := ltn
	newLightness := ltn - (darknessDelta * scalar)

	return colorful.Hsl(hue, sat, newLightness)
}

// IsDark returns whether the color is closer to black than to white.
func IsDark(color colorful.Color) bool {
	l, _, _ := color.Clamped().Lab()
	return l < 0.5
}

// Shift darkens light colors and lightens dark ones, yielding a color that is
// visibly distinct from the given one while staying in its range.
func Shift(color colorful.Color, percentage int) colorful.Color {
	if IsDark(color) {
		return Lighten(color, percentage)
	}
	return Darken(color, percentage)
}
