package colors

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func TestParse(t *testing.T) {
	type testcase struct {
		input    string
		expected string
	}
	for _, tc := range []testcase{
		{"#ffffff", "#ffffff"},
		{"#1E1E1E", "#1e1e1e"},
		{"#fff", "#ffffff"},
		{"#a31", "#aa3311"},
		{" #000000 ", "#000000"},
		{"white", "#ffffff"},
		{"Black", "#000000"},
	} {
		c, err := Parse(tc.input)
		if err != nil {
			t.Errorf("unexpected error for '%s': %s", tc.input, err.Error())
			continue
		}
		if c.Hex() != tc.expected {
			t.Errorf("'%s' parsed to '%s' instead of '%s'", tc.input, c.Hex(), tc.expected)
		}
	}

	for _, invalid := range []string{"", "#12", "#gggggg", "notacolor", "ffffff"} {
		_, err := Parse(invalid)
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("expected invalid color error for '%s', got %v", invalid, err)
		}
	}
}

func TestToTcell(t *testing.T) {
	c, _ := colorful.Hex("#123456")
	if ToTcell(c) != tcell.NewHexColor(0x123456) {
		t.Errorf("unexpected tcell color %06x", ToTcell(c).Hex())
	}
}

func TestLighten(t *testing.T) {
	input := colorful.Color{
		R: float64(0x12) / 255.0,
		G: float64(0x34) / 255.0,
		B: float64(0x56) / 255.0,
	}
	grey := colorful.Color{
		R: float64(0x80) / 255.0,
		G: float64(0x80) / 255.0,
		B: float64(0x80) / 255.0,
	}

	t.Run("0% -> no change", func(t *testing.T) {
		result := Lighten(input, 0)
		if !result.AlmostEqualRgb(input) {
			t.Errorf("%s instead of %s", result.Hex(), input.Hex())
		}
	})

	t.Run("100% -> white", func(t *testing.T) {
		result := Lighten(input, 100)
		if !result.AlmostEqualRgb(colorful.Color{R: 1.0, G: 1.0, B: 1.0}) {
			t.Errorf("%s instead of white", result.Hex())
		}
	})

	t.Run("50% -> 50% lighter", func(t *testing.T) {
		expected := colorful.Color{
			R: float64(0xc0) / 255.0,
			G: float64(0xc0) / 255.0,
			B: float64(0xc0) / 255.0,
		}
		result := Lighten(grey, 50)
		if !result.AlmostEqualRgb(expected) {
			t.Errorf("%s instead of %s", result.Hex(), expected.Hex())
		}
	})

	t.Run("75% lighter <=> 50% lighter then 50% lighter again", func(t *testing.T) {
		a := Lighten(grey, 75)
		b := Lighten(Lighten(grey, 50), 50)
		if !a.AlmostEqualRgb(b) {
			t.Errorf("%s != %s (dist: %f)", a.Hex(), b.Hex(), a.DistanceRgb(b))
		}
	})
}

func TestDarken(t *testing.T) {
	white := colorful.Color{R: 1.0, G: 1.0, B: 1.0}

	if result := Darken(white, 100); !result.AlmostEqualRgb(colorful.Color{}) {
		t.Errorf("100%% darkened white is %s", result.Hex())
	}
	if result := Darken(white, 0); !result.AlmostEqualRgb(white) {
		t.Errorf("0%% darkened white is %s", result.Hex())
	}
}

func TestShift(t *testing.T) {
	dark, _ := colorful.Hex("#1e1e1e")
	light, _ := colorful.Hex("#ffffff")

	if !IsDark(dark) || IsDark(light) {
		t.Fatal("darkness misjudged")
	}
	if s := Shift(dark, 10); !(s.R > dark.R) {
		t.Errorf("shifting dark color did not lighten it: %s", s.Hex())
	}
	if s := Shift(light, 10); !(s.R < light.R) {
		t.Errorf("shifting light color did not darken it: %s", s.Hex())
	}
}
