package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/flycreate/internal/colors"
)

// DrawStyling is style information used for rendering text.
// It should represent foreground and background color as well as modifiers
// such as italicization.
// A DrawStyling can be converted to any styling needed by a renderer, e.g., a
// tcell.Style for a tcell-based renderer via AsTcell.
type DrawStyling interface {
	AsTcell() tcell.Style

	Foreground() colorful.Color
	Background() colorful.Color

	DefaultDimmed() DrawStyling
	Italicized() DrawStyling
	Bolded() DrawStyling

	ToString() string
}

// FallbackStyling is a DrawStyling that holds non-renderer-specific colors.
type FallbackStyling struct {
	fg colorful.Color
	bg colorful.Color

	bold, italic, underlined bool
}

// AsTcell returns this styling as a tcell.Style.
func (s *FallbackStyling) AsTcell() tcell.Style {
	fg := colors.ToTcell(s.fg)
	bg := colors.ToTcell(s.bg)

	style := tcell.StyleDefault.Foreground(fg).Background(bg)

	style = style.Bold(s.bold).Italic(s.italic).Underline(s.underlined)

	return style
}

// Foreground returns the foreground color.
func (s *FallbackStyling) Foreground() colorful.Color { return s.fg }

// Background returns the background color.
func (s *FallbackStyling) Background() colorful.Color { return s.bg }

// DefaultDimmed returns a copy of this styling with the foreground moved
// towards the background.
func (s *FallbackStyling) DefaultDimmed() DrawStyling {
	result := s.clone()
	result.fg = s.fg.BlendLab(s.bg, 0.5).Clamped()
	return result
}

// Italicized returns a copy of this styling which is guaranteed to be
// italicized.
func (s *FallbackStyling) Italicized() DrawStyling {
	result := s.clone()
	result.italic = true
	return result
}

// Bolded returns a copy of this styling which is guaranteed to be bolded.
func (s *FallbackStyling) Bolded() DrawStyling {
	result := s.clone()
	result.bold = true
	return result
}

// ToString returns a string representation of this styling, e.g., for logging
// purposes.
func (s *FallbackStyling) ToString() string {
	return fmt.Sprintf(
		"[fg:'%s' bg:'%s' (b:%t i:%t u:%t)]",
		s.fg.Hex(),
		s.bg.Hex(),
		s.bold,
		s.italic,
		s.underlined,
	)
}

func (s *FallbackStyling) clone() *FallbackStyling {
	newS := *s
	return &newS
}

// StyleFromColors constructs a style by the given colors.
func StyleFromColors(fg, bg colorful.Color) *FallbackStyling {
	return &FallbackStyling{
		fg: fg,
		bg: bg,
	}
}
