package styling

import (
	"github.com/ja-he/flycreate/internal/theme"
)

// Stylesheet represents all styles used for rendering a document.
type Stylesheet struct {
	Normal      DrawStyling
	Cursor      DrawStyling
	Tab         DrawStyling
	TabActive   DrawStyling
	LineNumbers DrawStyling

	Tokens map[theme.TokenClass]DrawStyling
}

// NewStylesheetFromTheme constructs a new stylesheet from a theme.
func NewStylesheetFromTheme(t theme.Theme) *Stylesheet {
	stylesheet := Stylesheet{Tokens: make(map[theme.TokenClass]DrawStyling)}

	stylesheet.Normal = StyleFromColors(t.Foreground, t.Background)
	stylesheet.Cursor = StyleFromColors(t.Background, t.Cursor)
	stylesheet.Tab = StyleFromColors(t.Foreground, t.TabBackground).DefaultDimmed()
	stylesheet.TabActive = StyleFromColors(t.Foreground, t.Background).Bolded()
	stylesheet.LineNumbers = StyleFromColors(t.Foreground, t.LineNumberBackground).DefaultDimmed()

	for _, class := range theme.TokenClasses {
		style := DrawStyling(StyleFromColors(t.Tag(class), t.Background))
		if class == theme.TokenComment {
			style = style.Italicized()
		}
		stylesheet.Tokens[class] = style
	}

	return &stylesheet
}

// Token returns the styling for the token class, falling back to normal text.
func (s *Stylesheet) Token(class theme.TokenClass) DrawStyling {
	if style, ok := s.Tokens[class]; ok {
		return style
	}
	return s.Normal
}
