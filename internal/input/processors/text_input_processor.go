package processors

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/flycreate/internal/control/action"
	"github.com/ja-he/flycreate/internal/input"
)

// TextInputProcessor is a SimpleInputProcessor specifically for text input,
// i.E. the default handling of key presses in a document.
// It can have a number of defined mappings for non-runes (e.g. Enter to insert
// a newline).
// Any runes it is asked to process will be given to its callback function for
// runes, which could, e.g., insert the given rune at the caret.
type TextInputProcessor struct {
	mappings []mapping

	runeCallback func(r rune)
}

type mapping struct {
	combo  input.Combo
	action action.Action
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
func (p *TextInputProcessor) ProcessInput(key input.Key) bool {
	for _, m := range p.mappings {
		if m.combo.Matches(key) {
			m.action.Do()
			return true
		}
	}
	if key.Key == tcell.KeyRune && key.Mod&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
		p.runeCallback(key.Ch)
		return true
	}
	return false
}

// CapturesInput returns whether this processor "captures" input.
// A text processor takes all input it can make sense of.
func (p *TextInputProcessor) CapturesInput() bool {
	return true
}

// GetHelp returns the input help map for this processor.
func (p *TextInputProcessor) GetHelp() input.Help {
	result := input.Help{}
	for _, m := range p.mappings {
		result[m.combo.Identifier()] = m.action.Explain()
	}
	return result
}

// NewTextInputProcessor returns a pointer to a new TextInputProcessor.
// Mappings are given as combination strings (see input.ParseCombo).
func NewTextInputProcessor(
	mappings map[string]action.Action,
	runeCallback func(r rune),
) (*TextInputProcessor, error) {
	result := &TextInputProcessor{runeCallback: runeCallback}
	for spec, a := range mappings {
		combo, err := input.ParseCombo(spec)
		if err != nil {
			return nil, fmt.Errorf("could not convert '%s' to combo (%w)", spec, err)
		}
		result.mappings = append(result.mappings, mapping{combo: combo, action: a})
	}
	return result, nil
}
