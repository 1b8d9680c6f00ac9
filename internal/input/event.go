package input

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Event returns a tcell key event for a press of this combination, e.g. to
// replay it to a screen.
// Combinations whose key has no tcell equivalent yield an error.
func (c Combo) Event() (*tcell.EventKey, error) {
	mod := tcellModifiers(c.Mods)

	r := []rune(c.Key)
	if len(r) == 1 {
		ch := r[0]
		if c.Mods.HasCtrl() && ch >= 'a' && ch <= 'z' {
			return tcell.NewEventKey(tcell.KeyCtrlA+tcell.Key(ch-'a'), 0, mod), nil
		}
		if c.Mods.Has(ModShift) {
			ch = unicode.ToUpper(ch)
		}
		return tcell.NewEventKey(tcell.KeyRune, ch, mod), nil
	}

	name := normalizeKeyName(c.Key)
	if name == "space" {
		return tcell.NewEventKey(tcell.KeyRune, ' ', mod), nil
	}
	for k, kn := range tcell.KeyNames {
		if normalizeKeyName(kn) == name {
			return tcell.NewEventKey(k, 0, mod), nil
		}
	}
	return nil, fmt.Errorf("no key event for '%s'", c.Key)
}

func tcellModifiers(m Modifier) tcell.ModMask {
	var mod tcell.ModMask
	if m.Has(ModCtrl) {
		mod |= tcell.ModCtrl
	}
	if m.Has(ModAlt) {
		mod |= tcell.ModAlt
	}
	if m.Has(ModShift) {
		mod |= tcell.ModShift
	}
	if m.Has(ModMeta) {
		mod |= tcell.ModMeta
	}
	return mod
}
