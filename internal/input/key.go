package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key press as received from the terminal.
type Key struct {
	Mod tcell.ModMask
	Key tcell.Key
	Ch  rune
}

// KeyFromTcellEvent formats a tcell.EventKey to a Key as this package expects
// it. Any Key for a tcell.EventKey should be converted by this function.
func KeyFromTcellEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune(), Mod: e.Modifiers()}
	}
	return Key{Key: e.Key(), Mod: e.Modifiers()}
}

// ToDebugString returns a string representation of the key for logging.
func (k Key) ToDebugString() string {
	return fmt.Sprintf(
		"(%s (%d),'%s'(%d),mod:%d)",
		tcell.KeyNames[k.Key],
		int(k.Key),
		string(k.Ch),
		int(k.Ch),
		int(k.Mod),
	)
}

// normalized returns the combo slots this key press triggers, in the form
// produced by ParseCombo, preferred first. Most presses have exactly one slot.
func (k Key) normalized() []comboSlot {
	mods := modifiersFromTcell(k.Mod)

	switch {
	case k.Key == tcell.KeyRune:
		if k.Ch != ' ' && k.Ch != lower(k.Ch) {
			mods = mods.With(ModShift)
		}
		return []comboSlot{{mods: mods, key: normalizeKeyName(string(lower(k.Ch)))}}

	case k.Key >= tcell.KeyCtrlA && k.Key <= tcell.KeyCtrlZ:
		letter := comboSlot{mods: mods.With(ModCtrl), key: string(rune('a' + int(k.Key-tcell.KeyCtrlA)))}
		name, typeable := typeableControlKeys[k.Key]
		switch {
		case !typeable:
			return []comboSlot{letter}
		case mods.HasCtrl():
			// e.g. Ctrl+Enter arrives as the code of Ctrl+M
			return []comboSlot{{mods: mods, key: name}, letter}
		default:
			return []comboSlot{{mods: mods, key: name}}
		}
	}

	name, ok := tcell.KeyNames[k.Key]
	if !ok {
		return nil
	}
	return []comboSlot{{mods: mods, key: normalizeKeyName(name)}}
}

// typeableControlKeys are the control codes that are also typed directly.
var typeableControlKeys = map[tcell.Key]string{
	tcell.KeyTab:       "tab",
	tcell.KeyEnter:     "enter",
	tcell.KeyBackspace: "backspace",
}

func modifiersFromTcell(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(ModMeta)
	}
	return mods
}
