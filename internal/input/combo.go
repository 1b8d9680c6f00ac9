package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Combo parse errors.
var (
	ErrEmptyCombo   = errors.New("empty key combination")
	ErrNoComboKey   = errors.New("key combination has no key")
	ErrMultipleKeys = errors.New("key combination has more than one key")
)

// Modifier is a set of modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0
	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << iota
	// ModAlt indicates the Alt key.
	ModAlt
	// ModShift indicates the Shift key.
	ModShift
	// ModMeta indicates the Win/Meta/Super key.
	ModMeta
)

// Has returns true if m contains mod.
func (m Modifier) Has(mod Modifier) bool { return m&mod != 0 }

// HasCtrl returns true if Control is part of m.
func (m Modifier) HasCtrl() bool { return m.Has(ModCtrl) }

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier { return m | mod }

// identifierName is the name a modifier has in a combo identifier.
func (m Modifier) identifierName() string {
	switch m {
	case ModCtrl:
		return "Control"
	case ModAlt:
		return "Alt"
	case ModShift:
		return "Shift"
	case ModMeta:
		return "Mod4"
	default:
		return ""
	}
}

// modifierFromToken maps a (lower-cased) combo token to a modifier.
func modifierFromToken(token string) Modifier {
	switch token {
	case "ctrl", "control":
		return ModCtrl
	case "alt":
		return ModAlt
	case "shift":
		return ModShift
	case "win", "meta", "super":
		return ModMeta
	default:
		return ModNone
	}
}

// keyNameAliases maps alternative key names to the name used for matching.
var keyNameAliases = map[string]string{
	"return":     "enter",
	"cr":         "enter",
	"escape":     "esc",
	"bs":         "backspace",
	"backspace2": "backspace",
	"del":        "delete",
	"pageup":     "pgup",
	"pagedown":   "pgdn",
	"prior":      "pgup",
	"next":       "pgdn",
	" ":          "space",
}

func normalizeKeyName(name string) string {
	name = strings.ToLower(name)
	if alias, ok := keyNameAliases[name]; ok {
		return alias
	}
	return name
}

func lower(r rune) rune { return unicode.ToLower(r) }

// Combo is a normalized key combination such as "Ctrl+Shift+K": a set of
// modifiers plus exactly one key.
//
// Combos are comparable; two combos are equal when they were written with the
// same modifiers in the same order and the same key.
type Combo struct {
	Mods Modifier
	// Key is the key token as written, single characters lower-cased.
	Key string

	identifier string
}

// ParseCombo normalizes a combination string of '+'-separated tokens.
//
// Modifier tokens (ctrl/control, alt, shift, win/meta/super) are recognized
// case-insensitively, in any order and combination; repeated modifiers count
// once. There has to be exactly one other token, the key.
func ParseCombo(s string) (Combo, error) {
	if strings.TrimSpace(s) == "" {
		return Combo{}, ErrEmptyCombo
	}

	var mods Modifier
	var names []string
	key := ""
	for _, token := range strings.Split(s, "+") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if mod := modifierFromToken(strings.ToLower(token)); mod != ModNone {
			if !mods.Has(mod) {
				mods = mods.With(mod)
				names = append(names, mod.identifierName())
			}
			continue
		}
		if key != "" {
			return Combo{}, fmt.Errorf("%w: '%s' and '%s'", ErrMultipleKeys, key, token)
		}
		key = token
	}
	if key == "" {
		return Combo{}, ErrNoComboKey
	}

	if r := []rune(key); len(r) == 1 {
		key = string(lower(r[0]))
	}

	return Combo{
		Mods:       mods,
		Key:        key,
		identifier: "<" + strings.Join(append(names, key), "-") + ">",
	}, nil
}

// Identifier returns the platform identifier of the combination, e.g.
// "<Control-Shift-k>" for "Ctrl+Shift+K".
func (c Combo) Identifier() string {
	return c.identifier
}

func (c Combo) String() string {
	return c.identifier
}

// Matches returns whether the key press triggers this combination.
func (c Combo) Matches(k Key) bool {
	for _, slot := range k.normalized() {
		if slot == c.slot() {
			return true
		}
	}
	return false
}

// comboSlot identifies what a combination is triggered by, independently of
// the order its modifiers were written in.
type comboSlot struct {
	mods Modifier
	key  string
}

func (c Combo) slot() comboSlot {
	return comboSlot{mods: c.Mods, key: normalizeKeyName(c.Key)}
}
