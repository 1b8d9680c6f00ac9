package input_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/flycreate/internal/control/action"
	"github.com/ja-he/flycreate/internal/input"
)

func TestDispatcher(t *testing.T) {

	combo := func(s string) input.Combo {
		c, err := input.ParseCombo(s)
		if err != nil {
			t.Fatal(err)
		}
		return c
	}
	ctrlD := input.Key{Key: tcell.KeyCtrlD, Mod: tcell.ModCtrl}

	t.Run("bound combo is consumed", func(t *testing.T) {
		d := input.NewDispatcher()
		calls := 0
		d.Bind(combo("Ctrl+D"), "QuickDate", action.NewSimple(action.Explanation("date"), func() { calls++ }))
		if !d.ProcessInput(ctrlD) {
			t.Error("bound combo not applied")
		}
		if calls != 1 {
			t.Error("action called", calls, "times")
		}
		if d.ProcessInput(input.Key{Key: tcell.KeyRune, Ch: 'd'}) {
			t.Error("unbound key applied")
		}
		if d.CapturesInput() {
			t.Error("dispatcher should not capture input")
		}
	})

	t.Run("rebinding replaces", func(t *testing.T) {
		d := input.NewDispatcher()
		first, second := 0, 0
		d.Bind(combo("Ctrl+D"), "A", action.NewSimple(action.Explanation("a"), func() { first++ }))
		d.Bind(combo("control+d"), "B", action.NewSimple(action.Explanation("b"), func() { second++ }))
		if d.Len() != 1 {
			t.Error("expected one binding, have", d.Len())
		}
		d.ProcessInput(ctrlD)
		if first != 0 || second != 1 {
			t.Error("unexpected calls:", first, second)
		}
		if owner, ok := d.Owner(combo("Ctrl+D")); !ok || owner != "B" {
			t.Error("unexpected owner:", owner, ok)
		}
	})

	t.Run("unbind only by owner", func(t *testing.T) {
		d := input.NewDispatcher()
		d.Bind(combo("Alt+x"), "A", action.NewSimple(action.Explanation("a"), func() {}))
		if d.Unbind(combo("Alt+x"), "B") {
			t.Error("unbound by foreign owner")
		}
		if !d.Unbind(combo("alt+X"), "A") {
			t.Error("owner could not unbind")
		}
		if d.Unbind(combo("Alt+x"), "A") {
			t.Error("unbound twice")
		}
		if d.Len() != 0 {
			t.Error("bindings left:", d.Len())
		}
		if _, ok := d.Owner(combo("Alt+x")); ok {
			t.Error("owner reported for removed binding")
		}
	})

	t.Run("help", func(t *testing.T) {
		d := input.NewDispatcher()
		d.Bind(combo("Ctrl+Shift+K"), "K", action.NewSimple(action.Explanation("insert k"), func() {}))
		help := d.GetHelp()
		if len(help) != 1 || help["<Control-Shift-k>"] != "insert k" {
			t.Error("unexpected help:", help)
		}
	})
}
