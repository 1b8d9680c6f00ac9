package ui_test

import (
	"testing"

	"github.com/ja-he/flycreate/internal/ui"
)

func TestBuffer(t *testing.T) {
	b := ui.NewBuffer("scratch", "привет world")
	if b.Caret() != 12 {
		t.Fatal("caret not at end:", b.Caret())
	}

	b.SetCaret(7)
	b.InsertAtCaret("милый ")
	if b.Text() != "привет милый world" {
		t.Error("unexpected text:", b.Text())
	}
	if b.Caret() != 13 {
		t.Error("caret not moved behind insertion:", b.Caret())
	}

	b.Backspace()
	b.InsertRune('!')
	if b.Text() != "привет милый!world" {
		t.Error("unexpected text:", b.Text())
	}

	b.SetCaret(-3)
	b.Backspace()
	if b.Caret() != 0 || b.Text() != "привет милый!world" {
		t.Error("backspace at start changed buffer")
	}
	b.SetCaret(100)
	if b.Caret() != len([]rune(b.Text())) {
		t.Error("caret not clamped to end:", b.Caret())
	}
}
