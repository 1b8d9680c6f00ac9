package tui

import (
	"testing"

	"github.com/ja-he/flycreate/internal/theme"
)

func TestHighlight(t *testing.T) {
	text := "def f():\n    s = \"# no\"  # yes\n    return len(s) + 1.5"
	classes := highlight(text)

	if len(classes) != len([]rune(text)) {
		t.Fatalf("expected %d classes, got %d", len([]rune(text)), len(classes))
	}

	spans := func(class theme.TokenClass) []string {
		var result []string
		runes := []rune(text)
		start := -1
		for i := 0; i <= len(runes); i++ {
			in := i < len(runes) && classes[i] == class
			switch {
			case in && start < 0:
				start = i
			case !in && start >= 0:
				result = append(result, string(runes[start:i]))
				start = -1
			}
		}
		return result
	}

	expected := map[theme.TokenClass][]string{
		theme.TokenKeyword: {"def", "return"},
		theme.TokenString:  {`"# no"`},
		theme.TokenComment: {"# yes"},
		theme.TokenBuiltin: {"len"},
		theme.TokenNumber:  {"1.5"},
	}
	for class, words := range expected {
		got := spans(class)
		if len(got) != len(words) {
			t.Errorf("%s: expected %v, got %v", class, words, got)
			continue
		}
		for i := range words {
			if got[i] != words[i] {
				t.Errorf("%s: expected %v, got %v", class, words, got)
			}
		}
	}
}

func TestHighlightNonASCII(t *testing.T) {
	classes := highlight("привет # мир")
	if classes[0] != "" {
		t.Error("word without token class highlighted")
	}
	if classes[7] != theme.TokenComment || classes[11] != theme.TokenComment {
		t.Error("comment after non-ASCII text not highlighted by rune")
	}
}
