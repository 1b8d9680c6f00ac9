// Package ui defines the collaborators the library engine drives: the
// workspace of open documents, user notifications and the libraries menu.
package ui

import (
	"github.com/ja-he/flycreate/internal/control/action"
	"github.com/ja-he/flycreate/internal/library"
	"github.com/ja-he/flycreate/internal/theme"
)

// Document is an open text document.
type Document interface {
	// Caret returns the caret position as an offset in runes.
	Caret() int
	// InsertAtCaret inserts the text at the caret, moving the caret behind it.
	InsertAtCaret(text string)
}

// Workspace is the set of open documents.
type Workspace interface {
	// ActiveDocument returns the document that has focus, if any.
	ActiveDocument() (Document, bool)
	// OpenTab opens a new document with the given title and content.
	OpenTab(title, content string) error
	// ApplyTheme sets the theme's colors on all open documents.
	ApplyTheme(t theme.Theme)
}

// Notifier reports to the user.
type Notifier interface {
	Info(title, msg string)
	Warn(title, msg string)
	Error(title, msg string)
}

// Menu is the libraries menu.
type Menu interface {
	// Rebuild replaces the menu's contents with the given entries.
	// An empty list means there are no libraries.
	Rebuild(entries []MenuEntry)
}

// MenuEntry is the submenu for a single library.
type MenuEntry struct {
	Library string
	Kind    library.Kind
	Items   []MenuItem
}

// MenuItem is a single selectable item in a library's submenu.
type MenuItem struct {
	Label  string
	Action action.Action
}

// Item returns the entry's item with the given label.
func (e MenuEntry) Item(label string) (MenuItem, bool) {
	for _, item := range e.Items {
		if item.Label == label {
			return item, true
		}
	}
	return MenuItem{}, false
}
