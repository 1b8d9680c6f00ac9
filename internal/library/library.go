package library

import (
	"encoding/json"
	"fmt"
)

// ActionInsert is the only supported bind action: insert literal text.
const ActionInsert = "insert"

// UntitledTab is the title used for tab entries that carry none.
const UntitledTab = "Без названия"

// Library is a record classified by its kind.
//
// It is one of ThemeLibrary, BindLibrary, TabsLibrary or UnknownLibrary.
type Library interface {
	Base() *Record
	isLibrary()
}

// ThemeLibrary provides a single theme (flat payload) or a set of named theme
// variants.
type ThemeLibrary struct{ *Record }

// BindLibrary provides a key combination that inserts literal text.
type BindLibrary struct{ *Record }

// TabsLibrary provides tab contents that can be opened on request.
type TabsLibrary struct{ *Record }

// UnknownLibrary is a library of an unrecognized kind. It is listed but never
// activated.
type UnknownLibrary struct{ *Record }

func (l ThemeLibrary) Base() *Record   { return l.Record }
func (l BindLibrary) Base() *Record    { return l.Record }
func (l TabsLibrary) Base() *Record    { return l.Record }
func (l UnknownLibrary) Base() *Record { return l.Record }

func (ThemeLibrary) isLibrary()   {}
func (BindLibrary) isLibrary()    {}
func (TabsLibrary) isLibrary()    {}
func (UnknownLibrary) isLibrary() {}

// Classify wraps the record in the variant matching its kind.
func Classify(rec *Record) Library {
	switch rec.Kind {
	case KindTheme:
		return ThemeLibrary{rec}
	case KindBind:
		return BindLibrary{rec}
	case KindTabs:
		return TabsLibrary{rec}
	default:
		return UnknownLibrary{rec}
	}
}

// Payload decodes the theme payload as an object.
func (l ThemeLibrary) Payload() (Object, error) {
	return DecodeObject(l.Code)
}

// BindSpec is the payload of a bind library.
type BindSpec struct {
	Combo  string `json:"combo"`
	Action string `json:"action"`
	Text   string `json:"text"`
}

// Spec decodes the bind payload.
func (l BindLibrary) Spec() (BindSpec, error) {
	if !IsObject(l.Code) {
		return BindSpec{}, ErrNotAnObject
	}
	var spec BindSpec
	if err := json.Unmarshal(l.Code, &spec); err != nil {
		return BindSpec{}, fmt.Errorf("could not decode bind payload (%w)", err)
	}
	return spec, nil
}

// Tab is a single pre-packaged tab.
type Tab struct {
	Title   string
	Content string
}

// Tabs returns the tab entries of the library.
// Entries that are not objects are skipped; missing titles default to
// UntitledTab, missing content to the empty string.
func (l TabsLibrary) Tabs() []Tab {
	obj, err := DecodeObject(l.Code)
	if err != nil {
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(obj.Values["tabs"], &entries); err != nil {
		return nil
	}

	tabs := make([]Tab, 0, len(entries))
	for _, entry := range entries {
		e, err := DecodeObject(entry)
		if err != nil {
			continue
		}
		title, ok := e.String("title")
		if !ok {
			title = UntitledTab
		}
		content, _ := e.String("content")
		tabs = append(tabs, Tab{Title: title, Content: content})
	}
	return tabs
}
