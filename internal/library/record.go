// Package library contains the data model for installable editor libraries:
// the on-disk record, its kind-specific variants and their payloads.
package library

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Kind is the declared kind of a library (the 'type' field of a library file).
// It is an open set; unrecognized kinds are stored but never activated.
type Kind string

const (
	// KindTheme libraries provide one or more color themes.
	KindTheme Kind = "theme"
	// KindBind libraries provide a key combination that inserts text.
	KindBind Kind = "bind"
	// KindTabs libraries provide pre-packaged tab contents.
	KindTabs Kind = "tabs"
)

// RequiredFields are the top-level keys every library file must carry to be
// recognized as installed.
var RequiredFields = []string{"type", "name", "creator", "value", "code"}

var (
	// ErrSchemaRejected is returned when a library lacks required fields or
	// has them in an unusable form.
	ErrSchemaRejected = errors.New("library schema rejected")
	// ErrNoFields is returned when no library fields could be recognized in
	// freeform text.
	ErrNoFields = errors.New("no library fields recognized")
	// ErrNotAnObject is returned when a payload expected to be a JSON object is
	// something else.
	ErrNotAnObject = errors.New("payload is not an object")
)

// Record is a single library as distributed in a library file.
//
// The payload (Code) is kept as compact raw JSON so that the order of object
// keys is preserved, which matters e.g. for selecting a theme variant.
type Record struct {
	Kind         Kind            `json:"type"`
	Name         string          `json:"name"`
	Creator      string          `json:"creator"`
	DeclaredKind string          `json:"value"`
	Code         json.RawMessage `json:"code"`

	// SourcePath is the file the record was loaded from, empty for records
	// that were not yet saved.
	SourcePath string `json:"-"`
}

// MarshalPretty serializes the record as indented UTF-8 JSON, as it is written
// to library files.
func (r *Record) MarshalPretty() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompactCode returns the given JSON in compact form, the representation in
// which a Record stores its payload.
func CompactCode(raw []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}
