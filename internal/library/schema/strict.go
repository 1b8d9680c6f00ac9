// Package schema turns raw library text into library records.
//
// Two paths exist: ParseStrict for installed library files, which must be
// well-formed JSON carrying every required field, and ExtractFields for
// best-effort import from loosely formatted text.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ja-he/flycreate/internal/library"
)

// ParseStrict parses a library file.
//
// The data must be a single JSON object containing all of
// library.RequiredFields. Beyond that no validation is done: 'type', 'name',
// 'creator' and 'value' may hold any JSON value, non-strings are kept as their
// compact JSON text, and the payload is checked lazily by whoever uses it.
func ParseStrict(data []byte) (library.Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return library.Record{}, fmt.Errorf("could not parse library json (%w)", err)
	}

	missing := make([]string, 0)
	for _, key := range library.RequiredFields {
		if _, ok := fields[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return library.Record{}, fmt.Errorf("%w: missing field(s) %s", library.ErrSchemaRejected, strings.Join(missing, ", "))
	}

	var rec library.Record
	var kind string
	for key, dst := range map[string]*string{
		"type":    &kind,
		"name":    &rec.Name,
		"creator": &rec.Creator,
		"value":   &rec.DeclaredKind,
	} {
		text, err := fieldText(fields[key])
		if err != nil {
			return library.Record{}, fmt.Errorf("could not read field '%s' (%w)", key, err)
		}
		*dst = text
	}
	rec.Kind = library.Kind(kind)

	code, err := library.CompactCode(fields["code"])
	if err != nil {
		return library.Record{}, fmt.Errorf("could not compact code (%w)", err)
	}
	rec.Code = code

	return rec, nil
}

// fieldText returns the value of a string field, or the compact JSON text of
// any other value.
func fieldText(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var b bytes.Buffer
	if err := json.Compact(&b, raw); err != nil {
		return "", err
	}
	return b.String(), nil
}
