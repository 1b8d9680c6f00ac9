package library

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object is a decoded JSON object which remembers the order its keys appeared
// in.
type Object struct {
	Keys   []string
	Values map[string]json.RawMessage
}

// Has returns whether the object contains all of the given keys.
func (o Object) Has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := o.Values[k]; !ok {
			return false
		}
	}
	return true
}

// String returns the value at key if it is a JSON string.
func (o Object) String(key string) (string, bool) {
	raw, ok := o.Values[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// DecodeObject decodes raw JSON as an object, keeping key order.
// Duplicate keys keep their first position and their last value.
func DecodeObject(raw json.RawMessage) (Object, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return Object{}, fmt.Errorf("could not read payload (%w)", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return Object{}, ErrNotAnObject
	}

	obj := Object{Values: make(map[string]json.RawMessage)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Object{}, fmt.Errorf("could not read payload key (%w)", err)
		}
		key, ok := tok.(string)
		if !ok {
			return Object{}, fmt.Errorf("unexpected token %v in object", tok)
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return Object{}, fmt.Errorf("could not read value for '%s' (%w)", key, err)
		}
		if _, seen := obj.Values[key]; !seen {
			obj.Keys = append(obj.Keys, key)
		}
		obj.Values[key] = val
	}
	if _, err := dec.Token(); err != nil {
		return Object{}, fmt.Errorf("unterminated object (%w)", err)
	}

	return obj, nil
}

// IsObject returns whether raw is a JSON object.
func IsObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
