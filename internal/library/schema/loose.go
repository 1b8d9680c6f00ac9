package schema

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/ja-he/flycreate/internal/library"
)

// Defaults for fields that could not be found in imported text or were left
// empty in the creation form.
const (
	DefaultImportName = "ImportedLib"
	DefaultFormName   = "user_lib"
	DefaultCreator    = "unknown"
)

// looseFieldLabels are the labels scanned for in freeform text.
var looseFieldLabels = []string{"name", "creator", "value", "code", "type"}

var looseFieldPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(looseFieldLabels))
	for _, label := range looseFieldLabels {
		patterns[label] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(label) + `\s*:\s*\{`)
	}
	return patterns
}()

// Fields are the library fields recognized in freeform text.
// Scalar fields that were not found are empty, Code is nil if not found.
type Fields struct {
	Name    string
	Creator string
	Value   string
	Type    string
	Code    *CodeResult

	found int
}

// Empty returns whether no field at all was recognized.
func (f Fields) Empty() bool {
	return f.found == 0
}

// ExtractFields scans freeform text for 'label: {...}' blocks.
//
// Each block is extracted by brace matching (see FindBraceBlock). Scalar
// fields have one layer of surrounding quotes removed, the code block is
// parsed via ParseCode. Labels without a (terminated) block are just absent.
func ExtractFields(raw string) Fields {
	var f Fields
	for _, label := range looseFieldLabels {
		loc := looseFieldPatterns[label].FindStringIndex(raw)
		if loc == nil {
			continue
		}
		braceStart := loc[1] - 1
		start, end, ok := FindBraceBlock(raw, braceStart)
		if !ok {
			continue
		}
		inner := strings.TrimSpace(raw[start+1 : end-1])
		f.found++

		switch label {
		case "name":
			f.Name = unquote(inner)
		case "creator":
			f.Creator = unquote(inner)
		case "value":
			f.Value = unquote(inner)
		case "type":
			f.Type = unquote(inner)
		case "code":
			result := ParseCode(inner)
			f.Code = &result
		}
	}
	return f
}

// FindBraceBlock finds the balanced brace block opening at text[start].
//
// Braces inside single- or double-quoted strings are not counted and a
// backslash escapes the following character. Returns the block as the
// half-open range [start, end) and whether a block was found; a block without
// matching close brace is not found.
func FindBraceBlock(text string, start int) (int, int, bool) {
	if start < 0 || start >= len(text) || text[start] != '{' {
		return -1, -1, false
	}

	depth := 0
	inSingle, inDouble, escape := false, false, false
	for i := start; i < len(text); i++ {
		ch := text[i]
		switch {
		case escape:
			escape = false
		case ch == '\\':
			escape = true
		case inSingle:
			if ch == '\'' {
				inSingle = false
			}
		case inDouble:
			if ch == '"' {
				inDouble = false
			}
		case ch == '\'':
			inSingle = true
		case ch == '"':
			inDouble = true
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return start, i + 1, true
			}
		}
	}
	return -1, -1, false
}

func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// BuildImport builds a library record from recognized fields, filling in
// defaults for everything that is missing.
func BuildImport(f Fields) library.Record {
	kind := firstNonEmpty(f.Type, f.Value, string(library.KindTheme))

	code := json.RawMessage(`{}`)
	if f.Code != nil && !f.Code.IsBlank() {
		code = f.Code.Value
	}

	return library.Record{
		Kind:         library.Kind(kind),
		Name:         firstNonEmpty(f.Name, DefaultImportName),
		Creator:      firstNonEmpty(f.Creator, DefaultCreator),
		DeclaredKind: firstNonEmpty(f.Value, kind),
		Code:         code,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
