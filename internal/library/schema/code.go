package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/flycreate/internal/library"
)

// CodeOutcome describes how a code block was interpreted.
type CodeOutcome int

const (
	_ CodeOutcome = iota
	// CodeJSON means the block parsed as a JSON object.
	CodeJSON
	// CodeLiteral means the block failed as JSON but parsed as a literal
	// structure (single-quoted strings etc.).
	CodeLiteral
	// CodeRaw means structured parsing was not possible; the raw text is kept.
	CodeRaw
)

func (o CodeOutcome) String() string {
	switch o {
	case CodeJSON:
		return "json"
	case CodeLiteral:
		return "literal"
	case CodeRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// CodeResult is the result of parsing an extracted code block.
//
// Value always holds valid compact JSON: the structured value for CodeJSON and
// CodeLiteral, the raw text as a JSON string for CodeRaw.
type CodeResult struct {
	Outcome CodeOutcome
	Value   json.RawMessage
	Raw     string
}

// Structured returns whether the block was parsed into a structure.
func (r CodeResult) Structured() bool {
	return r.Outcome == CodeJSON || r.Outcome == CodeLiteral
}

// IsBlank returns whether the value is empty or zero-like (empty object, list
// or string, zero, false, null).
func (r CodeResult) IsBlank() bool {
	switch string(r.Value) {
	case "", "{}", "[]", `""`, "0", "false", "null":
		return true
	}
	return false
}

// ParseCode interprets the inner text of a code block (without the enclosing
// braces).
//
// If the text looks like an object body (it starts with a quote or contains a
// colon) it is re-wrapped in braces and parsed as JSON; failing that, and if
// it contains a colon, as a literal structure. Anything else is kept raw.
func ParseCode(text string) CodeResult {
	raw := CodeResult{Outcome: CodeRaw, Value: jsonString(text), Raw: text}

	looksLikeBody := strings.HasPrefix(strings.TrimSpace(text), `"`) || strings.Contains(text, ":")
	if !looksLikeBody {
		return raw
	}

	wrapped := "{" + text + "}"
	if value, err := library.CompactCode([]byte(wrapped)); err == nil {
		return CodeResult{Outcome: CodeJSON, Value: value, Raw: text}
	}

	if !strings.Contains(text, ":") {
		return raw
	}
	value, err := parseLiteral(wrapped, true)
	if err != nil {
		return raw
	}
	return CodeResult{Outcome: CodeLiteral, Value: value, Raw: text}
}

// ParseFormCode parses a user-authored code field: as JSON, or failing that as
// a literal structure. Unlike ParseCode there is no raw fallback.
func ParseFormCode(text string) (json.RawMessage, error) {
	text = strings.TrimSpace(text)
	if value, err := library.CompactCode([]byte(text)); err == nil {
		return value, nil
	}
	value, err := parseLiteral(text, false)
	if err != nil {
		return nil, fmt.Errorf("could not parse code as JSON or literal (%w)", err)
	}
	return value, nil
}

// parseLiteral parses Python-/YAML-style literal syntax (e.g.
// "{'a': [1, 2], 'b': True}") and converts it to JSON, keeping mapping order.
// Bare words are not accepted as strings at the top level.
func parseLiteral(text string, requireMapping bool) (json.RawMessage, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("not a single literal")
	}
	root := doc.Content[0]
	switch {
	case root.Kind == yaml.MappingNode || root.Kind == yaml.SequenceNode:
		if root.Style&yaml.FlowStyle == 0 {
			return nil, fmt.Errorf("not a literal collection")
		}
	case root.Kind == yaml.ScalarNode:
		if root.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle) == 0 && root.Tag == "!!str" {
			return nil, fmt.Errorf("bare word '%s' is not a literal", root.Value)
		}
	default:
		return nil, fmt.Errorf("unsupported literal")
	}
	if requireMapping && root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("not a mapping literal")
	}

	var buf bytes.Buffer
	if err := writeNodeJSON(&buf, root); err != nil {
		return nil, err
	}
	return library.CompactCode(buf.Bytes())
}

func writeNodeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case yaml.AliasNode:
		return writeNodeJSON(buf, n.Alias)

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.Write(jsonString(n.Content[i].Value))
			buf.WriteByte(':')
			if err := writeNodeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, child := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNodeJSON(buf, child); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			buf.WriteString("null")
			return nil
		case "!!bool", "!!int", "!!float":
			var v interface{}
			if err := n.Decode(&v); err == nil {
				if b, err := json.Marshal(v); err == nil {
					buf.Write(b)
					return nil
				}
			}
		}
		if n.Value == "None" && n.Style == 0 {
			buf.WriteString("null")
			return nil
		}
		buf.Write(jsonString(n.Value))
		return nil

	default:
		return fmt.Errorf("unsupported literal node kind %d", n.Kind)
	}
}

func jsonString(s string) json.RawMessage {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n"))
}
