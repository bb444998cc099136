package plex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// AttrPrefix marks attribute keys in the map form so they cannot collide
	// with child element keys.
	AttrPrefix = "@"
	// TextKey holds element character data in the map form.
	TextKey = "#text"
)

// Format selects how a node is rendered.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// ParseFormat maps a user-supplied name onto a Format.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatXML:
		return FormatXML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", value)
	}
}

// Render encodes node in the requested format.
func Render(node *Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return ToJSON(node)
	case FormatXML:
		return node.XML()
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// ToMap converts node into nested maps keyed by prefixed attribute names and
// child tags. A tag seen once maps to a nested map; a repeated tag maps to a
// list in document order. Attribute values that are not valid UTF-8 are
// dropped.
func ToMap(node *Document) map[string]any {
	out := make(map[string]any, len(node.attrs)+len(node.children))
	for _, attr := range node.attrs {
		if !utf8.ValidString(attr.Value) {
			continue
		}
		out[AttrPrefix+attr.Name] = attr.Value
	}
	if node.text != "" && utf8.ValidString(node.text) {
		out[TextKey] = node.text
	}
	for _, child := range node.children {
		value := ToMap(child)
		switch existing := out[child.tag].(type) {
		case nil:
			out[child.tag] = value
		case map[string]any:
			out[child.tag] = []any{existing, value}
		case []any:
			out[child.tag] = append(existing, value)
		}
	}
	return out
}

// ToJSON renders node as JSON text with lexicographically sorted keys.
func ToJSON(node *Document) ([]byte, error) {
	return marshalSorted(ToMap(node))
}

// marshalSorted relies on encoding/json ordering map keys.
func marshalSorted(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
