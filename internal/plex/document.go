package plex

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Attr is one attribute of a document node.
type Attr struct {
	Name  string
	Value string
}

// Document is one parsed XML element from a server response. It has no
// mutators; every accessor returns copies of the ordered attribute and child
// lists.
type Document struct {
	tag      string
	attrs    []Attr
	children []*Document
	text     string
}

// NewDocument assembles a node from already-parsed parts. Attributes whose
// name repeats an earlier one are dropped.
func NewDocument(tag string, attrs []Attr, children ...*Document) *Document {
	doc := &Document{tag: tag}
	seen := make(map[string]struct{}, len(attrs))
	for _, attr := range attrs {
		if _, ok := seen[attr.Name]; ok {
			continue
		}
		seen[attr.Name] = struct{}{}
		doc.attrs = append(doc.attrs, attr)
	}
	for _, child := range children {
		if child != nil {
			doc.children = append(doc.children, child)
		}
	}
	return doc
}

// ParseDocument decodes data into its root element.
func ParseDocument(data []byte) (*Document, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var stack []*Document
	var text [][]byte

	for {
		tok, err := decoder.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrap(ErrMalformedDocument, "decode", "", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			attrs := make([]Attr, 0, len(t.Attr))
			for _, a := range t.Attr {
				attrs = append(attrs, Attr{Name: qualifiedName(a.Name), Value: a.Value})
			}
			stack = append(stack, NewDocument(qualifiedName(t.Name), attrs))
			text = append(text, nil)
		case xml.CharData:
			if len(text) > 0 {
				text[len(text)-1] = append(text[len(text)-1], t...)
			}
		case xml.EndElement:
			if len(stack) == 0 || stack[len(stack)-1].tag != qualifiedName(t.Name) {
				return nil, wrap(ErrMalformedDocument, "decode", "unexpected closing tag "+qualifiedName(t.Name), nil)
			}
			node := stack[len(stack)-1]
			node.text = strings.TrimSpace(string(text[len(text)-1]))
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
			if len(stack) == 0 {
				return node, nil
			}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, node)
		}
	}

	if len(stack) > 0 {
		return nil, wrap(ErrMalformedDocument, "decode", "unclosed element "+stack[len(stack)-1].tag, nil)
	}
	return nil, wrap(ErrMalformedDocument, "decode", "no root element", nil)
}

func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

// Tag returns the element name.
func (d *Document) Tag() string { return d.tag }

// Text returns the trimmed character data directly inside the element.
func (d *Document) Text() string { return d.text }

// Attrs returns the attributes in document order.
func (d *Document) Attrs() []Attr {
	out := make([]Attr, len(d.attrs))
	copy(out, d.attrs)
	return out
}

// Attr looks up a single attribute value.
func (d *Document) Attr(name string) (string, bool) {
	for _, attr := range d.attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Children returns the direct child elements in document order.
func (d *Document) Children() []*Document {
	out := make([]*Document, len(d.children))
	copy(out, d.children)
	return out
}

// Len reports the number of direct children.
func (d *Document) Len() int { return len(d.children) }

// ChildAt returns the child at index, or false when index is out of range.
func (d *Document) ChildAt(index int) (*Document, bool) {
	if index < 0 || index >= len(d.children) {
		return nil, false
	}
	return d.children[index], true
}

// ChildrenByTag returns the direct children named tag.
func (d *Document) ChildrenByTag(tag string) []*Document {
	var out []*Document
	for _, child := range d.children {
		if child.tag == tag {
			out = append(out, child)
		}
	}
	return out
}

// Child returns the first direct child named tag.
func (d *Document) Child(tag string) (*Document, bool) {
	for _, child := range d.children {
		if child.tag == tag {
			return child, true
		}
	}
	return nil, false
}

// XML re-encodes the node and its subtree.
func (d *Document) XML() ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := d.encode(enc); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Document) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: d.tag}}
	for _, attr := range d.attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: attr.Name}, Value: attr.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if d.text != "" {
		if err := enc.EncodeToken(xml.CharData(d.text)); err != nil {
			return err
		}
	}
	for _, child := range d.children {
		if err := child.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
