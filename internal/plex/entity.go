package plex

import "strconv"

// Value is a coerced attribute: an integer when the raw attribute was made
// only of ASCII digits, the raw string otherwise.
type Value struct {
	raw   string
	num   int64
	isInt bool
}

// Coerce applies the attribute coercion rule to raw.
func Coerce(raw string) Value {
	if !allDigits(raw) {
		return Value{raw: raw}
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Digit-only but wider than int64.
		return Value{raw: raw}
	}
	return Value{raw: raw, num: n, isInt: true}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsInt reports whether the value was coerced to an integer.
func (v Value) IsInt() bool { return v.isInt }

// Int returns the integer form; ok is false for string values.
func (v Value) Int() (int64, bool) { return v.num, v.isInt }

// Raw returns the attribute text as received.
func (v Value) Raw() string { return v.raw }

// Interface returns int64 or string, matching the coerced kind.
func (v Value) Interface() any {
	if v.isInt {
		return v.num
	}
	return v.raw
}

// String returns the attribute text as received, so "007" stays "007".
func (v Value) String() string { return v.raw }

// Entity is a typed view of a single document node. Its fields are exactly
// the coerced attributes of that node.
type Entity struct {
	kind   string
	node   *Document
	fields map[string]Value
	order  []string
}

// Materialize projects node's attributes onto a new entity of the given kind.
func Materialize(kind string, node *Document) *Entity {
	e := &Entity{kind: kind, node: node, fields: make(map[string]Value, len(node.attrs))}
	for _, attr := range node.attrs {
		e.fields[attr.Name] = Coerce(attr.Value)
		e.order = append(e.order, attr.Name)
	}
	return e
}

// Kind names the entity type (Movie, Episode, Section, ...).
func (e *Entity) Kind() string { return e.kind }

// Node returns the backing document node.
func (e *Entity) Node() *Document { return e.node }

// Names lists field names in document order.
func (e *Entity) Names() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Fields returns a copy of the coerced field set.
func (e *Entity) Fields() map[string]Value {
	out := make(map[string]Value, len(e.fields))
	for k, v := range e.fields {
		out[k] = v
	}
	return out
}

// Field looks up a single coerced field.
func (e *Entity) Field(name string) (Value, bool) {
	v, ok := e.fields[name]
	return v, ok
}

// String returns the field's text as received, or "" when absent. Digit-only
// values keep leading zeros; use Int for the coerced form.
func (e *Entity) String(name string) string {
	if v, ok := e.fields[name]; ok {
		return v.Raw()
	}
	return ""
}

// Int returns the field as an integer; ok is false when the field is absent
// or was not digit-only.
func (e *Entity) Int(name string) (int64, bool) {
	v, ok := e.fields[name]
	if !ok {
		return 0, false
	}
	return v.Int()
}

// JSON renders the backing node.
func (e *Entity) JSON() ([]byte, error) {
	return ToJSON(e.node)
}

// XML re-encodes the backing node unchanged.
func (e *Entity) XML() ([]byte, error) {
	return e.node.XML()
}

// Render renders the backing node in the requested format.
func (e *Entity) Render(format Format) ([]byte, error) {
	return Render(e.node, format)
}

// MarshalJSON emits the coerced field set, integers as JSON numbers.
func (e *Entity) MarshalJSON() ([]byte, error) {
	return marshalSorted(fieldsAny(e.fields))
}

func fieldsAny(fields map[string]Value) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v.Interface()
	}
	return out
}
