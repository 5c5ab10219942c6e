package jsexp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedValue reports that a value outside the closed variant set
// (D, A, string, integer, float, bool, nil) reached the encoder. By default
// this aborts the conversion; WithOpaqueFallback downgrades it to a quoted
// stringification of the value.
var ErrUnsupportedValue = errors.New("jsexp: unsupported value")

// DefaultPrefix is the namespace prefix used when none is supplied. Decoders
// normally supply "json" or "yaml" via WithPrefix.
const DefaultPrefix = "data"

// Option configures a single Marshal call.
type Option func(*encoder)

// WithPrefix sets the namespace prefix written before every field name, as
// in prefix:field. The prefix is fixed for the whole conversion.
func WithPrefix(prefix string) Option {
	return func(e *encoder) { e.prefix = prefix }
}

// WithPretty selects multi-line output with two spaces of indentation per
// nesting level. The default is compact single-line output.
func WithPretty(on bool) Option {
	return func(e *encoder) { e.pretty = on }
}

// WithDateLayouts replaces the ordered list of date layouts tried for date
// fields. Layouts are Go time reference layouts, tried first to last.
func WithDateLayouts(layouts ...string) Option {
	return func(e *encoder) { e.layouts = layouts }
}

// WithOpaqueFallback controls what happens when a value outside the closed
// variant set reaches the encoder: stringify it in double quotes when on,
// fail with ErrUnsupportedValue when off (the default).
func WithOpaqueFallback(on bool) Option {
	return func(e *encoder) { e.opaque = on }
}

// encoder carries the per-call configuration. Indentation depth is threaded
// through the recursive calls as a parameter, never stored here, so one
// Marshal call cannot interfere with another.
type encoder struct {
	prefix  string
	pretty  bool
	layouts []string
	opaque  bool
}

// Marshal encodes a value tree as one S-expression string. The tree is read
// only; Marshal is a pure function of its inputs and is safe to call
// concurrently. No partial output is returned on error.
func Marshal(v any, opts ...Option) (string, error) {
	e := &encoder{prefix: DefaultPrefix, layouts: DefaultDateLayouts}
	for _, opt := range opts {
		opt(e)
	}
	return e.encode(v, 0)
}

// encode dispatches on the value's variant. depth is the nesting level the
// value's own parenthesized body opens at; children encode at depth+1.
func (e *encoder) encode(v any, depth int) (string, error) {
	switch v := v.(type) {
	case D:
		return e.encodeDocument(v, depth)
	case A:
		return e.encodeArray(v, "", depth)
	case string:
		return encodeString(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return encodeFloat(v), nil
	case bool:
		return encodeBool(v), nil
	case nil:
		return "nil", nil
	default:
		if e.opaque {
			return encodeOpaque(v), nil
		}
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func (e *encoder) encodeDocument(d D, depth int) (string, error) {
	frags := make([]string, 0, len(d))
	for _, ent := range d {
		frag, err := e.encodeField(ent.Key, ent.Value, depth)
		if err != nil {
			return "", err
		}
		frags = append(frags, frag)
	}
	return e.join(frags, depth), nil
}

// encodeField renders one "prefix:name value" fragment. The date and items
// special cases are checked before the default encoding; the fragment itself
// carries no parentheses, those belong to the enclosing document body.
func (e *encoder) encodeField(name string, v any, depth int) (string, error) {
	switch {
	case isDateField(name, v):
		return e.name(name) + " " + e.encodeDateValue(v.(string)), nil
	case isItemsField(name, v):
		s, err := e.encodeArray(v.(A), "item", depth+1)
		if err != nil {
			return "", err
		}
		return e.name(name) + " " + s, nil
	default:
		s, err := e.encode(v, depth+1)
		if err != nil {
			return "", err
		}
		return e.name(name) + " " + s, nil
	}
}

// encodeArray encodes a sequence. elemName is non-empty only when the
// sequence was reached through an "items" field, in which case every element
// fragment carries the literal field name "item".
func (e *encoder) encodeArray(a A, elemName string, depth int) (string, error) {
	frags := make([]string, 0, len(a))
	for _, elem := range a {
		s, err := e.encode(elem, depth+1)
		if err != nil {
			return "", err
		}
		if elemName != "" {
			s = e.name(elemName) + " " + s
		}
		frags = append(frags, s)
	}
	return e.join(frags, depth), nil
}

// encodeDateValue renders the make-date form for the first layout that
// parses the text. When no layout matches, the raw text is kept as-is in
// double quotes, deliberately unescaped.
func (e *encoder) encodeDateValue(text string) string {
	if t, ok := parseDate(text, e.layouts); ok {
		return encodeDate(t)
	}
	return `"` + text + `"`
}

func (e *encoder) name(field string) string {
	return e.prefix + ":" + field
}

// join assembles sibling fragments into one parenthesized body. Compact mode
// joins with single spaces. Pretty mode puts two or more fragments on their
// own lines, indented two spaces per nesting level, with the closing paren
// back at the parent's level; zero and one fragment stay on one line.
func (e *encoder) join(frags []string, depth int) string {
	if !e.pretty {
		return "(" + strings.Join(frags, " ") + ")"
	}
	switch len(frags) {
	case 0:
		return "()"
	case 1:
		return "(" + frags[0] + ")"
	}
	indent := strings.Repeat("  ", depth+1)
	var sb strings.Builder
	sb.WriteString("(\n")
	for _, frag := range frags {
		sb.WriteString(indent)
		sb.WriteString(frag)
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteByte(')')
	return sb.String()
}
