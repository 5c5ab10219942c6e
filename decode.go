package jsexp

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-yaml"
)

// Format identifies the serialization a document was decoded from. Its
// string form doubles as the default namespace prefix for Marshal.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Decode parses data in the given format into the ordered value model.
func Decode(data []byte, f Format) (any, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

// DecodeDetect decodes data, picking the format from the file extension of
// path when it is recognized (.json, .yaml, .yml). Otherwise it sniffs the
// content: JSON first, then YAML, since YAML accepts nearly all JSON text.
// An empty path always sniffs.
func DecodeDetect(path string, data []byte) (any, Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		v, err := DecodeJSON(data)
		return v, FormatJSON, err
	case ".yaml", ".yml":
		v, err := DecodeYAML(data)
		return v, FormatYAML, err
	}
	if v, err := DecodeJSON(data); err == nil {
		return v, FormatJSON, nil
	}
	v, err := DecodeYAML(data)
	if err != nil {
		return nil, "", fmt.Errorf("input is neither valid JSON nor YAML: %w", err)
	}
	return v, FormatYAML, nil
}

// DecodeJSON decodes JSON text into the ordered value model: objects become
// D with field order preserved, arrays become A, numbers become int64 when
// the text has no fraction or exponent and float64 otherwise.
func DecodeJSON(data []byte) (any, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	// Exactly one top-level value; trailing content means the input was not
	// JSON after all, which matters when sniffing formats.
	if tok, err := dec.ReadToken(); err != io.EOF {
		if err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return nil, fmt.Errorf("decode json: unexpected trailing %v", tok.Kind())
	}
	return v, nil
}

func decodeJSONValue(dec *jsontext.Decoder) (any, error) {
	switch dec.PeekKind() {
	case '{':
		return decodeJSONObject(dec)
	case '[':
		return decodeJSONArray(dec)
	case '"':
		var s string
		if err := json.UnmarshalDecode(dec, &s); err != nil {
			return nil, fmt.Errorf("read string: %w", err)
		}
		return s, nil
	case '0':
		raw, err := dec.ReadValue()
		if err != nil {
			return nil, fmt.Errorf("read number: %w", err)
		}
		return parseJSONNumber(string(raw))
	case 't', 'f':
		var b bool
		if err := json.UnmarshalDecode(dec, &b); err != nil {
			return nil, fmt.Errorf("read bool: %w", err)
		}
		return b, nil
	case 'n':
		if _, err := dec.ReadToken(); err != nil {
			return nil, fmt.Errorf("read null: %w", err)
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected token kind %q", dec.PeekKind().String())
	}
}

func decodeJSONObject(dec *jsontext.Decoder) (D, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("read object open: %w", err)
	}
	doc := D{}
	for dec.PeekKind() != '}' {
		var key string
		if err := json.UnmarshalDecode(dec, &key); err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, fmt.Errorf("read object value for key %q: %w", key, err)
		}
		doc = append(doc, E{Key: key, Value: val})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("read object close: %w", err)
	}
	return doc, nil
}

func decodeJSONArray(dec *jsontext.Decoder) (A, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("read array open: %w", err)
	}
	arr := A{}
	for dec.PeekKind() != ']' {
		elem, err := decodeJSONValue(dec)
		if err != nil {
			return nil, fmt.Errorf("read array element: %w", err)
		}
		arr = append(arr, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("read array close: %w", err)
	}
	return arr, nil
}

// parseJSONNumber keeps integer text exact by preferring int64, falling back
// to float64 for fractions, exponents and out-of-range integers.
func parseJSONNumber(text string) (any, error) {
	if !strings.ContainsAny(text, ".eE") {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return n, nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("parse number %q: %w", text, err)
	}
	return f, nil
}

// DecodeYAML decodes YAML text into the ordered value model using goccy's
// ordered-map mode so mapping key order is preserved.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return fromYAML(v), nil
}

// fromYAML rewrites goccy's generic types into D and A. Non-string mapping
// keys are stringified; scalars pass through untouched.
func fromYAML(v any) any {
	switch v := v.(type) {
	case yaml.MapSlice:
		doc := make(D, 0, len(v))
		for _, item := range v {
			doc = append(doc, E{Key: fmt.Sprint(item.Key), Value: fromYAML(item.Value)})
		}
		return doc
	case []any:
		arr := make(A, 0, len(v))
		for _, elem := range v {
			arr = append(arr, fromYAML(elem))
		}
		return arr
	default:
		return v
	}
}
