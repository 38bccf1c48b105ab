package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies what a Value holds.
type Kind uint8

const (
	KindNull   Kind = iota
	KindString      // JSON string
	KindNumber      // JSON number, source text kept verbatim
	KindInt         // normalized integer
	KindBool        // JSON boolean
	KindRaw         // nested array or object, kept as compact JSON
)

// Value is a single table cell. The zero Value is null.
type Value struct {
	kind Kind
	text string
	i    int64
	b    bool
}

// Null returns the null value.
func Null() Value { return Value{} }

// String returns a text value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Number returns a numeric value carrying its source text, e.g. "12" or "12.50".
func Number(text string) Value { return Value{kind: KindNumber, text: text} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Raw returns a value holding compact JSON for a nested array or object.
func Raw(compactJSON string) Value { return Value{kind: KindRaw, text: compactJSON} }

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int64 returns the integer held by v and whether v is a KindInt.
func (v Value) Int64() (int64, bool) { return v.i, v.kind == KindInt }

// String renders v for display. Null renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindString, KindNumber, KindRaw:
		return v.text
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Float returns the numeric reading of v. Strings may carry surrounding
// space; anything else that does not read as a number, including a decimal
// comma such as "1,5", reports false. NaN and infinities are returned as-is.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindNumber:
		return parseFloat(v.text)
	case KindString:
		return parseFloat(strings.TrimSpace(v.text))
	default:
		return 0, false
	}
}

// IsNumeric reports whether v is a number or an integer.
func (v Value) IsNumeric() bool {
	return v.kind == KindNumber || v.kind == KindInt
}

// Truthy reports whether v counts as a present, non-empty value: null, the
// empty string, numeric zero, NaN, false and empty containers are not.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindString:
		return v.text != ""
	case KindNumber:
		f, ok := parseFloat(v.text)
		return ok && f != 0 && !math.IsNaN(f)
	case KindInt:
		return v.i != 0
	case KindBool:
		return v.b
	case KindRaw:
		return v.text != "[]" && v.text != "{}"
	default:
		return false
	}
}

// MarshalJSON encodes v as the JSON value it was read from.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.text)
	case KindNumber, KindRaw:
		return []byte(v.text), nil
	case KindInt:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case KindBool:
		return []byte(strconv.FormatBool(v.b)), nil
	default:
		return []byte("null"), nil
	}
}

// MarshalYAML encodes v as a YAML scalar, or a nested node for raw values.
func (v Value) MarshalYAML() (interface{}, error) {
	switch v.kind {
	case KindString:
		return v.text, nil
	case KindNumber:
		tag := "!!int"
		if strings.ContainsAny(v.text, ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.text}, nil
	case KindInt:
		return v.i, nil
	case KindBool:
		return v.b, nil
	case KindRaw:
		var node yaml.Node
		if err := yaml.Unmarshal([]byte(v.text), &node); err != nil {
			return nil, err
		}
		if len(node.Content) == 1 {
			node.Content[0].Style = yaml.FlowStyle
			return node.Content[0], nil
		}
		return &node, nil
	default:
		return nil, nil
	}
}

// decodeValue converts one raw JSON value into a Value.
func decodeValue(raw json.RawMessage) (Value, error) {
	if len(raw) == 0 {
		return Null(), nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var x interface{}
	if err := dec.Decode(&x); err != nil {
		return Null(), err
	}
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return Null(), err
		}
		return Raw(buf.String()), nil
	}
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}
