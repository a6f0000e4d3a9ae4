package fusemap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies which scalar type a Value holds.
type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindString
	KindInt
	KindFloat
)

// Value is one custom attribute value. Sprite Fusion attributes are
// scalar-only: booleans, strings, integers and floats, preserved with their
// source type. Accessors return ok=false on a type mismatch instead of
// coercing.
type Value struct {
	kind Kind
	b    bool
	s    string
	i    int64
	f    float64
}

func BoolValue(v bool) Value     { return Value{kind: KindBool, b: v} }
func StringValue(v string) Value { return Value{kind: KindString, s: v} }
func IntValue(v int64) Value     { return Value{kind: KindInt, i: v} }
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }

// Kind reports the scalar type the value was decoded as.
func (v Value) Kind() Kind { return v.kind }

func (v Value) Bool() (bool, bool)       { return v.b, v.kind == KindBool }
func (v Value) Str() (string, bool)      { return v.s, v.kind == KindString }
func (v Value) Int64() (int64, bool)     { return v.i, v.kind == KindInt }
func (v Value) Float64() (float64, bool) { return v.f, v.kind == KindFloat }

// String renders the value the way it would appear in the export.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return "<none>"
}

// MarshalJSON writes the value back as its source scalar kind. Floats keep
// a fractional marker so that a re-decode yields a float again.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return strconv.AppendBool(nil, v.b), nil
	case KindString:
		return json.Marshal(v.s)
	case KindInt:
		return strconv.AppendInt(nil, v.i, 10), nil
	case KindFloat:
		b := strconv.AppendFloat(nil, v.f, 'g', -1, 64)
		if !bytes.ContainsAny(b, ".eE") {
			b = append(b, '.', '0')
		}
		return b, nil
	}
	return nil, fmt.Errorf("fusemap: cannot marshal zero attribute value")
}

// Attributes is the custom metadata attached to one tile by the editor.
// The typed getters return ok=false both when the key is missing and when
// the stored value has a different type.
type Attributes map[string]Value

// Has reports whether the key exists, regardless of its type.
func (a Attributes) Has(key string) bool {
	_, ok := a[key]
	return ok
}

func (a Attributes) GetBool(key string) (bool, bool) {
	return a[key].Bool()
}

func (a Attributes) GetString(key string) (string, bool) {
	return a[key].Str()
}

func (a Attributes) GetInt(key string) (int64, bool) {
	return a[key].Int64()
}

func (a Attributes) GetFloat(key string) (float64, bool) {
	return a[key].Float64()
}
