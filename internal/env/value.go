// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which arm of [Value] is populated.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindBool
	KindInt
	KindFloat
	KindList
)

var kindNames = map[Kind]string{
	KindNull:   "null",
	KindString: "string",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindList:   "list",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a dynamically typed configuration value: one of null, string,
// bool, int, float or a list of scalars.
//
// The zero Value is null.
type Value struct {
	kind  Kind
	str   string
	b     bool
	n     int
	f     float64
	items []Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(n int) Value { return Value{kind: KindInt, n: n} }

// Float returns a float value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// List returns a list value holding a copy of items.
func List(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, items: cp}
}

// Kind reports which arm of v is populated.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsList reports whether v is a list.
func (v Value) IsList() bool { return v.kind == KindList }

// Len returns the number of list items, or 0 for scalars.
func (v Value) Len() int { return len(v.items) }

// Index returns the i-th list item. It panics if v is not a list or i is out
// of range, like slice indexing.
func (v Value) Index(i int) Value { return v.items[i] }

// Items returns a copy of the list items, or nil for scalars.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	cp := make([]Value, len(v.items))
	copy(cp, v.items)
	return cp
}

// Str returns the string payload and whether v is a string.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// BoolValue returns the boolean payload and whether v is a bool.
func (v Value) BoolValue() (bool, bool) { return v.b, v.kind == KindBool }

// IntValue returns the integer payload and whether v is an int.
func (v Value) IntValue() (int, bool) { return v.n, v.kind == KindInt }

// FloatValue returns the float payload and whether v is a float.
func (v Value) FloatValue() (float64, bool) { return v.f, v.kind == KindFloat }

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	if v.kind == KindList {
		return List(v.items...)
	}
	return v
}

// Any returns v as plain Go data: nil, string, bool, int, float64 or []any.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return v.b
	case KindInt:
		return v.n
	case KindFloat:
		return v.f
	case KindList:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Any()
		}
		return out
	default:
		return nil
	}
}

// String formats v for logs and string accessors. Null renders as the empty
// string.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.Itoa(v.n)
	case KindFloat:
		return formatFloat(v.f)
	case KindList:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return ""
	}
}

// Equal reports whether a and b hold the same value. Ints and floats are
// compared numerically so that 4 and 4.0 are equal, which keeps a float
// written as an integer literal by another writer from looking like a change.
func Equal(a, b Value) bool {
	if isNumber(a) && isNumber(b) {
		return a.number() == b.number()
	}
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindString:
		return a.str == b.str
	case KindBool:
		return a.b == b.b
	case KindList:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// identical is Equal without the int/float leniency at the top level.
func identical(a, b Value) bool {
	return a.kind == b.kind && Equal(a, b)
}

func isNumber(v Value) bool { return v.kind == KindInt || v.kind == KindFloat }

func (v Value) number() float64 {
	if v.kind == KindInt {
		return float64(v.n)
	}
	return v.f
}

// FromAny converts a raw Go value into a [Value]. It accepts nil, Value,
// strings, booleans, every integer and float width, json.Number and slices of
// those scalars. Nested lists and any other type are reported as not ok.
func FromAny(raw any) (Value, bool) {
	switch x := raw.(type) {
	case nil:
		return Null(), true
	case Value:
		return x.Clone(), true
	case string:
		return String(x), true
	case bool:
		return Bool(x), true
	case int:
		return Int(x), true
	case int8:
		return Int(int(x)), true
	case int16:
		return Int(int(x)), true
	case int32:
		return Int(int(x)), true
	case int64:
		return Int(int(x)), true
	case uint:
		return Int(int(x)), true
	case uint8:
		return Int(int(x)), true
	case uint16:
		return Int(int(x)), true
	case uint32:
		return Int(int(x)), true
	case uint64:
		if x > math.MaxInt64 {
			return Value{}, false
		}
		return Int(int(x)), true
	case float32:
		return Float(float64(x)), true
	case float64:
		return Float(x), true
	case json.Number:
		return fromNumber(x)
	case []Value:
		return listFrom(len(x), func(i int) any { return x[i] })
	case []any:
		return listFrom(len(x), func(i int) any { return x[i] })
	case []string:
		return listFrom(len(x), func(i int) any { return x[i] })
	case []bool:
		return listFrom(len(x), func(i int) any { return x[i] })
	case []int:
		return listFrom(len(x), func(i int) any { return x[i] })
	case []float64:
		return listFrom(len(x), func(i int) any { return x[i] })
	default:
		return Value{}, false
	}
}

func listFrom(n int, at func(int) any) (Value, bool) {
	items := make([]Value, n)
	for i := range n {
		item, ok := FromAny(at(i))
		if !ok || item.kind == KindList {
			return Value{}, false
		}
		items[i] = item
	}
	return Value{kind: KindList, items: items}, true
}

// fromNumber keeps the int/float distinction of the literal: anything with a
// fraction or exponent is a float.
func fromNumber(num json.Number) (Value, bool) {
	lit := num.String()
	if !strings.ContainsAny(lit, ".eE") {
		if n, err := strconv.Atoi(lit); err == nil {
			return Int(n), true
		}
	}
	f, err := num.Float64()
	if err != nil {
		return Value{}, false
	}
	return Float(f), true
}

// MarshalJSON implements [json.Marshaler]. Floats always carry a decimal
// point so they are read back as floats.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.str)
	case KindBool:
		return json.Marshal(v.b)
	case KindInt:
		return []byte(strconv.Itoa(v.n)), nil
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return nil, fmt.Errorf("unsupported float value %v", v.f)
		}
		return []byte(formatFloat(v.f)), nil
	case KindList:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown value kind %s", v.kind)
}

// UnmarshalJSON implements [json.Unmarshaler]. Integer literals decode to
// ints, literals with a fraction or exponent to floats.
func (v *Value) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	val, ok := FromAny(raw)
	if !ok {
		return fmt.Errorf("unsupported configuration value %s", string(b))
	}
	*v = val
	return nil
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
