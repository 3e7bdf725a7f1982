package env

import (
	"math"
	"strconv"
	"strings"
)

// trueStrings is the set of strings accepted as true. HTML checkboxes submit
// "on", .env files submit "1"/"0" and "true"/"false".
var trueStrings = map[string]struct{}{
	"true": {},
	"1":    {},
	"on":   {},
	"yes":  {},
}

// boolStrings are the strings a list-of-bool cell accepts as a boolean when
// they show up in the store as a bare scalar.
var boolStrings = map[string]struct{}{
	"true":  {},
	"false": {},
	"1":     {},
	"0":     {},
}

// IsTrue reports whether raw should be read as boolean true. Booleans pass
// through; strings are true when, trimmed and lowercased, they are one of
// "true", "1", "on" or "yes"; numbers are true when non-zero and lists when
// non-empty. Everything else is false.
func IsTrue(raw any) bool {
	v, ok := FromAny(raw)
	if !ok {
		return false
	}
	return isTrue(v)
}

func isTrue(v Value) bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		_, ok := trueStrings[strings.ToLower(strings.TrimSpace(v.str))]
		return ok
	case KindInt:
		return v.n != 0
	case KindFloat:
		return v.f != 0
	case KindList:
		return len(v.items) > 0
	default:
		return false
	}
}

func isBoolString(v Value) bool {
	if v.kind != KindString {
		return false
	}
	_, ok := boolStrings[strings.ToLower(strings.TrimSpace(v.str))]
	return ok
}

// toFloat converts v for a float cell. Non-finite numbers are refused since
// they cannot be persisted as JSON.
func toFloat(v Value) (Value, bool) {
	var f float64
	switch v.kind {
	case KindFloat:
		f = v.f
	case KindInt:
		f = float64(v.n)
	case KindBool:
		if v.b {
			f = 1
		}
	case KindString:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return Value{}, false
		}
		f = parsed
	default:
		return Value{}, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, false
	}
	return Float(f), true
}

// toInt is the lenient integer conversion used by ValueAsInt: floats are
// truncated, booleans map to 0/1 and unparsable strings to 0.
func toInt(v Value) (int, bool) {
	switch v.kind {
	case KindInt:
		return v.n, true
	case KindFloat:
		return int(v.f), true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindString:
		n, err := strconv.Atoi(strings.TrimSpace(v.str))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// widenList rewrites int items of a float list as floats.
func widenList(def, list Value) Value {
	if len(def.items) == 0 || def.items[0].kind != KindFloat {
		return list
	}
	out := list.Clone()
	for i, item := range out.items {
		if item.kind == KindInt {
			out.items[i] = Float(float64(item.n))
		}
	}
	return out
}

func mapBools(list Value) Value {
	out := make([]Value, len(list.items))
	for i, item := range list.items {
		out[i] = Bool(isTrue(item))
	}
	return Value{kind: KindList, items: out}
}
