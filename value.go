package jws

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"
)

// Kind is the JSON type of a Value.
type Kind uint8

// Value kinds.
const (
	KindNull   Kind = iota // JSON null
	KindBool               // true or false
	KindNumber             // number, kept as its JSON text
	KindString             // UTF-8 string
	KindArray              // ordered list of values
	KindObject             // claims set
	// KindInvalid marks a value that could not be converted to JSON.
	// Encoding a claims set that contains one fails with ErrUnencodableClaims.
	KindInvalid
)

var kindNames = [...]string{
	KindNull:    "null",
	KindBool:    "bool",
	KindNumber:  "number",
	KindString:  "string",
	KindArray:   "array",
	KindObject:  "object",
	KindInvalid: "invalid",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a claim value: any JSON null, boolean, number, string, array or
// object. The zero Value is JSON null.
//
// Numbers keep their JSON text, so a decoded number is re-encoded exactly
// as it was received.
type Value struct {
	kind Kind
	b    bool
	s    string // string contents or number text
	arr  []Value
	obj  *ClaimsSet
	err  error
}

// NullValue returns a JSON null.
func NullValue() Value {
	return Value{kind: KindNull}
}

// BoolValue returns a JSON boolean.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// IntValue returns a JSON number for an integer.
func IntValue(i int64) Value {
	return Value{kind: KindNumber, s: strconv.FormatInt(i, 10)}
}

// UintValue returns a JSON number for an unsigned integer.
func UintValue(u uint64) Value {
	return Value{kind: KindNumber, s: strconv.FormatUint(u, 10)}
}

// FloatValue returns a JSON number for f. NaN and infinities have no JSON
// form and produce an invalid Value.
func FloatValue(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return invalidValue(fmt.Errorf("unsupported number %v", f))
	}

	b, err := json.Marshal(f)
	if err != nil {
		return invalidValue(err)
	}
	return Value{kind: KindNumber, s: string(b)}
}

// NumberValue returns a JSON number from its literal text.
func NumberValue(n json.Number) Value {
	if !isNumberLiteral(string(n)) {
		return invalidValue(fmt.Errorf("invalid number literal %q", string(n)))
	}
	return Value{kind: KindNumber, s: string(n)}
}

// StringValue returns a JSON string. A string that is not valid UTF-8
// produces an invalid Value.
func StringValue(s string) Value {
	if !utf8.ValidString(s) {
		return invalidValue(errInvalidUTF8)
	}
	return Value{kind: KindString, s: s}
}

// ArrayValue returns a JSON array holding a copy of items.
func ArrayValue(items ...Value) Value {
	arr := make([]Value, len(items))
	copy(arr, items)
	return Value{kind: KindArray, arr: arr}
}

// ObjectValue returns a JSON object holding a copy of set.
func ObjectValue(set *ClaimsSet) Value {
	return Value{kind: KindObject, obj: set.Clone()}
}

// AnyValue converts a Go value to a Value. Values encoding/json cannot
// represent produce an invalid Value rather than an error; the failure is
// reported when the claims are encoded.
func AnyValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return NullValue()
	case Value:
		return t
	case *ClaimsSet:
		if t == nil {
			return NullValue()
		}
		return ObjectValue(t)
	case bool:
		return BoolValue(t)
	case string:
		return StringValue(t)
	case int:
		return IntValue(int64(t))
	case int8:
		return IntValue(int64(t))
	case int16:
		return IntValue(int64(t))
	case int32:
		return IntValue(int64(t))
	case int64:
		return IntValue(t)
	case uint:
		return UintValue(uint64(t))
	case uint8:
		return UintValue(uint64(t))
	case uint16:
		return UintValue(uint64(t))
	case uint32:
		return UintValue(uint64(t))
	case uint64:
		return UintValue(t)
	case float32:
		return FloatValue(float64(t))
	case float64:
		return FloatValue(t)
	case json.Number:
		return NumberValue(t)
	case []string:
		arr := make([]Value, len(t))
		for i, s := range t {
			arr[i] = StringValue(s)
		}
		return Value{kind: KindArray, arr: arr}
	case []any:
		arr := make([]Value, len(t))
		for i, item := range t {
			arr[i] = AnyValue(item)
		}
		return Value{kind: KindArray, arr: arr}
	}

	// Maps, structs and everything else go through encoding/json, which
	// sorts map keys and keeps struct field order.
	data, err := json.Marshal(v)
	if err != nil {
		return invalidValue(err)
	}
	if !validUTF8(reflect.ValueOf(v)) {
		return invalidValue(errInvalidUTF8)
	}
	parsed, err := parseDocument(data)
	if err != nil {
		return invalidValue(err)
	}
	return parsed
}

// validUTF8 reports whether every string reachable from v that
// encoding/json would write is valid UTF-8. It runs after json.Marshal has
// succeeded, so v holds no cycles.
func validUTF8(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return utf8.ValidString(v.String())
	case reflect.Interface, reflect.Pointer:
		return v.IsNil() || validUTF8(v.Elem())
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return true
		}
		for i := 0; i < v.Len(); i++ {
			if !validUTF8(v.Index(i)) {
				return false
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if !validUTF8(iter.Key()) || !validUTF8(iter.Value()) {
				return false
			}
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() && !field.Anonymous {
				continue
			}
			if !validUTF8(v.Field(i)) {
				return false
			}
		}
	}
	return true
}

func invalidValue(err error) Value {
	return Value{kind: KindInvalid, err: err}
}

// Kind returns the JSON type of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Err returns the conversion error of an invalid Value, or nil.
func (v Value) Err() error {
	return v.err
}

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsNumber returns the JSON text of a number.
func (v Value) AsNumber() (json.Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return json.Number(v.s), true
}

// AsFloat64 returns the number held by v as a float64.
func (v Value) AsFloat64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// AsInt64 returns the number as an integer. Numbers with a fractional part
// or outside the int64 range report false.
func (v Value) AsInt64() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	if i, err := strconv.ParseInt(v.s, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(v.s, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// AsArray returns a copy of the array elements.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	arr := make([]Value, len(v.arr))
	copy(arr, v.arr)
	return arr, true
}

// AsObject returns a copy of the object members.
func (v Value) AsObject() (*ClaimsSet, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj.Clone(), true
}

// Interface returns v as the Go types encoding/json produces with UseNumber:
// nil, bool, json.Number, string, []any and map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return json.Number(v.s)
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, v.obj.Len())
		v.obj.Range(func(name string, item Value) bool {
			out[name] = item.Interface()
			return true
		})
		return out
	default:
		return nil
	}
}

// Equal reports whether v and other hold the same JSON value. Numbers are
// equal when their text matches or when they parse to the same float64.
// Object member order is ignored. Invalid values are never equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.s == other.s
	case KindNumber:
		if v.s == other.s {
			return true
		}
		a, okA := v.AsFloat64()
		b, okB := other.AsFloat64()
		return okA && okB && a == b
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.Equal(other.obj)
	default:
		return false
	}
}

// String returns the JSON text of v, or a placeholder for invalid values.
func (v Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return "<invalid>"
	}
	return string(b)
}

func isNumberLiteral(s string) bool {
	if s == "" {
		return false
	}
	var n json.Number
	if err := json.Unmarshal([]byte(s), &n); err != nil {
		return false
	}
	return string(n) == s
}
