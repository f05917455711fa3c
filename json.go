package jws

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// maxNestingDepth bounds arrays and objects nested inside a payload.
const maxNestingDepth = 10000

var (
	errNotObject    = errors.New("top-level JSON value is not an object")
	errTrailingData = errors.New("unexpected data after top-level value")
	errTooDeep      = errors.New("exceeded max nesting depth")
	errInvalidUTF8  = errors.New("string is not valid UTF-8")
)

// MarshalJSON encodes the claims as a JSON object in insertion order.
// A nil set encodes as {}.
func (c *ClaimsSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the contents of c with the members of a JSON
// object.
func (c *ClaimsSet) UnmarshalJSON(data []byte) error {
	parsed, err := ParseClaims(data)
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}

// ParseClaims parses a JSON object into a new claims set, keeping member
// order. Duplicate names keep the last value.
func ParseClaims(data []byte) (*ClaimsSet, error) {
	v, err := parseDocument(data)
	if err != nil {
		return nil, payloadError(err)
	}
	if v.kind != KindObject {
		return nil, payloadError(errNotObject)
	}
	return v.obj, nil
}

// MarshalJSON encodes v. Invalid values return their conversion error.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON parses any single JSON value into v.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := parseDocument(data)
	if err != nil {
		return payloadError(err)
	}
	*v = parsed
	return nil
}

func (c *ClaimsSet) appendJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	var err error
	i := 0
	c.Range(func(name string, value Value) bool {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		if nameErr := writeString(buf, name); nameErr != nil {
			err = &ClaimError{Name: name, Message: "claim name is not valid UTF-8", Err: nameErr}
			return false
		}
		buf.WriteByte(':')
		if valueErr := value.appendJSON(buf); valueErr != nil {
			err = claimError(name, valueErr)
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

func (v Value) appendJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		buf.WriteString(v.s)
	case KindString:
		return writeString(buf, v.s)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		return v.obj.appendJSON(buf)
	default:
		if v.err != nil {
			return v.err
		}
		return fmt.Errorf("value of kind %s", v.kind)
	}
	return nil
}

// writeString writes s as a JSON string literal using encoding/json's
// escaping rules. Invalid UTF-8 is refused; encoding/json would replace it
// with U+FFFD.
func writeString(buf *bytes.Buffer, s string) error {
	if !utf8.ValidString(s) {
		return errInvalidUTF8
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// claimError attaches a claim name to an encoding failure. Failures inside
// nested objects get a dotted path.
func claimError(name string, err error) error {
	var inner *ClaimError
	if errors.As(err, &inner) {
		return &ClaimError{Name: name + "." + inner.Name, Message: inner.Message, Err: inner.Err}
	}
	return &ClaimError{Name: name, Message: "value is not representable as JSON", Err: err}
}

// payloadError wraps a parse failure without echoing payload bytes.
func payloadError(err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Errorf("%w: invalid JSON at offset %d", ErrMalformedPayload, syntaxErr.Offset)
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: unexpected end of JSON input", ErrMalformedPayload)
	}
	if errors.Is(err, errNotObject) || errors.Is(err, errTrailingData) || errors.Is(err, errTooDeep) {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return fmt.Errorf("%w: invalid JSON", ErrMalformedPayload)
}

// parseDocument parses exactly one JSON value, keeping object member order
// and number text.
func parseDocument(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec, 0)
	if err != nil {
		return Value{}, err
	}

	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return Value{}, err
		}
		return Value{}, errTrailingData
	}

	return v, nil
}

func parseValue(dec *json.Decoder, depth int) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		if depth >= maxNestingDepth {
			return Value{}, errTooDeep
		}
		switch t {
		case '{':
			return parseObject(dec, depth+1)
		case '[':
			return parseArray(dec, depth+1)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", rune(t))
	case string:
		return StringValue(t), nil
	case json.Number:
		return Value{kind: KindNumber, s: string(t)}, nil
	case bool:
		return BoolValue(t), nil
	case nil:
		return NullValue(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token type %T", tok)
	}
}

func parseObject(dec *json.Decoder, depth int) (Value, error) {
	set := NewClaimsSet()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		name, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key of type %T", tok)
		}
		value, err := parseValue(dec, depth)
		if err != nil {
			return Value{}, err
		}
		set.Set(name, value)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Value{kind: KindObject, obj: set}, nil
}

func parseArray(dec *json.Decoder, depth int) (Value, error) {
	arr := []Value{}
	for dec.More() {
		value, err := parseValue(dec, depth)
		if err != nil {
			return Value{}, err
		}
		arr = append(arr, value)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Value{kind: KindArray, arr: arr}, nil
}
