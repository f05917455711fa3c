package jws

import (
	"errors"
	"fmt"
)

const (
	// AlgorithmHS256 is HMAC using SHA-256, the only supported algorithm.
	AlgorithmHS256 = "HS256"

	// TypeJWT is the "typ" header value of every token this package issues.
	TypeJWT = "JWT"
)

// Header is the JOSE header of a token.
type Header struct {
	Algorithm string `json:"alg"`
	Type      string `json:"typ"`
}

// NewHeader returns the header written by Encode: {"alg":"HS256","typ":"JWT"}.
func NewHeader() Header {
	return Header{Algorithm: AlgorithmHS256, Type: TypeJWT}
}

var errMissingAlgorithm = errors.New(`header has no string "alg" member`)

// ParseHeader parses a JSON header object. Members other than "alg" and
// "typ" are ignored.
func ParseHeader(data []byte) (Header, error) {
	members, err := ParseClaims(data)
	if err != nil {
		return Header{}, err
	}

	alg, ok := members.Get("alg")
	if !ok {
		return Header{}, fmt.Errorf("%w: %w", ErrMalformedPayload, errMissingAlgorithm)
	}
	algorithm, ok := alg.AsString()
	if !ok {
		return Header{}, fmt.Errorf("%w: %w", ErrMalformedPayload, errMissingAlgorithm)
	}

	header := Header{Algorithm: algorithm}
	if typ, ok := members.Get("typ"); ok {
		if header.Type, ok = typ.AsString(); !ok {
			return Header{}, fmt.Errorf(`%w: header "typ" member is not a string`, ErrMalformedPayload)
		}
	}

	return header, nil
}

// UnmarshalJSON implements json.Unmarshaler using ParseHeader.
func (h *Header) UnmarshalJSON(data []byte) error {
	parsed, err := ParseHeader(data)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
