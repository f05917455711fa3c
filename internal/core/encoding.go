package core

import (
	"encoding/base64"
	"errors"
)

// ErrInvalidEncoding reports a segment outside the unpadded base64url alphabet.
var ErrInvalidEncoding = errors.New("invalid base64url encoding")

var segmentEncoding = base64.RawURLEncoding.Strict()

// EncodeSegment encodes b with the unpadded URL-safe base64 alphabet.
func EncodeSegment(b []byte) string {
	return segmentEncoding.EncodeToString(b)
}

// DecodeSegment decodes an unpadded base64url segment. Padding, the standard
// alphabet's '+' and '/', whitespace and impossible lengths are rejected.
func DecodeSegment(segment string) ([]byte, error) {
	if !isValidBase64URL(segment) {
		return nil, ErrInvalidEncoding
	}

	buf := make([]byte, segmentEncoding.DecodedLen(len(segment)))
	n, err := segmentEncoding.Decode(buf, []byte(segment))
	if err != nil {
		return nil, ErrInvalidEncoding
	}

	return buf[:n], nil
}

// isValidBase64URL checks the alphabet up front because the base64 decoder
// silently skips '\r' and '\n'.
func isValidBase64URL(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') ||
			c == '-' || c == '_') {
			return false
		}
	}
	return true
}
