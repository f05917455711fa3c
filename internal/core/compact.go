package core

import (
	"errors"
)

// ErrMalformedToken reports a token that is not three non-empty,
// dot-separated segments.
var ErrMalformedToken = errors.New("malformed token")

const separator = '.'

// Join assembles the compact serialization header.payload.signature.
func Join(header, payload, signature string) string {
	buf := make([]byte, 0, len(header)+len(payload)+len(signature)+2)
	buf = append(buf, header...)
	buf = append(buf, separator)
	buf = append(buf, payload...)
	buf = append(buf, separator)
	buf = append(buf, signature...)
	return string(buf)
}

// SigningInput returns the bytes covered by the signature: header.payload.
func SigningInput(header, payload string) []byte {
	buf := make([]byte, 0, len(header)+len(payload)+1)
	buf = append(buf, header...)
	buf = append(buf, separator)
	buf = append(buf, payload...)
	return buf
}

// Split breaks a compact token into its three segments.
func Split(token string) (string, string, string, error) {
	first, second := -1, -1

	for i := 0; i < len(token); i++ {
		if token[i] != separator {
			continue
		}
		switch {
		case first == -1:
			first = i
		case second == -1:
			second = i
		default:
			return "", "", "", ErrMalformedToken
		}
	}

	if first == -1 || second == -1 {
		return "", "", "", ErrMalformedToken
	}

	header, payload, signature := token[:first], token[first+1:second], token[second+1:]
	if header == "" || payload == "" || signature == "" {
		return "", "", "", ErrMalformedToken
	}

	return header, payload, signature, nil
}
