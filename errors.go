package jws

import (
	"errors"
	"fmt"

	"github.com/cybergodev/jws/internal/core"
	"github.com/cybergodev/jws/internal/signing"
)

// Predefined errors for token encoding and decoding.
//
// Every decode failure is a rejection. Callers making security decisions
// should treat them alike and use the specific kind for diagnostics only.
var (
	// Token errors
	ErrMalformedToken    = core.ErrMalformedToken
	ErrInvalidEncoding   = core.ErrInvalidEncoding
	ErrMalformedPayload  = errors.New("malformed payload")
	ErrSignatureMismatch = signing.ErrSignatureMismatch

	// Claims errors
	ErrUnencodableClaims = errors.New("claims cannot be encoded as JSON")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidKey    = errors.New("invalid secret key")
)

// ClaimError reports a claim whose value cannot be encoded.
// It never carries the claim value itself.
type ClaimError struct {
	Name    string // The claim that failed
	Message string // Human-readable reason
	Err     error  // Underlying error, if any
}

func (e *ClaimError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: claim %q: %s: %v", ErrUnencodableClaims, e.Name, e.Message, e.Err)
	}
	return fmt.Sprintf("%v: claim %q: %s", ErrUnencodableClaims, e.Name, e.Message)
}

// Is makes every ClaimError match ErrUnencodableClaims.
func (e *ClaimError) Is(target error) bool {
	return target == ErrUnencodableClaims
}

func (e *ClaimError) Unwrap() error {
	return e.Err
}

// IsRejected reports whether err is one of the token rejection kinds
// returned by Decode and Verify.
func IsRejected(err error) bool {
	return errors.Is(err, ErrMalformedToken) ||
		errors.Is(err, ErrInvalidEncoding) ||
		errors.Is(err, ErrMalformedPayload) ||
		errors.Is(err, ErrSignatureMismatch)
}

// reason names the error kind for log output.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrSignatureMismatch):
		return "signature_mismatch"
	case errors.Is(err, ErrMalformedToken):
		return "malformed_token"
	case errors.Is(err, ErrMalformedPayload):
		return "malformed_payload"
	case errors.Is(err, ErrInvalidEncoding):
		return "invalid_encoding"
	case errors.Is(err, ErrUnencodableClaims):
		return "unencodable_claims"
	case errors.Is(err, ErrInvalidKey):
		return "invalid_key"
	default:
		return "unknown"
	}
}
