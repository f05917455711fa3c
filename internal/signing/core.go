package signing

import (
	"crypto"
	"errors"
	"fmt"
	"strings"
)

// ErrSignatureMismatch is returned by Method.Verify when the recomputed
// signature differs from the presented one.
var ErrSignatureMismatch = errors.New("signature verification failed")

// Method represents a JWS signing algorithm.
//
// Verification must always use a Method chosen by the caller. A token's
// own "alg" header is never used to pick one.
type Method interface {
	Alg() string
	Sign(signingInput, key []byte) []byte
	Verify(signingInput []byte, signatureSegment string, key []byte) error
	Hash() crypto.Hash
}

var insecureAlgorithms = map[string]struct{}{
	"":      {},
	"NONE":  {},
	"NULL":  {},
	"PLAIN": {},
	"HS1":   {},
	"HS224": {},
}

func validateAlgorithmSecurity(alg string) error {
	normalized := strings.ToUpper(strings.TrimSpace(alg))
	if _, insecure := insecureAlgorithms[normalized]; insecure {
		return fmt.Errorf("algorithm %q is not secure", alg)
	}
	return nil
}

// Lookup returns the registered Method for alg.
func Lookup(alg string) (Method, error) {
	if err := validateAlgorithmSecurity(alg); err != nil {
		return nil, fmt.Errorf("algorithm security validation failed: %w", err)
	}

	switch alg {
	case HS256.Alg():
		return HS256, nil
	default:
		return nil, fmt.Errorf("unsupported signing method: %s", alg)
	}
}
