package signing

import (
	"crypto"
	"crypto/hmac"
	_ "crypto/sha256"

	"github.com/cybergodev/jws/internal/core"
	"github.com/cybergodev/jws/internal/security"
)

type hmacSigningMethod struct {
	name     string
	hashFunc crypto.Hash
}

// HS256 is HMAC using SHA-256. Its tags are 32 bytes long.
var HS256 Method = &hmacSigningMethod{name: "HS256", hashFunc: crypto.SHA256}

func (h *hmacSigningMethod) Alg() string {
	return h.name
}

func (h *hmacSigningMethod) Hash() crypto.Hash {
	return h.hashFunc
}

// Sign computes the MAC of signingInput under key. The key slice is only
// read and is not retained.
func (h *hmacSigningMethod) Sign(signingInput, key []byte) []byte {
	mac := hmac.New(h.hashFunc.New, key)
	mac.Write(signingInput)
	return mac.Sum(nil)
}

// Verify recomputes the signature segment for signingInput and compares it
// with signatureSegment in constant time.
func (h *hmacSigningMethod) Verify(signingInput []byte, signatureSegment string, key []byte) error {
	expected := h.Sign(signingInput, key)
	defer security.ZeroBytes(expected)

	expectedSegment := []byte(core.EncodeSegment(expected))
	defer security.ZeroBytes(expectedSegment)

	if !security.SecureCompare([]byte(signatureSegment), expectedSegment) {
		return ErrSignatureMismatch
	}

	return nil
}
