package security

import (
	"crypto/subtle"
	"runtime"
	"strings"
)

// SecureCompare performs constant-time comparison of two byte slices.
// Running time depends only on the lengths of the inputs, never on where
// the first differing byte is.
func SecureCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ZeroBytes overwrites a byte slice that held key-derived material.
func ZeroBytes(data []byte) {
	if len(data) == 0 {
		return
	}

	clear(data)
	runtime.KeepAlive(data)
}

// IsWeakKey reports keys that are empty, all one repeated byte, a short
// repeated pattern, a straight ascending/descending run or a well-known
// password-like string.
func IsWeakKey(key []byte) bool {
	if len(key) == 0 {
		return true
	}

	if allSame(key) {
		return true
	}

	if len(key) >= 8 && isSequence(key[:8]) {
		return true
	}

	if hasRepeatedPattern(key) {
		return true
	}

	keyStr := strings.ToLower(string(key))
	for _, pattern := range weakPatterns {
		if strings.Contains(keyStr, pattern) {
			return true
		}
	}

	return false
}

var weakPatterns = [...]string{
	"12345678", "87654321", "abcdefgh", "qwerty", "asdfgh", "zxcvbn",
	"password", "letmein", "welcome", "changeme", "default", "secret",
	"admin", "guest", "test",
}

func allSame(key []byte) bool {
	for _, b := range key[1:] {
		if b != key[0] {
			return false
		}
	}
	return true
}

func isSequence(key []byte) bool {
	ascending, descending := true, true
	for i := 1; i < len(key); i++ {
		if key[i] != key[i-1]+1 {
			ascending = false
		}
		if key[i] != key[i-1]-1 {
			descending = false
		}
	}
	return ascending || descending
}

// hasRepeatedPattern detects keys made of a 2-4 byte unit repeated at
// least three times, e.g. "abcabcabc".
func hasRepeatedPattern(key []byte) bool {
	for unit := 2; unit <= 4; unit++ {
		if len(key) < unit*3 {
			continue
		}
		repeated := true
		for i := unit; i < len(key); i++ {
			if key[i] != key[i%unit] {
				repeated = false
				break
			}
		}
		if repeated {
			return true
		}
	}
	return false
}
