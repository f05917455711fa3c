package signing

import (
	"crypto"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybergodev/jws/internal/core"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		alg     string
		wantErr bool
	}{
		{"HS256", false},
		{"HS384", true},
		{"HS512", true},
		{"RS256", true},
		{"none", true},
		{"NONE", true},
		{" none ", true},
		{"HS224", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.alg, func(t *testing.T) {
			method, err := Lookup(tt.alg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, method)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.alg, method.Alg())
			assert.Equal(t, crypto.SHA256, method.Hash())
		})
	}
}

// RFC 4231 test case 2.
func TestHS256KnownAnswer(t *testing.T) {
	mac := HS256.Sign([]byte("what do ya want for nothing?"), []byte("Jefe"))
	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		hex.EncodeToString(mac))
}

func TestHS256TagSize(t *testing.T) {
	for _, msg := range []string{"", "a", "eyJhbGciOiJIUzI1NiJ9.e30"} {
		assert.Len(t, HS256.Sign([]byte(msg), []byte("k")), 32)
	}
	assert.Len(t, HS256.Sign([]byte("msg"), nil), 32)
}

func TestHS256Deterministic(t *testing.T) {
	input := []byte("eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.e30")
	key := []byte("secret")

	assert.Equal(t, HS256.Sign(input, key), HS256.Sign(input, key))
	assert.NotEqual(t, HS256.Sign(input, key), HS256.Sign(input, []byte("secreu")))
}

func TestHS256SignDoesNotModifyKey(t *testing.T) {
	key := []byte("secret")
	HS256.Sign([]byte("data"), key)
	assert.Equal(t, []byte("secret"), key)
}

func TestHS256Verify(t *testing.T) {
	input := []byte("eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.e30")
	key := []byte("secret")
	signature := core.EncodeSegment(HS256.Sign(input, key))

	assert.Equal(t, "t-IDcSemACt8x4iTMCda8Yhe3iZaWbvV5XKSTbuAn0M", signature)
	assert.NoError(t, HS256.Verify(input, signature, key))

	tests := []struct {
		name      string
		input     []byte
		signature string
		key       []byte
	}{
		{"wrong key", input, signature, []byte("wrong")},
		{"tampered input", []byte("eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.e31"), signature, key},
		{"zero signature", input, "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", key},
		{"truncated signature", input, signature[:42], key},
		{"empty signature", input, "", key},
		{"padded signature", input, signature + "=", key},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, HS256.Verify(tt.input, tt.signature, tt.key), ErrSignatureMismatch)
		})
	}
}
