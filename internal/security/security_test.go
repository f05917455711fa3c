package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWeakKeyCommonPatterns(t *testing.T) {
	weakKeys := [][]byte{
		nil,
		[]byte("password123456789012345678901234"),
		[]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		[]byte("12345678901234567890123456789012"),
		[]byte("qwertyuiopasdfghjklzxcvbnm123456"),
		[]byte("abcabcabcabcabc"),
		[]byte{0, 0, 0, 0},
		[]byte("secret"),
	}

	for i, key := range weakKeys {
		assert.True(t, IsWeakKey(key), "case %d should be weak", i)
	}
}

func TestIsWeakKeyStrongKeys(t *testing.T) {
	strongKeys := [][]byte{
		[]byte("Kx9#mP2$vL8@nQ5!wR7&tY3^uI6*oE4%aS1+dF0-gH9~jK2#bN5$cM8@xZ7&vB4!"),
		[]byte("aB3$fG7*kL9#pQ2&vX5!zC8@mN4%rT6^wY1+eH0-iJ3~oU7$bD9#gK2&sF5*nM8@"),
		{0x8f, 0x12, 0xa0, 0x33, 0x7e, 0xc1, 0x05, 0xde},
	}

	for i, key := range strongKeys {
		assert.False(t, IsWeakKey(key), "case %d should not be weak", i)
	}
}

func TestSecureCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []byte
		want bool
	}{
		{"equal", []byte("signature"), []byte("signature"), true},
		{"both empty", []byte{}, []byte{}, true},
		{"first byte differs", []byte("xignature"), []byte("signature"), false},
		{"last byte differs", []byte("signaturx"), []byte("signature"), false},
		{"length differs", []byte("sig"), []byte("signature"), false},
		{"one empty", nil, []byte("a"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SecureCompare(tt.a, tt.b))
		})
	}
}

func TestZeroBytes(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	ZeroBytes(data)
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, data)

	ZeroBytes(nil)
}
