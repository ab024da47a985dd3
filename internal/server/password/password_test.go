package password

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_Format(t *testing.T) {
	stored, err := Hash("secret1")
	require.NoError(t, err)

	saltHex, keyHex, ok := strings.Cut(stored, ":")
	require.True(t, ok, "stored secret must contain the delimiter")

	salt, err := hex.DecodeString(saltHex)
	require.NoError(t, err)
	key, err := hex.DecodeString(keyHex)
	require.NoError(t, err)

	assert.Len(t, salt, saltLength)
	assert.Len(t, key, keyLength)
}

func TestHash_SaltIsRandom(t *testing.T) {
	a, err := Hash("secret1")
	require.NoError(t, err)
	b, err := Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "two derivations of the same plaintext must differ")
}

func TestVerify_RoundTrip(t *testing.T) {
	stored, err := Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, Verify(stored, "correct horse battery staple"))
	assert.False(t, Verify(stored, "correct horse battery stapl"))
	assert.False(t, Verify(stored, ""))
}

func TestVerify_MalformedStored(t *testing.T) {
	cases := []struct {
		name   string
		stored string
	}{
		{"empty", ""},
		{"no delimiter", "deadbeef"},
		{"bad salt hex", "zz:deadbeef"},
		{"bad key hex", "deadbeef:zz"},
		{"only delimiter", ":"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, Verify(tc.stored, "whatever"))
		})
	}
}
