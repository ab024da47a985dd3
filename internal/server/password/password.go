// Package password derives storable secrets from plaintext passwords and
// verifies supplied plaintexts against them. The stored form is
// "hex(salt):hex(key)" where the key is produced by scrypt, so a leaked
// table does not yield passwords without a memory-hard brute force.
package password

import (
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/avoronov/usersvc/internal/common"
	"golang.org/x/crypto/scrypt"
)

const (
	saltLength = 32
	keyLength  = 64

	// scrypt cost parameters.
	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

// MinLength is the minimum accepted plaintext length. Callers validate
// before deriving; Hash itself does not re-check.
const MinLength = 6

// Hash derives a storable secret from the plaintext using a fresh random
// salt. The plaintext is never retained or logged.
func Hash(plaintext string) (string, error) {
	salt := common.GenerateRandByteArray(saltLength)

	key, err := scrypt.Key([]byte(plaintext), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// Verify reports whether the supplied plaintext matches the stored secret.
// Any malformed stored value is treated as a non-match rather than an error,
// and the derived keys are compared in constant time.
func Verify(stored, supplied string) bool {
	saltHex, keyHex, ok := strings.Cut(stored, ":")
	if !ok {
		return false
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}

	key, err := scrypt.Key([]byte(supplied), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(expected, key) == 1
}
