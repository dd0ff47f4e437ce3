// Package security holds the two cryptographic leaves of the auth flow: the
// password hasher and the session token codec.
package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen    = 32
	keyLen     = 32
	iterations = 100_000
)

// HashPassword derives a salted PBKDF2-SHA256 digest from the password.
// The digest is hex(salt) followed by hex(key), 128 hex characters total,
// so the salt travels with the hash and no separate storage is needed.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
	return hex.EncodeToString(salt) + hex.EncodeToString(key), nil
}

// VerifyPassword recomputes the derivation using the salt embedded in digest
// and compares in constant time. Malformed digests verify false rather than
// erroring, so a corrupted stored hash can never crash a login path.
func VerifyPassword(password, digest string) bool {
	if len(digest) != 2*(saltLen+keyLen) {
		return false
	}
	salt, err := hex.DecodeString(digest[:2*saltLen])
	if err != nil {
		return false
	}
	stored, err := hex.DecodeString(digest[2*saltLen:])
	if err != nil {
		return false
	}
	key := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
	return hmac.Equal(key, stored)
}
