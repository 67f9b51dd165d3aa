// Package security implements the one-way password hashing used by the
// signup, login and settings flows.
//
// The stored format is base64(salt || derived key): a random 16-byte salt
// followed by a 32-byte PBKDF2-SHA256 key, so a stored hash is
// self-describing and needs no separate salt column.
package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	keyLength  = 32
	iterations = 100_000
)

// HashPassword derives a storable hash from a plaintext password.
// A fresh random salt is generated per call, so hashing the same password
// twice yields different encodings.
func HashPassword(plain string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating password salt: %w", err)
	}

	key := pbkdf2.Key([]byte(plain), salt, iterations, keyLength, sha256.New)

	encoded := make([]byte, 0, saltLength+keyLength)
	encoded = append(encoded, salt...)
	encoded = append(encoded, key...)

	return base64.StdEncoding.EncodeToString(encoded), nil
}

// VerifyPassword reports whether plain matches the stored encoded hash.
//
// A malformed stored value never surfaces as an error: any decode or shape
// failure means verification failed. The derived keys are compared in
// constant time.
func VerifyPassword(plain, encodedHash string) bool {
	decoded, err := base64.StdEncoding.DecodeString(encodedHash)
	if err != nil {
		return false
	}
	if len(decoded) != saltLength+keyLength {
		return false
	}

	salt := decoded[:saltLength]
	storedKey := decoded[saltLength:]

	key := pbkdf2.Key([]byte(plain), salt, iterations, keyLength, sha256.New)

	return subtle.ConstantTimeCompare(key, storedKey) == 1
}
