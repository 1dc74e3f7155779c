package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by ComparePassword when the password
// does not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Parameters:
//
//	data    - string to be hashed
//	hashKey - secret key used for the HMAC operation
//
// Returns:
//
//	string - hex-encoded HMAC-SHA256 digest
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

// HashPassword derives a one-way credential hash from a plaintext password.
//
// The password is first peppered with HMAC-SHA256 under hashKey (which also
// keeps the bcrypt input at a fixed 64 bytes, below its 72-byte limit) and
// then hashed with bcrypt using a random salt.
//
// Parameters:
//
//	password - plaintext password supplied by the user
//	hashKey  - server-side pepper, may be empty
//
// Returns:
//
//	string - bcrypt hash suitable for storage
//	error  - non-nil if bcrypt fails
//
// Example usage:
//
//	hash, err := utils.HashPassword("secret1", cfg.PasswordHashKey)
func HashPassword(password, hashKey string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(HashString(password, hashKey)), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword checks a plaintext password against a hash produced by
// HashPassword. The comparison is constant time.
//
// Returns ErrPasswordMismatch on mismatch and a wrapped bcrypt error when
// the stored hash is malformed.
func ComparePassword(hash, password, hashKey string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(HashString(password, hashKey)))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("error comparing password: %w", err)
	}
	return nil
}
