// Package cryptox holds the password-hashing primitives of the service.
package cryptox

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor applied to new password hashes.
const DefaultCost = 8

// HashPassword hashes a plaintext password with bcrypt. A random salt is
// generated per call and embedded in the returned hash string, so verification
// needs no separately stored salt.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// A mismatch is a plain false, never an error.
func CheckPassword(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
