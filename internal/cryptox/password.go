// Package cryptox provides password hashing for user credentials.
//
// Passwords are stored only as bcrypt hashes. bcrypt generates its own random
// salt and embeds it in the output, so a single TEXT column holds the whole
// credential, and comparison is constant-time.
package cryptox

import "golang.org/x/crypto/bcrypt"

// defaultCost is the bcrypt work factor for new hashes.
const defaultCost = 10

// HashPassword returns the bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), defaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
