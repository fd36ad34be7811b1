package common

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// recoveryCodeSpan covers the 6-digit range 100000–999999.
const (
	recoveryCodeMin  = 100000
	recoveryCodeSpan = 900000
)

// GenerateRecoveryCode returns a uniformly random 6-digit numeric code.
// It returns an error only if the system random source fails.
func GenerateRecoveryCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(recoveryCodeSpan))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+recoveryCodeMin), nil
}
