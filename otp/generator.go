package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateCode returns an n-digit numeric code drawn uniformly from the full
// digit range, leading zeros allowed.
func GenerateCode(n int) (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	v, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("otp: code generation failed: %w", err)
	}
	return fmt.Sprintf("%0*d", n, v), nil
}
