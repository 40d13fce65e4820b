package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/adamhaque27/Cricket-Performance-Tracker/internal/constants"
)

// GenerateResetToken generates an opaque password-reset token from
// crypto/rand, hex encoded.
func GenerateResetToken() (string, error) {
	bytes := make([]byte, constants.ResetTokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return hex.EncodeToString(bytes), nil
}
