package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const apiKeyBytes = 32

// GenerateAPIKey returns 32 random bytes, hex-encoded.
func GenerateAPIKey() (string, error) {
	b := make([]byte, apiKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate api key: %w", err)
	}
	return hex.EncodeToString(b), nil
}
