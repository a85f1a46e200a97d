package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GeneratePaymentRef returns an opaque reference tying one invoice to one
// purchase or per-signature fee. 24 random bytes, URL-safe.
func GeneratePaymentRef() (string, error) {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
