package idgen

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

// GenerateSecureID returns an opaque public identifier of the form
// "<prefix>_<random>", where the random part is length characters of
// URL-safe base64 drawn from crypto/rand.
func GenerateSecureID(prefix string, length int) (string, error) {
	// base64 expands 3 bytes into 4 characters; over-provision slightly
	// so truncation never runs short.
	raw := make([]byte, (length*3/4)+2)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	encoded := strings.TrimRight(base64.URLEncoding.EncodeToString(raw), "=")
	if len(encoded) > length {
		encoded = encoded[:length]
	}
	return fmt.Sprintf("%s_%s", prefix, encoded), nil
}
