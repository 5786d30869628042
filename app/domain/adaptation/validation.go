package adaptation

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"abled.ai/abled-api-gateway/app/utils/logger"
)

// Validation length bounds, fixed constants for the core.
const (
	MinTextLength     = 10
	MaxTextLength     = 10000
	MaxQnANotesLength = 4000
	MaxQuestionLength = 500
)

var controlCharRe = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)

// ValidateInput trims and sanitizes a text field. Inputs below minLength
// are rejected; oversized inputs are truncated rather than rejected,
// since a partial adaptation is still useful. Bounds count characters,
// not bytes, and truncation never splits a rune.
func ValidateInput(text, fieldName string, maxLength, minLength int) (string, error) {
	trimmed := strings.TrimSpace(text)
	length := utf8.RuneCountInString(trimmed)
	if length < minLength {
		return "", &ValidationError{
			Field:  fieldName,
			Reason: fmt.Sprintf("must be at least %d characters long", minLength),
		}
	}
	if length > maxLength {
		logger.GetLogger().WithFields(map[string]interface{}{
			"field":    fieldName,
			"length":   length,
			"truncate": maxLength,
		}).Warn("input truncated")
		trimmed = string([]rune(trimmed)[:maxLength])
	}
	return controlCharRe.ReplaceAllString(trimmed, ""), nil
}

// fingerprint derives the deterministic cache key for a request from the
// operation, the canonical profile and the already-normalized text
// fields. SHA-256 keeps the collision risk negligible; a collision would
// surface a wrong cached result and is the accepted residual risk.
func fingerprint(op Operation, profile Profile, fields ...string) string {
	h := sha256.New()
	h.Write([]byte(op))
	h.Write([]byte{0})
	h.Write([]byte(profile))
	for _, f := range fields {
		h.Write([]byte{0})
		h.Write([]byte(f))
	}
	return hex.EncodeToString(h.Sum(nil))
}
