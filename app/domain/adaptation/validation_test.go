package adaptation

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeProfile(t *testing.T) {
	t.Parallel()

	for _, p := range Profiles() {
		got, err := NormalizeProfile(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := NormalizeProfile("  Dyslexia ")
	require.NoError(t, err)
	assert.Equal(t, ProfileDyslexie, got)

	got, err = NormalizeProfile("VISION")
	require.NoError(t, err)
	assert.Equal(t, ProfileVision, got)

	_, err = NormalizeProfile("telepathy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "studentType", validationErr.Field)
}

func TestValidateInput_MinLength(t *testing.T) {
	t.Parallel()

	_, err := ValidateInput("too short", "text", MaxTextLength, MinTextLength)
	require.Error(t, err)

	out, err := ValidateInput("exactly 10", "text", MaxTextLength, MinTextLength)
	require.NoError(t, err)
	assert.Equal(t, "exactly 10", out)

	// Trailing whitespace does not count toward the minimum.
	_, err = ValidateInput("  short  \n", "text", MaxTextLength, MinTextLength)
	require.Error(t, err)
}

func TestValidateInput_Truncation(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", MaxTextLength+1)
	out, err := ValidateInput(long, "text", MaxTextLength, MinTextLength)
	require.NoError(t, err)
	assert.Len(t, out, MaxTextLength)

	exact := strings.Repeat("b", MaxTextLength)
	out, err = ValidateInput(exact, "text", MaxTextLength, MinTextLength)
	require.NoError(t, err)
	assert.Len(t, out, MaxTextLength)
}

func TestValidateInput_CountsCharactersNotBytes(t *testing.T) {
	t.Parallel()

	// Nine accented characters span 18 bytes but still miss the minimum.
	_, err := ValidateInput(strings.Repeat("é", 9), "text", MaxTextLength, MinTextLength)
	require.Error(t, err)

	out, err := ValidateInput(strings.Repeat("é", 10), "text", MaxTextLength, MinTextLength)
	require.NoError(t, err)
	assert.Equal(t, 10, utf8.RuneCountInString(out))
}

func TestValidateInput_TruncatesOnRuneBoundary(t *testing.T) {
	t.Parallel()

	out, err := ValidateInput(strings.Repeat("日", MaxTextLength+5), "text", MaxTextLength, MinTextLength)
	require.NoError(t, err)
	assert.Equal(t, MaxTextLength, utf8.RuneCountInString(out))
	assert.True(t, utf8.ValidString(out))
	assert.True(t, strings.HasSuffix(out, "日"))
}

func TestValidateInput_StripsControlCharacters(t *testing.T) {
	t.Parallel()

	out, err := ValidateInput("hello\x00 world\x1f again", "text", MaxTextLength, MinTextLength)
	require.NoError(t, err)
	assert.Equal(t, "hello world again", out)

	// Newlines and tabs survive sanitization.
	out, err = ValidateInput("line one\nline\ttwo", "text", MaxTextLength, MinTextLength)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline\ttwo", out)
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	a := fingerprint(OperationNotes, ProfileVision, "some text")
	b := fingerprint(OperationNotes, ProfileVision, "some text")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	assert.NotEqual(t, a, fingerprint(OperationQnA, ProfileVision, "some text"))
	assert.NotEqual(t, a, fingerprint(OperationNotes, ProfileHearing, "some text"))
	assert.NotEqual(t, a, fingerprint(OperationNotes, ProfileVision, "other text"))

	// Field boundaries matter: ("ab","c") must differ from ("a","bc").
	assert.NotEqual(t,
		fingerprint(OperationQnA, ProfileVision, "ab", "c"),
		fingerprint(OperationQnA, ProfileVision, "a", "bc"),
	)
}
