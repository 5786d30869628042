package adaptation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractStructured_StrictJSON(t *testing.T) {
	t.Parallel()
	raw := `{"content": "Adapted text", "tips": "Read twice", "studentType": "vision"}`
	out := ExtractStructured(raw, OperationNotes)
	assert.Equal(t, "Adapted text", out.Content)
	assert.Equal(t, "Read twice", out.Tips)
	assert.Equal(t, "vision", out.StudentType)
}

func TestExtractStructured_CodeFences(t *testing.T) {
	t.Parallel()
	raw := "```json\n{\"content\": \"Fenced\", \"tips\": \"\", \"studentType\": \"hearing\"}\n```"
	out := ExtractStructured(raw, OperationNotes)
	assert.Equal(t, "Fenced", out.Content)
	assert.Equal(t, "hearing", out.StudentType)
}

func TestExtractStructured_ObjectWrappedInProse(t *testing.T) {
	t.Parallel()
	raw := `Sure! Here is the result: {"answer": "42", "steps": "count", "tips": "", "studentType": "speech"} Hope this helps.`
	out := ExtractStructured(raw, OperationQnA)
	assert.Equal(t, "42", out.Answer)
	assert.Equal(t, "count", out.Steps)
}

func TestExtractStructured_UnparseableFallsBackToPrimaryField(t *testing.T) {
	t.Parallel()
	raw := "Just plain prose, no JSON at all."

	notes := ExtractStructured(raw, OperationNotes)
	assert.Equal(t, raw, notes.Content)
	assert.Empty(t, notes.Answer)

	qna := ExtractStructured(raw, OperationQnA)
	assert.Equal(t, raw, qna.Answer)
	assert.Empty(t, qna.Content)
}

func TestExtractStructured_BrokenBracesFallBack(t *testing.T) {
	t.Parallel()
	raw := `prefix { not json at all } suffix`
	out := ExtractStructured(raw, OperationNotes)
	assert.Equal(t, raw, out.Content)
}

func TestExtractStructured_EmptyInput(t *testing.T) {
	t.Parallel()
	out := ExtractStructured("", OperationNotes)
	assert.Empty(t, out.Content)
	out = ExtractStructured("   ", OperationQnA)
	assert.Equal(t, "   ", out.Answer)
}

func TestOperationPrimaryField(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "content", OperationNotes.PrimaryField())
	assert.Equal(t, "answer", OperationQnA.PrimaryField())
}
