package adaptation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesPrompt(t *testing.T) {
	t.Parallel()
	b := NewPromptBuilder()

	prompt, err := b.NotesPrompt("The water cycle has three stages.", ProfileVision)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Student type: vision")
	assert.Contains(t, prompt, ProfileVision.Guideline())
	assert.Contains(t, prompt, "The water cycle has three stages.")
	assert.Contains(t, prompt, `{"content": string, "tips": string, "studentType": string}`)

	_, err = b.NotesPrompt("text", Profile("unknown"))
	require.Error(t, err)
}

func TestQnAPrompt(t *testing.T) {
	t.Parallel()
	b := NewPromptBuilder()

	prompt, err := b.QnAPrompt("Notes about photosynthesis.", ProfileDyslexie, "What do plants need?")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Student type: dyslexie")
	assert.Contains(t, prompt, ProfileDyslexie.Guideline())
	assert.Contains(t, prompt, "Question: What do plants need?")
	assert.Contains(t, prompt, `{"answer": string, "steps": string, "tips": string, "studentType": string}`)

	_, err = b.QnAPrompt("notes", Profile("bad"), "q")
	require.Error(t, err)
}
