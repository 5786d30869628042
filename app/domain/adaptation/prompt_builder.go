package adaptation

import (
	"fmt"
)

// PromptBuilder constructs the two prompt kinds sent upstream. Both embed
// the profile guideline verbatim and close with a strict-JSON output
// contract. The contract is advisory only; the parser treats model output
// as untrusted regardless.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// NotesPrompt builds the content-adaptation prompt. The profile must
// already be canonical.
func (b *PromptBuilder) NotesPrompt(text string, profile Profile) (string, error) {
	if _, ok := adaptationGuidelines[profile]; !ok {
		return "", &ValidationError{Field: "studentType", Reason: fmt.Sprintf("unknown profile %q", profile)}
	}
	return fmt.Sprintf(
		"You are an educational assistant for special needs students. "+
			"Adapt the following notes for the specific student type.\n\n"+
			"Student type: %s\n"+
			"Guidelines: %s\n\n"+
			"Task: Rewrite and present the material so it is maximally accessible for the given student type. "+
			"Use clear structure and include any practical tips for studying.\n\n"+
			"Original notes:\n%s\n\n"+
			"Output STRICT JSON with keys exactly: "+
			`{"content": string, "tips": string, "studentType": string}. `+
			"Do not include any text outside of JSON. No markdown, no code fences.",
		profile, profile.Guideline(), text), nil
}

// QnAPrompt builds the question-answering prompt over previously stored
// notes.
func (b *PromptBuilder) QnAPrompt(notes string, profile Profile, question string) (string, error) {
	if _, ok := adaptationGuidelines[profile]; !ok {
		return "", &ValidationError{Field: "studentType", Reason: fmt.Sprintf("unknown profile %q", profile)}
	}
	return fmt.Sprintf(
		"You are an educational assistant for special needs students. "+
			"Use the provided notes to answer the question, tailoring the style to the student type.\n\n"+
			"Student type: %s\n"+
			"Guidelines: %s\n\n"+
			"Notes:\n%s\n\n"+
			"Question: %s\n\n"+
			"Answer based only on the notes. Be concise, clear, and helpful, following the adaptation guidelines. "+
			"Output STRICT JSON with keys exactly: "+
			`{"answer": string, "steps": string, "tips": string, "studentType": string}. `+
			"Do not include any text outside of JSON. No markdown, no code fences.",
		profile, profile.Guideline(), notes, question), nil
}
