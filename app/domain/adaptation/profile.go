package adaptation

import (
	"strings"
)

// Profile is the accessibility category driving adaptation style.
type Profile string

const (
	ProfileVision   Profile = "vision"
	ProfileHearing  Profile = "hearing"
	ProfileSpeech   Profile = "speech"
	ProfileDyslexie Profile = "dyslexie"
)

// adaptationGuidelines maps each canonical profile to the style directive
// embedded verbatim in prompts. Loaded once, process-wide, never mutated.
var adaptationGuidelines = map[Profile]string{
	ProfileVision: "Write with screen-reader friendly structure. Use clear headings and bullet points. " +
		"Describe any visuals textually. Keep paragraphs short and clear. Avoid complex tables.",
	ProfileHearing: "Provide rich textual explanations. Avoid referring to audio cues. " +
		"Include clear step-by-step instructions and caption-like clarity.",
	ProfileSpeech: "Use simple, short sentences that are easy to read aloud. " +
		"Avoid tongue-twisters. Present steps sequentially and clearly.",
	ProfileDyslexie: "Use short sentences, simple vocabulary, and bullet points. " +
		"Prefer high-level summaries first, then key points. Avoid complex formatting.",
}

// NormalizeProfile lower-cases and trims the raw value and resolves the
// common "dyslexia" alias. Unknown values fail with a validation error so
// they never reach prompt construction.
func NormalizeProfile(raw string) (Profile, error) {
	st := strings.ToLower(strings.TrimSpace(raw))
	if st == "dyslexia" {
		st = string(ProfileDyslexie)
	}
	profile := Profile(st)
	if _, ok := adaptationGuidelines[profile]; !ok {
		return "", &ValidationError{
			Field:  "studentType",
			Reason: "must be one of: vision, hearing, speech, dyslexie",
		}
	}
	return profile, nil
}

// Guideline returns the adaptation directive for a canonical profile.
func (p Profile) Guideline() string {
	return adaptationGuidelines[p]
}

// Profiles lists the canonical profiles in a stable order.
func Profiles() []Profile {
	return []Profile{ProfileVision, ProfileHearing, ProfileSpeech, ProfileDyslexie}
}
