package adaptation

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Operation selects which prompt kind a request runs and which primary
// field its result must carry.
type Operation string

const (
	OperationNotes Operation = "notes"
	OperationQnA   Operation = "qna"
)

// PrimaryField returns the result field that must always be populated for
// the operation, even on parse degradation.
func (op Operation) PrimaryField() string {
	if op == OperationQnA {
		return "answer"
	}
	return "content"
}

// Extracted is the semi-structured object recovered from raw model
// output. Absent keys stay zero-valued; the service layer fills defaults.
type Extracted struct {
	Content     string `json:"content"`
	Answer      string `json:"answer"`
	Steps       string `json:"steps"`
	Tips        string `json:"tips"`
	StudentType string `json:"studentType"`
}

var codeFenceRe = regexp.MustCompile("(?im)^```(json)?\\s*|\\s*```$")

// ExtractStructured recovers a usable object from raw model text. The
// strict-JSON instruction in the prompt is best effort only, so this
// walks a degradation ladder and never fails:
//
//  1. strip leading/trailing code fences
//  2. strict parse of the cleaned text
//  3. parse the substring between the first "{" and the last "}"
//  4. wrap the whole raw text into the operation's primary field
func ExtractStructured(raw string, op Operation) Extracted {
	fallback := Extracted{}
	if op == OperationQnA {
		fallback.Answer = raw
	} else {
		fallback.Content = raw
	}
	if strings.TrimSpace(raw) == "" {
		return fallback
	}

	cleaned := codeFenceRe.ReplaceAllString(strings.TrimSpace(raw), "")

	var out Extracted
	if err := json.Unmarshal([]byte(cleaned), &out); err == nil {
		return out
	}

	// The model often wraps an otherwise-valid object in prose.
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end > start {
		out = Extracted{}
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &out); err == nil {
			return out
		}
	}

	return fallback
}
