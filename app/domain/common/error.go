package common

// Error is the standardized code+message pair used across HTTP
// responses.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// IsEmpty checks if the error is empty (no error)
func (e *Error) IsEmpty() bool {
	return e == nil || e.Code == ""
}

func (e *Error) String() string {
	if e == nil {
		return ""
	}
	return e.Code + ": " + e.Message
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.String()
}

// Stable API error codes surfaced to clients. Internal causes are logged
// with uuid error codes instead of being exposed structurally.
const (
	CodeInvalidJSON        = "INVALID_JSON"
	CodeInvalidMode        = "INVALID_MODE"
	CodeMissingStudentType = "MISSING_STUDENT_TYPE"
	CodeInvalidStudentType = "INVALID_STUDENT_TYPE"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)
