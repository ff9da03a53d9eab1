package errors

import "errors"

// Codes shared by the domain services and the HTTP error table.
const (
	CodeInvalidInput          = "invalid_input"
	CodeBadRequest            = "bad_request"
	CodeTranscriptsDisabled   = "transcripts_disabled"
	CodeTranscriptNotFound    = "transcript_not_found"
	CodeTranscriptUnavailable = "transcript_unavailable"
	CodeTranscriptError       = "transcript_error"
	CodeSafetyBlocked         = "safety_blocked"
	CodeSummarizationFailed   = "summarization_failed"
)

// AppError encodes domain specific error details.
// Message is safe to show to callers, Err is the internal cause.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap produces a new AppError instance.
func Wrap(code, message string, err error) error {
	if err == nil {
		return &AppError{Code: code, Message: message}
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// IsCode helps handler differentiate failures.
func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}

// CodeOf returns the code of the outermost AppError in the chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// MessageOf returns the curated message without the wrapped cause.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}
