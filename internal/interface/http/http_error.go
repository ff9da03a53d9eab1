package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/yt-summarizer/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// ErrorRule maps one error code to a response. An empty Message means the
// AppError's curated message is returned.
type ErrorRule struct {
	Status  int
	Message string
}

// ErrorTable translates domain errors into status codes and bodies. It is
// built once at startup and only read afterwards.
type ErrorTable struct {
	codes      map[string]ErrorRule
	statusText map[int]string
}

// NewErrorTable returns the table used by the router.
func NewErrorTable() *ErrorTable {
	statusText := map[int]string{
		http.StatusBadRequest:          "Bad Request",
		http.StatusForbidden:           "Forbidden",
		http.StatusNotFound:            "Not Found",
		http.StatusInternalServerError: "Internal Server Error",
	}
	return &ErrorTable{
		codes: map[string]ErrorRule{
			apperrors.CodeInvalidInput:          {Status: http.StatusBadRequest},
			apperrors.CodeBadRequest:            {Status: http.StatusBadRequest, Message: statusText[http.StatusBadRequest]},
			apperrors.CodeSafetyBlocked:         {Status: http.StatusForbidden},
			apperrors.CodeTranscriptsDisabled:   {Status: http.StatusNotFound},
			apperrors.CodeTranscriptNotFound:    {Status: http.StatusNotFound},
			apperrors.CodeTranscriptUnavailable: {Status: http.StatusNotFound},
			apperrors.CodeSummarizationFailed:   {Status: http.StatusInternalServerError},
			apperrors.CodeTranscriptError:       {Status: http.StatusInternalServerError, Message: statusText[http.StatusInternalServerError]},
		},
		statusText: statusText,
	}
}

// StatusMessage returns the generic body for a status code.
func (t *ErrorTable) StatusMessage(status int) string {
	if msg, ok := t.statusText[status]; ok {
		return msg
	}
	return http.StatusText(status)
}

// Resolve maps err to the response that should be written. Unknown errors
// become a generic 500 so internal details never reach the client.
func (t *ErrorTable) Resolve(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		resolved := *httpErr
		if resolved.Message == "" {
			resolved.Message = t.StatusMessage(resolved.Status)
		}
		return &resolved
	}

	code := apperrors.CodeOf(err)
	rule, ok := t.codes[code]
	if !ok {
		return &HTTPError{
			Status:  http.StatusInternalServerError,
			Code:    "internal_error",
			Message: t.StatusMessage(http.StatusInternalServerError),
			Err:     err,
		}
	}
	message := rule.Message
	if message == "" {
		message = apperrors.MessageOf(err)
	}
	if message == "" {
		message = t.StatusMessage(rule.Status)
	}
	return &HTTPError{Status: rule.Status, Code: code, Message: message, Err: err}
}

func abortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
