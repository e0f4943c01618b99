package vidsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/vidcat/pkg/httpx"
)

// Stable error codes carried in the envelope "error" field.
const (
	CodeInvalidRequest       = "invalid_request"
	CodeValidationFailed     = "validation_failed"
	CodeUnauthorized         = httpx.CodeUnauthorized
	CodeInsufficientScope    = httpx.CodeInsufficientScope
	CodeInvalidCredentials   = "invalid_credentials"
	CodeInvalidRefreshToken  = "invalid_refresh_token"
	CodeEmailTaken           = "email_taken"
	CodeUserNotFound         = "user_not_found"
	CodeVideoNotFound        = "video_not_found"
	CodeInvalidPlaybackToken = "invalid_playback_token"
	CodeMissingPlaybackToken = "missing_playback_token"
	CodeRateLimited          = httpx.CodeRateLimited
	CodeServerError          = "server_error"
)

// APIError is an unsuccessful API response. Handlers write it with
// WriteError and the client returns it from every call.
type APIError struct {
	Status  int      `json:"-"`
	Code    string   `json:"error"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("%s: %s %v", e.Code, e.Message, e.Errors)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes e as an envelope with success=false.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteFailure(w, e.Status, e.Code, e.Message, e.Errors)
}

// WithErrors returns a copy of e carrying errs.
func (e *APIError) WithErrors(errs ...string) *APIError {
	cp := *e
	cp.Errors = errs
	return &cp
}

// WithMessage returns a copy of e with a different message.
func (e *APIError) WithMessage(msg string) *APIError {
	cp := *e
	cp.Message = msg
	return &cp
}

func NewAPIError(status int, code, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

var (
	ErrInvalidRequest = NewAPIError(http.StatusBadRequest, CodeInvalidRequest,
		"The request is malformed or missing required parameters")
	ErrValidationFailed = NewAPIError(http.StatusBadRequest, CodeValidationFailed,
		"Validation failed")
	ErrInvalidCredentials = NewAPIError(http.StatusUnauthorized, CodeInvalidCredentials,
		"Invalid email or password")
	ErrInvalidRefreshToken = NewAPIError(http.StatusUnauthorized, CodeInvalidRefreshToken,
		"Invalid or expired refresh token")
	ErrUnauthorized = NewAPIError(http.StatusUnauthorized, CodeUnauthorized,
		"Authentication required")
	ErrEmailTaken = NewAPIError(http.StatusConflict, CodeEmailTaken,
		"Email already registered")
	ErrUserNotFound = NewAPIError(http.StatusNotFound, CodeUserNotFound,
		"User not found")
	ErrVideoNotFound = NewAPIError(http.StatusNotFound, CodeVideoNotFound,
		"Video not found")
	ErrInvalidPlaybackToken = NewAPIError(http.StatusBadRequest, CodeInvalidPlaybackToken,
		"Invalid or expired playback token")
	ErrMissingPlaybackToken = NewAPIError(http.StatusBadRequest, CodeMissingPlaybackToken,
		"Playback token is required")
	ErrSeedForbidden = NewAPIError(http.StatusForbidden, CodeUnauthorized,
		"Seed token required")
	ErrServerError = NewAPIError(http.StatusInternalServerError, CodeServerError,
		"Internal server error")
)

// parseErrorResponse turns a non-2xx response into an *APIError, falling
// back to the status text when the body is not an envelope.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var env httpx.Envelope
	if err := json.Unmarshal(body, &env); err == nil && (env.Error != "" || env.Message != "") {
		return &APIError{
			Status:  resp.StatusCode,
			Code:    env.Error,
			Message: env.Message,
			Errors:  env.Errors,
		}
	}

	return &APIError{
		Status:  resp.StatusCode,
		Code:    CodeServerError,
		Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
