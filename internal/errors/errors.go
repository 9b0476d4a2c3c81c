// Package errors defines the error taxonomy reported to the user when a run fails.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrCode represents an error code
type ErrCode string

const (
	ErrCodeNotFound    ErrCode = "NOT_FOUND"
	ErrCodeRateLimited ErrCode = "RATE_LIMITED"
	ErrCodeAPI         ErrCode = "API_ERROR"
	ErrCodeNetwork     ErrCode = "NETWORK"
)

// resetLayout is the format of the rate limit reset time in user-facing messages.
const resetLayout = "2006-01-02 15:04:05 UTC"

// AppError represents an application error
type AppError struct {
	Code    ErrCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new not found error for the requested URL.
func NewNotFoundError(url string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("Resource not found – %s", url),
		Err:     err,
	}
}

// NewRateLimitedError creates a new rate limited error.
// A zero reset time omits the reset clause from the message.
func NewRateLimitedError(reset time.Time, err error) *AppError {
	msg := "API rate limit exceeded."
	if !reset.IsZero() {
		msg += fmt.Sprintf(" Resets at %s.", reset.UTC().Format(resetLayout))
	}
	msg += " Use --token to authenticate for higher limits."
	return &AppError{
		Code:    ErrCodeRateLimited,
		Message: msg,
		Err:     err,
	}
}

// NewAPIError creates a new error for an unexpected HTTP status.
func NewAPIError(status int, url string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeAPI,
		Message: fmt.Sprintf("GitHub API returned HTTP %d for %s", status, url),
		Err:     err,
	}
}

// NewNetworkError creates a new error for a failed round trip.
func NewNetworkError(reason string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeNetwork,
		Message: fmt.Sprintf("Network request failed – %s", reason),
		Err:     err,
	}
}

// CodeOf returns the code of the first AppError in err's chain, or "" if there is none.
func CodeOf(err error) ErrCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrCodeNotFound
}

// IsRateLimited checks if the error is a rate limited error
func IsRateLimited(err error) bool {
	return CodeOf(err) == ErrCodeRateLimited
}
