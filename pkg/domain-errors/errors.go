// Package derrors provides coded business errors. Services translate
// infrastructure sentinels into these; transports translate them into
// protocol responses. Every code is terminal — nothing here is retryable.
package derrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a business error.
type Code string

const (
	CodeBadRequest           Code = "bad_request"
	CodeUnauthorized         Code = "unauthorized"
	CodeNotFound             Code = "not_found"
	CodeNotInitialized       Code = "not_initialized"
	CodeAlreadyInitialized   Code = "already_initialized"
	CodeDuplicateAttestation Code = "duplicate_attestation"
	CodeAlreadyRevoked       Code = "already_revoked"
	CodeInternal             Code = "internal"
)

// Error is a coded domain error. Use New or Wrap to construct one.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a coded error with no underlying cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for uncoded
// errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code to its HTTP response status. Conflict-flavored
// lifecycle errors (double initialize, duplicate create, double revoke,
// operating before initialize) all map to 409.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeNotInitialized, CodeAlreadyInitialized, CodeDuplicateAttestation, CodeAlreadyRevoked:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
