package response

import (
	"errors"
	"fmt"
)

// AppError is the error type surfaced by the store, repositories, and
// services. It carries a typed code, an optional wrapped cause, and
// optional field-level validation details.
type AppError struct {
	Code   ErrCode
	Detail string
	Fields map[string]string
	cause  error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = GetMessage(e.Code)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *AppError) Unwrap() error { return e.cause }

// Message returns the user-visible message for this error.
func (e *AppError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return GetMessage(e.Code)
}

// NewError creates an AppError with a code and a formatted detail message.
func NewError(code ErrCode, format string, args ...any) *AppError {
	return &AppError{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// WrapError creates an AppError with a code wrapping an underlying cause.
func WrapError(code ErrCode, cause error, format string, args ...any) *AppError {
	return &AppError{Code: code, Detail: fmt.Sprintf(format, args...), cause: cause}
}

// FieldErrors creates a VALIDATION_ERROR carrying field → message details.
func FieldErrors(fields map[string]string) *AppError {
	return &AppError{Code: ErrValidation, Fields: fields}
}

// CodeOf extracts the ErrCode from an error chain. Unknown errors map to
// ErrInternal; nil maps to the empty code.
func CodeOf(err error) ErrCode {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrCode) bool {
	return CodeOf(err) == code
}
