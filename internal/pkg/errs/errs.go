/*
Package errs provides the application's error type and business error codes.

A CustomError carries a business code, a user-facing message and the HTTP
status used when it is written as a response.
*/
package errs

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"strings"

	"ufresher/internal/pkg/logx"
)

// CustomError is the error structure shared by handlers and services.
type CustomError struct {
	// Code is the business error code (see error_codes.go).
	Code int

	// Message is the user-facing description.
	Message string

	// Status is the HTTP status code written for this error.
	Status int

	// Fields holds per-field validation messages, keyed by form field name.
	Fields map[string]string
}

// Error implements the error interface.
func (e CustomError) Error() string {
	return fmt.Sprintf("Error Code %d (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// NewError builds a *CustomError from a registered code.
// details are printf arguments for message templates containing '%'.
// For ErrUnknown, a leading error in details is logged instead.
// Unregistered codes fall back to ErrUnknown.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]

	if !ok {
		logx.Error(
			fmt.Errorf("attempted to create an error with an unknown code in errorMap"),
			"Unknown error code requested",
			"requested_code", code,
		)

		unknownErr := errorMap[ErrUnknown]
		return &CustomError{
			Code:    unknownErr.Code,
			Message: unknownErr.Message,
			Status:  unknownErr.Status,
		}
	}

	customErr := templateErr

	if customErr.Status == 0 {
		customErr.Status = http.StatusOK
	}

	if code == ErrUnknown && len(details) > 0 {
		if originalErr, ok := details[0].(error); ok {
			logx.Error(originalErr, "Handling ErrUnknown with underlying error")
		}
	} else if len(details) > 0 {
		if strings.Contains(customErr.Message, "%") {
			customErr.Message = fmt.Sprintf(customErr.Message, details...)
		} else {
			logx.Warn("Details provided for error, but message template has no formatting placeholders. Details ignored.")
		}
	}

	return &customErr
}

// WithFields returns a copy of e carrying the given field messages.
func (e *CustomError) WithFields(fields map[string]string) *CustomError {
	cp := *e
	cp.Fields = maps.Clone(fields)
	return &cp
}

// From converts any error into a *CustomError.
// A wrapped *CustomError is returned as is; anything else becomes ErrUnknown.
func From(err error) *CustomError {
	if err == nil {
		return nil
	}

	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr
	}

	return NewError(ErrUnknown, err)
}
