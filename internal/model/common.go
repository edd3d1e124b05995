package model

import (
	"errors"
	"fmt"
)

// Error codes for the data access layer.
const (
	CodeInvalidParameter  = 400
	CodeFieldNotFound     = 404
	CodeSourceUnavailable = 503
	CodeInternalError     = 500
)

// SportsError carries a machine-readable code next to the message so
// callers can react to the class of failure without string matching.
type SportsError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *SportsError) Error() string {
	return fmt.Sprintf("code: %d, message: %s", e.Code, e.Message)
}

// Predefined error constructors.
var (
	ErrInvalidParameter = func(msg string) error {
		return &SportsError{Code: CodeInvalidParameter, Message: msg}
	}
	ErrFieldNotFound = func(msg string) error {
		return &SportsError{Code: CodeFieldNotFound, Message: msg}
	}
	ErrSourceUnavailable = func(msg string) error {
		return &SportsError{Code: CodeSourceUnavailable, Message: msg}
	}
	ErrInternalError = func(msg string) error {
		return &SportsError{Code: CodeInternalError, Message: msg}
	}
)

// ErrorCode extracts the SportsError code from err, or CodeInternalError
// when err is of another type.
func ErrorCode(err error) int {
	var se *SportsError
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeInternalError
}

// IsFieldNotFound reports whether err is a missing-column failure.
func IsFieldNotFound(err error) bool {
	return ErrorCode(err) == CodeFieldNotFound
}

// IsSourceUnavailable reports whether err is an unreachable-source failure.
func IsSourceUnavailable(err error) bool {
	return ErrorCode(err) == CodeSourceUnavailable
}
