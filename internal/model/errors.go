package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies engine errors so callers can distinguish bad input
// from engine configuration defects.
type ErrorKind string

const (
	// KindValidation marks errors the caller can recover from by correcting
	// the submitted schema or request.
	KindValidation ErrorKind = "validation"
	// KindParse marks malformed external input: SQL DDL, regex patterns,
	// dictionary JSON, spreadsheet headers.
	KindParse ErrorKind = "parse"
	// KindConfiguration marks registry gaps (unknown dialect or strategy).
	// These are engineering defects, not user input problems.
	KindConfiguration ErrorKind = "configuration"
	// KindLookup marks an unavailable label-catalog collaborator.
	KindLookup ErrorKind = "lookup"
)

// Error is the value-carrying error type used throughout the engine.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error // underlying parser error, when present
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// ValidationError builds a caller-recoverable input error.
func ValidationError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// ParseError wraps an underlying parser failure.
func ParseError(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindParse, Message: fmt.Sprintf(format, args...), Err: err}
}

// ConfigurationError marks a registry gap.
func ConfigurationError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConfiguration, Message: fmt.Sprintf(format, args...)}
}

// LookupError marks a failed catalog lookup.
func LookupError(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindLookup, Message: fmt.Sprintf(format, args...), Err: err}
}

// IsKind reports whether err is an engine Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
