// Package clierr implements errors which carry extra output for the CLI.
package clierr

import (
	"context"
	"errors"
)

// ErrAbort is an error for when the CLI aborts
var ErrAbort = errors.New("abort")

// ErrorDescription is an error with detailed description that will be printed before the CLI exits
type ErrorDescription interface {
	error
	Description() string
}

func GetErrorDescription(err error) string {
	var ferr ErrorDescription
	if errors.As(err, &ferr) {
		return ferr.Description()
	}
	return ""
}

// ErrorSuggestion is an error with a suggested next steps that will be printed before the CLI exits
type ErrorSuggestion interface {
	error
	Suggestion() string
}

func GetErrorSuggestion(err error) string {
	var ferr ErrorSuggestion
	if errors.As(err, &ferr) {
		return ferr.Suggestion()
	}
	return ""
}

type withSuggestion struct {
	error
	suggestion string
}

func (e *withSuggestion) Suggestion() string { return e.suggestion }

func (e *withSuggestion) Unwrap() error { return e.error }

// WithSuggestion attaches suggestion to err.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	return &withSuggestion{err, suggestion}
}

func IsCancelledError(err error) bool {
	return errors.Is(err, ErrAbort) || errors.Is(err, context.Canceled)
}
