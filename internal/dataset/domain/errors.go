package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error produced by the dataset packages unwraps to one of these.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUpstream     = errors.New("upstream failure")
	ErrNotFound     = errors.New("not found")
)

type kindError struct {
	kind    error
	message string
	cause   error
	quiet   bool
}

func (e *kindError) Error() string {
	if e.cause == nil || e.quiet {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

func (e *kindError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// NewInputError builds a user-facing error of kind ErrInvalidInput.
func NewInputError(format string, args ...any) error {
	return &kindError{kind: ErrInvalidInput, message: fmt.Sprintf(format, args...)}
}

// NewUpstreamError wraps a failure of an external collaborator. cause may be nil.
func NewUpstreamError(cause error, format string, args ...any) error {
	return &kindError{kind: ErrUpstream, message: fmt.Sprintf(format, args...), cause: cause}
}

func NewNotFoundError(format string, args ...any) error {
	return &kindError{kind: ErrNotFound, message: fmt.Sprintf(format, args...)}
}

// AsInputError marks err as an input error. The message is err's own text and errors.Is
// still matches err.
func AsInputError(err error) error {
	return &kindError{kind: ErrInvalidInput, message: err.Error(), cause: err, quiet: true}
}
