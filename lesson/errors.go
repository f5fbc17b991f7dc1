package lesson

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/tutor/source"
)

// ErrorType separates bad input from bugs in the parser itself.
type ErrorType string

const (
	// ErrorTypeMalformed reports input that does not follow the lesson format.
	ErrorTypeMalformed ErrorType = "malformed document"
	// ErrorTypeInvariant reports a tree that breaks the parser's own
	// guarantees, such as overlapping spans.
	ErrorTypeInvariant ErrorType = "invariant violation"
)

var (
	ErrMalformedDocument  = errors.New(string(ErrorTypeMalformed))
	ErrInvariantViolation = errors.New(string(ErrorTypeInvariant))
)

// Error is returned by Parse and Verify. Use errors.Is with
// ErrMalformedDocument or ErrInvariantViolation to tell the two apart.
type Error struct {
	Type     ErrorType
	Message  string
	Position source.Position
	Context  string // source line the error points at
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Type))
	if e.Position.IsValid() {
		sb.WriteString(": ")
		sb.WriteString(e.Position.String())
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Context != "" {
		fmt.Fprintf(&sb, "\n  | %s", e.Context)
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	switch e.Type {
	case ErrorTypeMalformed:
		return ErrMalformedDocument
	case ErrorTypeInvariant:
		return ErrInvariantViolation
	}
	return nil
}

func newError(typ ErrorType, file string, at source.Slice, format string, args ...any) *Error {
	pos := at.Position()
	pos.File = file
	return &Error{
		Type:     typ,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
		Context:  source.LineAt(at.Source(), at.Offset()),
	}
}

func malformed(file string, at source.Slice, format string, args ...any) *Error {
	return newError(ErrorTypeMalformed, file, at, format, args...)
}

func invariant(file string, at source.Slice, format string, args ...any) *Error {
	return newError(ErrorTypeInvariant, file, at, format, args...)
}
