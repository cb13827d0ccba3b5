package stream

import (
	"errors"
	"fmt"
)

// Kind partitions stream errors by the rule that produced them.
type Kind string

const (
	// KindChain covers log ordering violations.
	KindChain Kind = "chain"
	// KindPatch covers content patch failures.
	KindPatch Kind = "patch"
	// KindState covers projections over incomplete state.
	KindState Kind = "state"
)

// Error is a structured stream error.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("stream: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("stream: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// IsKind reports whether err is a stream Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
