package event

import (
	"errors"
	"fmt"
)

// Kind partitions event errors by the layer that produced them.
type Kind string

const (
	// KindCodec covers malformed envelopes and digest mismatches.
	KindCodec Kind = "codec"
	// KindAuth covers capability binding and policy failures.
	KindAuth Kind = "auth"
)

// Error is a structured event error.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("event: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("event: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// IsKind reports whether err is an event Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
