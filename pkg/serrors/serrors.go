// Package serrors implements semantic errors: a sentinel Kind that a caller
// matches with errors.Is, optionally paired with a cause and a message.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind. Kinds are comparable and match
// through errors.Is and errors.As when carried by an *Error.
func NewKind(name string) Kind { return kind{s: name} }

// Kinds shared by the service and transport layers. Packages may declare
// their own narrower kinds (see pkg/mrz) and wrap them in one of these.
var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest indicates the client sent data that cannot be processed.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates the entity is not in a state that allows the operation.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKind("INTERNAL")
)

// Error carries a kind, an optional wrapped cause and an optional message.
//
// errors.Is and errors.As match either the kind or anything in the cause
// chain. Error() renders "<msg>: <cause>", falling back to whichever part is
// set and finally to the kind name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with a formatted message and no cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error around cause err with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind first, then the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As matches target against the kind first, then the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the kind associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the outermost kind found in err's chain, or nil when err
// carries no semantic kind. A bare Kind sentinel is returned as itself.
func KindOf(err error) Kind {
	for err != nil {
		switch v := err.(type) { //nolint: errorlint
		case *Error:
			if v.kind != nil {
				return v.kind
			}
		case Kind:
			return v
		}
		err = errors.Unwrap(err)
	}

	return nil
}

// MessageOf returns the first non-empty semantic message in err's chain, or
// fallback when there is none.
func MessageOf(err error, fallback string) string {
	var se *Error
	for errors.As(err, &se) {
		if se.msg != "" {
			return se.msg
		}
		err = se.err
	}

	return fallback
}
