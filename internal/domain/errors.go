package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a business error so the delivery layer can pick an
// HTTP status without inspecting message text.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindBadRequest
	KindNotFound
	KindConflict
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func BadRequestf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Internalf wraps an underlying cause that should surface as a generic 500.
func Internalf(cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Err: cause}
}

// KindOf returns the kind of err, or KindInternal for untagged errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
