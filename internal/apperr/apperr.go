// Package apperr carries business errors from the service layer to the HTTP
// boundary as a kind plus a message, so status mapping happens exactly once.
package apperr

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindInvalidCredentials
	KindUnauthenticated
	KindForbidden
	KindNotFound
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) *Error {
	return New(KindValidation, message)
}

func Conflict(message string) *Error {
	return New(KindConflict, message)
}

func InvalidCredentials(message string) *Error {
	return New(KindInvalidCredentials, message)
}

func Unauthenticated(message string) *Error {
	return New(KindUnauthenticated, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// KindOf extracts the kind of err, or KindInternal if err is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
