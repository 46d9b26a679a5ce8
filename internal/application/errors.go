package application

import (
	"errors"
	"fmt"
)

// ErrorKind classifies application errors for the presentation layer.
type ErrorKind int

const (
	KindInternalServer ErrorKind = iota
	KindBadRequest
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	default:
		return "internal_server"
	}
}

var (
	ErrBadRequest     = errors.New("bad request")
	ErrNotFound       = errors.New("not found")
	ErrInternalServer = errors.New("internal server error")
)

// AppError carries a kind, a client-safe message and the underlying cause.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// Is matches the sentinel of the error's kind.
func (e *AppError) Is(target error) bool {
	switch e.Kind {
	case KindBadRequest:
		return target == ErrBadRequest
	case KindNotFound:
		return target == ErrNotFound
	default:
		return target == ErrInternalServer
	}
}

func BadRequest(msg string, err error) *AppError {
	return &AppError{Kind: KindBadRequest, Message: msg, Err: err}
}

func NotFound(msg string, err error) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg, Err: err}
}

func InternalServer(msg string, err error) *AppError {
	return &AppError{Kind: KindInternalServer, Message: msg, Err: err}
}

// KindOf reports the kind of err; anything that is not an AppError is internal.
func KindOf(err error) ErrorKind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternalServer
}

// MessageOf returns the client-safe message for err.
func MessageOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return "internal server error"
}
