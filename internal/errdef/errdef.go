package errdef

import (
	"errors"
	"fmt"
)

func NewBadRequest(format string, a ...any) error {
	return badRequest{fmt.Errorf(format, a...)}
}

type badRequest struct{ error }

func IsBadRequest(err error) bool {
	var e badRequest
	return errors.As(err, &e)
}

// NewNotFound creates an error representing a resource that could not be found.
func NewNotFound(format string, a ...any) error {
	return notFound{fmt.Errorf(format, a...)}
}

type notFound struct{ error }

// IsNotFound returns true if err is an error representing a resource that could not be found and false otherwise.
func IsNotFound(err error) bool {
	var e notFound
	return errors.As(err, &e)
}

func NewUnsupportedMediaType(format string, a ...any) error {
	return unsupportedMediaType{fmt.Errorf(format, a...)}
}

type unsupportedMediaType struct{ error }

func IsUnsupportedMediaType(err error) bool {
	var e unsupportedMediaType
	return errors.As(err, &e)
}

// NewUnprocessable creates an error representing a well-formed request whose payload can't be
// interpreted, like ticket details not matching the shape of their ticket type.
func NewUnprocessable(format string, a ...any) error {
	return unprocessable{fmt.Errorf(format, a...)}
}

type unprocessable struct{ error }

// IsUnprocessable returns true if err is an error representing an unprocessable payload and false otherwise.
func IsUnprocessable(err error) bool {
	var e unprocessable
	return errors.As(err, &e)
}

// NewUpstream creates an error representing a failure reported by the DBM backend.
func NewUpstream(format string, a ...any) error {
	return upstream{fmt.Errorf(format, a...)}
}

type upstream struct{ error }

// IsUpstream returns true if err is an error reported by the DBM backend and false otherwise.
func IsUpstream(err error) bool {
	var e upstream
	return errors.As(err, &e)
}
