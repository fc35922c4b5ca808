package engine

import (
	"errors"
	"net/http"
)

// Kind classifies a rejection; every kind maps 1:1 to an HTTP status class.
type Kind int

const (
	KindUnauthorized Kind = iota + 1
	KindForbidden
	KindNotFound
	KindInvalidRequest
	KindInternal
)

// Error is a structured rejection produced by the rule engines. Anything that
// is not an *Error is treated as an infrastructure failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func InvalidRequest(message string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: message}
}

// KindOf returns the rejection kind, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var rejection *Error
	if errors.As(err, &rejection) {
		return rejection.Kind
	}
	return KindInternal
}

// HTTPStatus maps a rejection to its response status.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
