package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

// Kind groups failures by how they are surfaced to clients.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindNotFound   Kind = "NOT_FOUND"
	KindConflict   Kind = "CONFLICT"
	KindDependency Kind = "DEPENDENCY"
	KindMethod     Kind = "METHOD"
	KindInternal   Kind = "INTERNAL"
)

type Metadata struct {
	HTTPStatus int
	// Public reports whether the code and message may be echoed to the caller.
	Public bool
}

var metadataByKind = map[Kind]Metadata{
	KindValidation: {HTTPStatus: http.StatusBadRequest, Public: true},
	KindNotFound:   {HTTPStatus: http.StatusNotFound, Public: true},
	// Duplicate shopify domains have always been reported as 400.
	KindConflict:   {HTTPStatus: http.StatusBadRequest, Public: true},
	KindDependency: {HTTPStatus: http.StatusServiceUnavailable, Public: true},
	KindMethod:     {HTTPStatus: http.StatusMethodNotAllowed, Public: true},
	KindInternal:   {HTTPStatus: http.StatusInternalServerError, Public: false},
}

func MetadataFor(kind Kind) Metadata {
	if meta, ok := metadataByKind[kind]; ok {
		return meta
	}
	return metadataByKind[KindInternal]
}

type Error struct {
	kind    Kind
	code    Code
	message string
	cause   error
}

func New(kind Kind, code Code, message string) *Error {
	return &Error{kind: kind, code: code, message: message}
}

func Wrap(kind Kind, code Code, err error, message string) *Error {
	if err == nil {
		return New(kind, code, message)
	}
	return &Error{kind: kind, code: code, message: message, cause: err}
}

// Validation builds a 400 failure carrying a stable code.
func Validation(code Code, message string) *Error {
	return New(KindValidation, code, message)
}

// NotFound builds a 404 failure carrying a stable code.
func NotFound(code Code, message string) *Error {
	return New(KindNotFound, code, message)
}

// Internal wraps an unexpected failure. Internal errors never carry a public code.
func Internal(err error, message string) *Error {
	return Wrap(KindInternal, "", err, message)
}

func (e *Error) Kind() Kind {
	if e == nil {
		return KindInternal
	}
	return e.kind
}

func (e *Error) Code() Code {
	if e == nil {
		return ""
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	label := string(e.code)
	if label == "" {
		label = string(e.kind)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", label, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", label, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// HasCode reports whether err is a typed error with the given code.
func HasCode(err error, code Code) bool {
	typed := As(err)
	return typed != nil && typed.code == code
}
