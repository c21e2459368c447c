// Package domainerrors carries failure categories from stores and services
// up to the transport, which alone decides how each one is rendered.
package domainerrors

import "errors"

// Code names a failure category of the document workflow. CodeBadRequest
// is a malformed body, CodeInvalidInput an unparseable id, type or status,
// and CodeInvariantViolation stored state that breaks a document invariant.
type Code string

const (
	CodeNotFound           Code = "not_found"
	CodeBadRequest         Code = "bad_request"
	CodeInvalidInput       Code = "invalid_input"
	CodeValidation         Code = "validation_failed"
	CodeInvariantViolation Code = "invariant_violation"
	CodeUnauthorized       Code = "unauthorized"
	CodeForbidden          Code = "forbidden"
	CodeConflict           Code = "conflict"
	CodePolicyViolation    Code = "policy_violation"
	CodeInternal           Code = "internal_error"
)

// Error pairs a Code with a client-safe message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports a match on Code alone, so errors.Is(err, New(CodeConflict, ""))
// holds for any conflict.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches msg to err. A code already present in the chain wins over
// code, so a store's not_found stays not_found through service wrapping.
func Wrap(err error, code Code, msg string) error {
	return &Error{Code: codeOr(err, code), Message: msg, Err: err}
}

// HasCode reports whether the first domain error in err's chain has code.
func HasCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// CodeOf returns the code of the first domain error in err's chain.
// Foreign errors are internal.
func CodeOf(err error) Code {
	return codeOr(err, CodeInternal)
}

func codeOr(err error, fallback Code) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return fallback
}
