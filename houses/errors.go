// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package houses

import "errors"

// Error kinds. Check with errors.Is; anything else is an internal error.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

// Error carries a message safe to show the caller
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func validationError(msg string) error { return &Error{kind: ErrValidation, msg: msg} }

func notFoundError(msg string) error { return &Error{kind: ErrNotFound, msg: msg} }

func forbiddenError(msg string) error { return &Error{kind: ErrForbidden, msg: msg} }
