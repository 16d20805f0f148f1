// Package apperrors defines the error taxonomy shared by repositories and
// handlers: validation, duplicate, not-found, forbidden and auth failures.
// Anything that does not carry one of these kinds is treated as internal.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindDuplicate
	KindNotFound
	KindForbidden
	KindAuth
)

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports malformed or out-of-range input.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Duplicate reports a uniqueness violation.
func Duplicate(msg string) error {
	return &Error{Kind: KindDuplicate, Message: msg}
}

// NotFound reports a missing referenced entity.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Forbidden reports an ownership or authorization mismatch.
func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// Auth reports a missing or invalid credential.
func Auth(msg string) error {
	return &Error{Kind: KindAuth, Message: msg}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf extracts the kind of err, or KindInternal when unclassified.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}
