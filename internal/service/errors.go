// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// ErrorKind is the machine-checkable category of a service failure.
// The set of kinds is closed; transports map each kind to their own codes.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindConflict   ErrorKind = "conflict"
	KindAuth       ErrorKind = "auth"
	KindNotFound   ErrorKind = "not_found"
	KindForbidden  ErrorKind = "forbidden"
	KindStorage    ErrorKind = "storage"
)

// Error is the only error type returned by the services. Reason is the
// human-readable part safe to show to a caller; Err keeps the underlying
// cause for logging and errors.Is/As and is never rendered to clients.
type Error struct {
	Kind   ErrorKind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by kind, and by reason when the target has one.
// This makes the kind sentinels below usable with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

// Kind sentinels. errors.Is(err, ErrNotFound) holds for every not_found error.
var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrConflict   = &Error{Kind: KindConflict}
	ErrAuth       = &Error{Kind: KindAuth}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrForbidden  = &Error{Kind: KindForbidden}
	ErrStorage    = &Error{Kind: KindStorage}
)

var (
	// ErrInvalidCredentials is shared by the unknown-email and wrong-password
	// paths of Login so that both are indistinguishable.
	ErrInvalidCredentials = &Error{Kind: KindAuth, Reason: "invalid credentials"}

	// ErrTokenIsExpiredOrInvalid is returned by ParseToken for any token
	// that fails verification.
	ErrTokenIsExpiredOrInvalid = &Error{Kind: KindAuth, Reason: "token is expired or invalid"}

	ErrEmailAlreadyRegistered = &Error{Kind: KindConflict, Reason: "email is already registered"}
	ErrInvoiceNotFound        = &Error{Kind: KindNotFound, Reason: "invoice not found"}
	ErrInvoiceForbidden       = &Error{Kind: KindForbidden, Reason: "invoice belongs to another user"}
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenCreationFailed   = errors.New("token creation failed")
)

// KindOf returns the kind of err, or an empty kind when err is not a
// service error.
func KindOf(err error) ErrorKind {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Kind
	}
	return ""
}

// ReasonOf returns the caller-safe reason of err. Non-service errors yield
// a generic message so that internals never leak.
func ReasonOf(err error) string {
	var serviceErr *Error
	if errors.As(err, &serviceErr) && serviceErr.Reason != "" {
		return serviceErr.Reason
	}
	return "internal server error"
}

func validationError(err error) error {
	return &Error{Kind: KindValidation, Reason: err.Error(), Err: err}
}

func storageError(err error) error {
	return &Error{Kind: KindStorage, Reason: "storage failure", Err: err}
}

func withCause(sentinel *Error, err error) error {
	return &Error{Kind: sentinel.Kind, Reason: sentinel.Reason, Err: err}
}
