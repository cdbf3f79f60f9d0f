package fault

import (
	"errors"
	"fmt"
)

// Kind classifies an error so callers can decide between retrying,
// surfacing a user-facing message, or failing the request.
type Kind uint8

const (
	// KindUnknown is the zero value for errors that carry no classification.
	KindUnknown Kind = iota
	// KindValidation marks bad input shape or range. Validation errors are
	// raised before any store mutation.
	KindValidation
	// KindNotFound marks an absent member, wallet or transaction.
	KindNotFound
	// KindConflict marks a uniqueness violation or an exhausted
	// optimistic-concurrency retry budget.
	KindConflict
	// KindStore marks an underlying persistence failure. Always retryable
	// at the caller's discretion.
	KindStore
)

// Error is the typed error propagated from the stores and the ledger engine
// to the external boundary, which decides presentation.
type Error struct {
	Kind   Kind
	Entity string // the record the error concerns, e.g. "wallet"
	Field  string // the offending input field for validation errors
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Msg != "":
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Msg
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a validation error for the named input field.
func Validation(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Msg: msg}
}

// NotFound builds a not-found error for the named entity.
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Msg: entity + " not found"}
}

// Conflict builds a conflict error for the named entity.
func Conflict(entity, msg string) *Error {
	return &Error{Kind: KindConflict, Entity: entity, Msg: msg}
}

// Store wraps a persistence failure.
func Store(err error) *Error {
	return &Error{Kind: KindStore, Msg: "store failure", Err: err}
}

// KindOf extracts the Kind from err, or KindUnknown when err carries none.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
