package model

import (
	"errors"
	"fmt"
)

// ErrKind classifies every error the engine returns to its callers.
type ErrKind uint8

const (
	KindUnknown ErrKind = iota
	KindInvalidInput
	KindDecode
	KindResourceLimit
	KindStorage
	KindNotFound
)

// Error is the typed error returned by the ingestion and retrieval paths.
// Orphaned is meaningful for storage errors only: it reports whether blobs
// may have been written without a committed metadata row.
type Error struct {
	Kind     ErrKind
	Reason   string
	Orphaned bool
	cause    error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.cause)
	}

	return e.Reason
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewInvalidInput(reason string) *Error {
	return &Error{Kind: KindInvalidInput, Reason: reason}
}

func NewDecodeError(reason string, cause error) *Error {
	return &Error{Kind: KindDecode, Reason: reason, cause: cause}
}

func NewResourceLimit(reason string) *Error {
	return &Error{Kind: KindResourceLimit, Reason: reason}
}

func NewStorageError(reason string, cause error, orphaned bool) *Error {
	return &Error{Kind: KindStorage, Reason: reason, Orphaned: orphaned, cause: cause}
}

func NewNotFound(reason string) *Error {
	return &Error{Kind: KindNotFound, Reason: reason}
}

// KindOf extracts the classification of err, or KindUnknown for errors that
// did not come from the engine.
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}

// IsNotFound reports whether err is a retrieval miss.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
