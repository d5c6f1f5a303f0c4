// Package apperr defines the error taxonomy shared by the API gateway
// clients, the local persistent store, and the domain store. Every failure
// that can reach a slice's error field is one of these kinds, so the view
// layer only ever deals with a displayable message.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindNetwork covers transport failures and provider-side errors.
	// Never retried automatically.
	KindNetwork Kind = iota
	// KindStorage covers local persistent store failures. Always logged
	// and swallowed, never shown to the user.
	KindStorage
	// KindValidation covers local form checks that fail before any
	// network call is attempted.
	KindValidation
	// KindNotFound covers detail lookups that resolve to nothing.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStorage:
		return "storage"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is lets errors.Is match against the kind sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

// Kind sentinels for errors.Is checks.
var (
	ErrNetwork    = &Error{Kind: KindNetwork}
	ErrStorage    = &Error{Kind: KindStorage}
	ErrValidation = &Error{Kind: KindValidation}
	ErrNotFound   = &Error{Kind: KindNotFound}
)

// Network returns a network error with a user-displayable message.
func Network(msg string, cause error) *Error {
	return &Error{Kind: KindNetwork, Message: msg, cause: cause}
}

// Storage wraps a local persistence failure.
func Storage(op string, cause error) *Error {
	return &Error{Kind: KindStorage, Message: fmt.Sprintf("storage %s failed", op), cause: cause}
}

// Validation returns an inline form-validation error.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NotFound marks a detail lookup that resolved to nothing.
func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", what)}
}

// Message extracts a displayable string from any error. For apperr values it
// is the message, otherwise a generic fallback so the UI never shows Go error
// chains.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}
