// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an [Error].
type Kind int

const (
	// KindUnknown is the catch-all kind. It is never produced internally.
	KindUnknown Kind = iota
	// KindConfig reports settings merge or override failures.
	KindConfig
	// KindCommand reports dispatch failures or command-specific failures.
	KindCommand
	// KindIO wraps an underlying OS-level I/O failure.
	KindIO
	// KindDeserialize reports a mismatch between the configuration tree and
	// the target settings structure.
	KindDeserialize
	// KindEnv reports a missing or invalid environment variable. Reserved for
	// command implementations.
	KindEnv
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindCommand:
		return "command"
	case KindIO:
		return "io"
	case KindDeserialize:
		return "deserialize"
	case KindEnv:
		return "env"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching. Any [*Error] of the same kind matches.
var (
	ErrUnknown     = &Error{Kind: KindUnknown}
	ErrConfig      = &Error{Kind: KindConfig}
	ErrCommand     = &Error{Kind: KindCommand}
	ErrIO          = &Error{Kind: KindIO}
	ErrDeserialize = &Error{Kind: KindDeserialize}
	ErrEnv         = &Error{Kind: KindEnv}
)

// Error is the module-wide error value. It is immutable once constructed.
type Error struct {
	// Kind is the error variant.
	Kind Kind
	// Message is the human-readable detail. Empty for KindIO and KindUnknown.
	Message string
	// Err is the wrapped cause, if any.
	Err error
}

// Error renders the message for the error's kind.
func (e *Error) Error() string {
	switch e.Kind {
	case KindConfig:
		return "Configuration error: " + e.Message
	case KindCommand:
		return "Command error: " + e.Message
	case KindIO:
		return fmt.Sprintf("I/O error: %v", e.Err)
	case KindDeserialize:
		return "Failed to deserialize configuration: " + e.Message
	case KindEnv:
		return "Environment variable not set or invalid: " + e.Message
	default:
		return "Unknown error occurred"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an [*Error] of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Config creates a configuration error.
func Config(msg string) *Error {
	return &Error{Kind: KindConfig, Message: msg}
}

// Command creates a command error.
func Command(msg string) *Error {
	return &Error{Kind: KindCommand, Message: msg}
}

// IO wraps an OS-level failure.
func IO(err error) *Error {
	return &Error{Kind: KindIO, Err: err}
}

// Deserialize creates a deserialization error.
func Deserialize(msg string) *Error {
	return &Error{Kind: KindDeserialize, Message: msg}
}

// Env creates an environment variable error.
func Env(msg string) *Error {
	return &Error{Kind: KindEnv, Message: msg}
}

// Unknown creates the catch-all error.
func Unknown() *Error {
	return &Error{Kind: KindUnknown}
}

// KindOf returns the kind of the first [*Error] in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Wrap creates an error of the given kind whose message is err's message
// and whose cause is err.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Message: err.Error(), Err: err}
}
