// Package apperr defines the error kinds shared by every layer of the
// backend. Handlers match them with errors.Is to pick a status code;
// lower layers never log and swallow.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized covers missing, invalid or revoked session tokens
	// and failed logins.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when an operation targets a project id or
	// config key that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks input the boundary accepted but domain rules
	// reject (empty title, empty resume payload).
	ErrValidation = errors.New("invalid input")

	// ErrConfiguration marks a required setting that was never
	// provided (admin credentials, email API key).
	ErrConfiguration = errors.New("configuration missing")

	// ErrStorage wraps any failure of the underlying store. Engine
	// error types never cross the store boundary.
	ErrStorage = errors.New("storage failure")

	// ErrDecode marks a stored resume payload that is not valid
	// base64. Distinct from ErrNotFound: "never uploaded" and
	// "corrupt" are different outcomes.
	ErrDecode = errors.New("decode failure")

	// ErrDelivery marks a failed outbound email send.
	ErrDelivery = errors.New("delivery failure")
)

// Wrap attaches a cause to one of the kind sentinels. The cause is
// flattened to text so engine-specific error types stay behind the
// abstraction.
func Wrap(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return fmt.Errorf("%w: %v", kind, cause)
}

// Wrapf is Wrap with a formatted detail message.
func Wrapf(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{kind}, args...)...)
}
