// Package apperrors defines the sentinel errors shared by services,
// handlers and the client. Callers classify failures with errors.Is and
// wrap with fmt.Errorf("...: %w", err) to add context.
package apperrors

import "errors"

var (
	// ErrNotFound covers missing orders, menu items and similar lookups.
	// An unknown category on a catalog listing is NOT an error; it yields
	// an empty result.
	ErrNotFound = errors.New("not found")

	// ErrValidation covers malformed input: empty carts, missing fields,
	// bad quantities.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when a registration ID does not match
	// the pattern for its role.
	ErrInvalidFormat = errors.New("id does not match the required format")

	// ErrDuplicateID is returned when the (id, role) pair is already
	// registered.
	ErrDuplicateID = errors.New("id already registered")

	// ErrInvalidPin is returned when a PIN is not exactly four digits.
	ErrInvalidPin = errors.New("pin must be exactly 4 digits")

	// ErrUserNotFound is returned by login when no (id, role) matches.
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPin is returned by login on a PIN mismatch.
	ErrWrongPin = errors.New("wrong pin")

	// ErrPaymentProofRequired is returned when an order is submitted
	// without a payment screenshot attached.
	ErrPaymentProofRequired = errors.New("payment screenshot required")

	// ErrForbidden is returned when a non-admin actor attempts an
	// admin-only operation.
	ErrForbidden = errors.New("admin action required")

	// ErrConflict is returned for state transitions that are exhausted,
	// such as advancing an order that is already ready.
	ErrConflict = errors.New("conflicting state")

	// ErrTransport marks network-level failures in the API client so
	// callers can tell "fetch failed" apart from an empty result.
	ErrTransport = errors.New("transport failure")
)
