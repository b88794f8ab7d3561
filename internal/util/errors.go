// internal/util/errors.go
package util

import "errors"

// Common application-specific errors. Callers branch on these with IsError;
// call sites add detail (ids, balances, currencies) by wrapping with %w.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input provided")
	ErrUnauthorized = errors.New("unauthorized")

	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInvalidCurrency     = errors.New("currency must be a 3-letter alphabetic code")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrAccountNotFound     = errors.New("account not found")
	ErrSameAccountTransfer = errors.New("cannot transfer to the same account")
	ErrCurrencyMismatch    = errors.New("currency mismatch between accounts")

	// ErrIdempotencyConflict: an idempotency key was reused with a different payload.
	ErrIdempotencyConflict = errors.New("idempotency key reused with a different payload")
	// ErrConcurrencyConflict: a version-conditioned update affected zero rows.
	ErrConcurrencyConflict = errors.New("concurrent update lost the version race")
	// ErrMalformedStoredResponse: a replayed idempotency response failed to deserialize.
	ErrMalformedStoredResponse = errors.New("stored idempotency response is malformed")

	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// IsError reports whether err wraps target anywhere in its chain.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
