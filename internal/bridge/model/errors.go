package model

import "errors"

// Error classes. Components wrap these with context; transport maps them to responses.
var (
	// ErrInvalidInput rejects a malformed or out-of-order command without mutating state.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound reports a missing entity.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized reports a caller not allowed to perform the command.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInsufficientFunds reports a fee debit beyond the prepaid balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrStalled is a recoverable liveness stall; the command can be retried later.
	ErrStalled = errors.New("stalled")
	// ErrInvariant is a fatal invariant violation requiring operator attention.
	ErrInvariant = errors.New("invariant violation")
)

// ErrorClass names the class of err for metrics and logs; nil is "success".
func ErrorClass(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrStalled):
		return "stalled"
	case errors.Is(err, ErrInvariant):
		return "invariant"
	default:
		return "error"
	}
}
