package transport

import (
	"context"
	"errors"
	"net/http"

	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
)

// StatusCode maps an error class to its HTTP status.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, model.ErrStalled):
		return http.StatusConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// classError restores the sentinel of a class reported by the server.
func classError(class string) error {
	switch class {
	case "invalid_input":
		return model.ErrInvalidInput
	case "not_found":
		return model.ErrNotFound
	case "unauthorized":
		return model.ErrUnauthorized
	case "insufficient_funds":
		return model.ErrInsufficientFunds
	case "stalled":
		return model.ErrStalled
	case "invariant":
		return model.ErrInvariant
	default:
		return nil
	}
}
