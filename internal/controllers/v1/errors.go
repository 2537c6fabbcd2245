package v1

import (
	"errors"
	"net/http"

	"github.com/pocket-ledger/backend/internal/auth"
	"github.com/pocket-ledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrTokenInvalid) || errors.Is(err, auth.ErrUnauthorized) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

var (
	errFromAfterUntil       = errors.New("the from parameter must not be after the until parameter")
	errCurrentAmountMissing = errors.New("currentAmount is required")
	errContributionZero     = errors.New("the contribution amount must not be zero")
)
