package v1

import (
	"errors"
	"net/http"

	"github.com/goalvault/backend/internal/ledger"
	"github.com/goalvault/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, errMissingUserHeader) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, ledger.ErrSystemGoalImmutable) {
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}

// Identity errors
var errMissingUserHeader = errors.New("the X-User-ID header must be set to the ID of the requesting user")

// Goal errors
var (
	errStatusFilterInvalid = errors.New("the specified status filter is not a valid goal status")
	errTypeFilterInvalid   = errors.New("the specified type filter is not a valid goal type")
	errTypeInvalid         = errors.New("the specified goal type is invalid")
	errPriorityInvalid     = errors.New("the specified goal priority is invalid")
	errFrequencyInvalid    = errors.New("the specified auto-save frequency is invalid")
)

// User errors
var errRoleInvalid = errors.New("the specified user role is invalid")
