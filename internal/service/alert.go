package service

import (
	"errors"

	"tigerrentals-client/internal/api/rest"
	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/pricing"
	"tigerrentals-client/internal/session"
)

// AlertMessage is the text shown when a submission fails: the backend's own
// message when it sent one, local validation messages as is, otherwise
// fallback.
func AlertMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if detail, ok := rest.Detail(err); ok {
		return detail
	}

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Error()
	case errors.Is(err, pricing.ErrInvalidRange):
		return "Please select valid rental dates (at least 1 day)"
	case errors.Is(err, pricing.ErrInvalidRate),
		errors.Is(err, ErrOwnItem),
		errors.Is(err, ErrUnavailable),
		errors.Is(err, ErrNoItem):
		return err.Error()
	case errors.Is(err, session.ErrNoSession), errors.Is(err, rest.ErrUnauthorized):
		return "Please log in to continue"
	}
	return fallback
}
