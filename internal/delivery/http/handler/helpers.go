package handler

import (
	"errors"
	"time"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/middleware"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const dateLayout = "2006-01-02"

// mapUsecaseError translates the usecase sentinels to transport errors. The
// invalid-input branch keeps the wrapped message so the caller learns which
// validation rule fired.
func mapUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, usecase.ErrPersonUnavailable):
		return middleware.NewAppError(fiber.StatusNotFound, "Person not currently available", nil, err)
	case errors.Is(err, usecase.ErrAlreadyExists):
		return middleware.NewAppError(fiber.StatusConflict, "Already exists", nil, err)
	case errors.Is(err, usecase.ErrInUse):
		return middleware.NewAppError(fiber.StatusConflict, "Still referenced", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrUnauthorized),
		errors.Is(err, usecase.ErrInvalidRefreshToken),
		errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "Internal server error", nil, err)
	}
}

func parseDate(raw string) (time.Time, error) {
	return time.Parse(dateLayout, raw)
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := parseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func badRequest(message string, cause error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, message, nil, cause)
}
