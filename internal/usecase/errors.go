package usecase

import "errors"

// Shared sentinels. Handlers translate these to HTTP statuses; nothing here
// is ever retried.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInUse             = errors.New("still referenced")
	ErrInvalidInput      = errors.New("invalid input")
	ErrPersonUnavailable = errors.New("person not currently available")
	ErrInternal          = errors.New("internal error")

	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
