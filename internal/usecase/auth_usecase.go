package usecase

import (
	"context"
	"errors"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/pkg/jwt"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type LoginInput struct {
	Matricule string
	Password  string
}

type AuthUsecase interface {
	Login(ctx context.Context, in LoginInput) (repository.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	users repository.UserRepository
	jwt   jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (repository.User, string, string, error) {
	if in.Matricule == "" || in.Password == "" {
		return repository.User{}, "", "", ErrInvalidCredentials
	}

	usr, err := u.users.GetByMatricule(ctx, in.Matricule)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.User{}, "", "", ErrInvalidCredentials
		}
		return repository.User{}, "", "", ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)) != nil {
		return repository.User{}, "", "", ErrInvalidCredentials
	}

	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return repository.User{}, "", "", err
	}
	return usr, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByMatricule(ctx, claims.Matricule)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", ErrInternal
	}

	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (u *Auth) issueTokens(usr repository.User) (string, string, error) {
	access, err := u.jwt.GenerateAccessToken(usr.Matricule, usr.Habilitations)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.Matricule)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}
