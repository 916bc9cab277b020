package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type CreateUserInput struct {
	Matricule     string
	Password      string
	Habilitations []string
}

// UpdateUserInput: nil Password keeps the current hash, nil Habilitations
// keeps the current set.
type UpdateUserInput struct {
	Password      *string
	Habilitations *[]string
}

type UserUsecase interface {
	List(ctx context.Context) ([]repository.User, error)
	Get(ctx context.Context, matricule string) (repository.User, error)
	Create(ctx context.Context, in CreateUserInput) (repository.User, error)
	Update(ctx context.Context, matricule string, in UpdateUserInput) (repository.User, error)
	Delete(ctx context.Context, matricule string) error
}

type User struct {
	users         repository.UserRepository
	habilitations repository.HabilitationRepository
}

func NewUserUsecase(users repository.UserRepository, habilitations repository.HabilitationRepository) *User {
	return &User{users: users, habilitations: habilitations}
}

func (u *User) List(ctx context.Context) ([]repository.User, error) {
	items, err := u.users.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *User) Get(ctx context.Context, matricule string) (repository.User, error) {
	usr, err := u.users.GetByMatricule(ctx, matricule)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.User{}, ErrNotFound
		}
		return repository.User{}, ErrInternal
	}
	return usr, nil
}

func (u *User) Create(ctx context.Context, in CreateUserInput) (repository.User, error) {
	in.Matricule = strings.TrimSpace(in.Matricule)
	if in.Matricule == "" || in.Password == "" {
		return repository.User{}, ErrInvalidInput
	}

	if err := u.resolveHabilitations(ctx, in.Habilitations); err != nil {
		return repository.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return repository.User{}, ErrInternal
	}

	usr := repository.User{
		Matricule:     in.Matricule,
		PasswordHash:  string(hash),
		Habilitations: in.Habilitations,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return repository.User{}, ErrAlreadyExists
		case errors.Is(err, repository.ErrReferenced):
			return repository.User{}, ErrNotFound
		default:
			return repository.User{}, ErrInternal
		}
	}
	return u.Get(ctx, in.Matricule)
}

func (u *User) Update(ctx context.Context, matricule string, in UpdateUserInput) (repository.User, error) {
	current, err := u.Get(ctx, matricule)
	if err != nil {
		return repository.User{}, err
	}

	next := repository.User{Matricule: current.Matricule, Habilitations: current.Habilitations}
	if in.Password != nil {
		if *in.Password == "" {
			return repository.User{}, ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return repository.User{}, ErrInternal
		}
		next.PasswordHash = string(hash)
	}
	if in.Habilitations != nil {
		if err := u.resolveHabilitations(ctx, *in.Habilitations); err != nil {
			return repository.User{}, err
		}
		next.Habilitations = *in.Habilitations
	}

	if err := u.users.Update(ctx, next); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return repository.User{}, ErrNotFound
		case errors.Is(err, repository.ErrReferenced):
			return repository.User{}, ErrNotFound
		default:
			return repository.User{}, ErrInternal
		}
	}
	return u.Get(ctx, matricule)
}

func (u *User) Delete(ctx context.Context, matricule string) error {
	if err := u.users.Delete(ctx, matricule); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *User) resolveHabilitations(ctx context.Context, codes []string) error {
	for _, code := range codes {
		exists, err := u.habilitations.Exists(ctx, code)
		if err != nil {
			return ErrInternal
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}
