package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
)

type HabilitationUsecase interface {
	List(ctx context.Context) ([]repository.Habilitation, error)
	Get(ctx context.Context, code string) (repository.Habilitation, error)
	Create(ctx context.Context, h repository.Habilitation) (repository.Habilitation, error)
	Update(ctx context.Context, h repository.Habilitation) (repository.Habilitation, error)
	Delete(ctx context.Context, code string) error
}

type Habilitation struct {
	repo repository.HabilitationRepository
}

func NewHabilitationUsecase(repo repository.HabilitationRepository) *Habilitation {
	return &Habilitation{repo: repo}
}

func (u *Habilitation) List(ctx context.Context) ([]repository.Habilitation, error) {
	items, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Habilitation) Get(ctx context.Context, code string) (repository.Habilitation, error) {
	h, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Habilitation{}, ErrNotFound
		}
		return repository.Habilitation{}, ErrInternal
	}
	return h, nil
}

func (u *Habilitation) Create(ctx context.Context, h repository.Habilitation) (repository.Habilitation, error) {
	h.Code = strings.TrimSpace(h.Code)
	if h.Code == "" {
		return repository.Habilitation{}, ErrInvalidInput
	}

	if err := u.repo.Create(ctx, h); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return repository.Habilitation{}, ErrAlreadyExists
		}
		return repository.Habilitation{}, ErrInternal
	}
	return h, nil
}

func (u *Habilitation) Update(ctx context.Context, h repository.Habilitation) (repository.Habilitation, error) {
	h.Code = strings.TrimSpace(h.Code)
	if h.Code == "" {
		return repository.Habilitation{}, ErrInvalidInput
	}

	if err := u.repo.Update(ctx, h); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Habilitation{}, ErrNotFound
		}
		return repository.Habilitation{}, ErrInternal
	}
	return h, nil
}

func (u *Habilitation) Delete(ctx context.Context, code string) error {
	inUse, err := u.repo.InUse(ctx, code)
	if err != nil {
		return ErrInternal
	}
	if inUse {
		return ErrInUse
	}

	if err := u.repo.Delete(ctx, code); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrNotFound
		case errors.Is(err, repository.ErrReferenced):
			return ErrInUse
		default:
			return ErrInternal
		}
	}
	return nil
}
