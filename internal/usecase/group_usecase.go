package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
)

type GroupUsecase interface {
	List(ctx context.Context) ([]repository.Group, error)
	Get(ctx context.Context, code string) (repository.Group, error)
	Create(ctx context.Context, g repository.Group) (repository.Group, error)
	Update(ctx context.Context, g repository.Group) (repository.Group, error)
	Delete(ctx context.Context, code string) error
}

type Group struct {
	repo repository.GroupRepository
}

func NewGroupUsecase(repo repository.GroupRepository) *Group {
	return &Group{repo: repo}
}

func (u *Group) List(ctx context.Context) ([]repository.Group, error) {
	items, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Group) Get(ctx context.Context, code string) (repository.Group, error) {
	g, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Group{}, ErrNotFound
		}
		return repository.Group{}, ErrInternal
	}
	return g, nil
}

func (u *Group) Create(ctx context.Context, g repository.Group) (repository.Group, error) {
	g.Code = strings.TrimSpace(g.Code)
	if g.Code == "" {
		return repository.Group{}, ErrInvalidInput
	}

	if err := u.repo.Create(ctx, g); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return repository.Group{}, ErrAlreadyExists
		}
		return repository.Group{}, ErrInternal
	}
	return g, nil
}

func (u *Group) Update(ctx context.Context, g repository.Group) (repository.Group, error) {
	g.Code = strings.TrimSpace(g.Code)
	if g.Code == "" {
		return repository.Group{}, ErrInvalidInput
	}

	if err := u.repo.Update(ctx, g); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Group{}, ErrNotFound
		}
		return repository.Group{}, ErrInternal
	}
	return g, nil
}

func (u *Group) Delete(ctx context.Context, code string) error {
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
