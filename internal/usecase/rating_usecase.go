package usecase

import (
	"context"
	"errors"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
)

type RatingUsecase interface {
	List(ctx context.Context) ([]repository.Rating, error)
	Get(ctx context.Context, value int) (repository.Rating, error)
	Create(ctx context.Context, n repository.Rating) (repository.Rating, error)
	Update(ctx context.Context, n repository.Rating) (repository.Rating, error)
	Delete(ctx context.Context, value int) error
}

type Rating struct {
	repo repository.RatingRepository
}

func NewRatingUsecase(repo repository.RatingRepository) *Rating {
	return &Rating{repo: repo}
}

func (u *Rating) List(ctx context.Context) ([]repository.Rating, error) {
	items, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Rating) Get(ctx context.Context, value int) (repository.Rating, error) {
	n, err := u.repo.GetByValue(ctx, value)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Rating{}, ErrNotFound
		}
		return repository.Rating{}, ErrInternal
	}
	return n, nil
}

func (u *Rating) Create(ctx context.Context, n repository.Rating) (repository.Rating, error) {
	if n.Value <= 0 {
		return repository.Rating{}, ErrInvalidInput
	}

	if err := u.repo.Create(ctx, n); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return repository.Rating{}, ErrAlreadyExists
		}
		return repository.Rating{}, ErrInternal
	}
	return n, nil
}

func (u *Rating) Update(ctx context.Context, n repository.Rating) (repository.Rating, error) {
	if n.Value <= 0 {
		return repository.Rating{}, ErrInvalidInput
	}

	if err := u.repo.Update(ctx, n); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Rating{}, ErrNotFound
		}
		return repository.Rating{}, ErrInternal
	}
	return n, nil
}

func (u *Rating) Delete(ctx context.Context, value int) error {
	inUse, err := u.repo.InUse(ctx, value)
	if err != nil {
		return ErrInternal
	}
	if inUse {
		return ErrInUse
	}

	if err := u.repo.Delete(ctx, value); err != nil {
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
