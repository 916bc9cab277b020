package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
)

type CompetencyUsecase interface {
	List(ctx context.Context) ([]repository.Competency, error)
	Get(ctx context.Context, label string) (repository.Competency, error)
	Create(ctx context.Context, c repository.Competency) (repository.Competency, error)
	Update(ctx context.Context, c repository.Competency) (repository.Competency, error)
	Delete(ctx context.Context, label string) error
}

type Competency struct {
	repo repository.CompetencyRepository
}

func NewCompetencyUsecase(repo repository.CompetencyRepository) *Competency {
	return &Competency{repo: repo}
}

func (u *Competency) List(ctx context.Context) ([]repository.Competency, error) {
	items, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Competency) Get(ctx context.Context, label string) (repository.Competency, error) {
	c, err := u.repo.GetByLabel(ctx, label)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Competency{}, ErrNotFound
		}
		return repository.Competency{}, ErrInternal
	}
	return c, nil
}

func (u *Competency) Create(ctx context.Context, c repository.Competency) (repository.Competency, error) {
	c.Label = strings.TrimSpace(c.Label)
	if c.Label == "" {
		return repository.Competency{}, ErrInvalidInput
	}

	if err := u.repo.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return repository.Competency{}, ErrAlreadyExists
		}
		return repository.Competency{}, ErrInternal
	}
	return c, nil
}

func (u *Competency) Update(ctx context.Context, c repository.Competency) (repository.Competency, error) {
	c.Label = strings.TrimSpace(c.Label)
	if c.Label == "" {
		return repository.Competency{}, ErrInvalidInput
	}

	if err := u.repo.Update(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Competency{}, ErrNotFound
		}
		return repository.Competency{}, ErrInternal
	}
	return c, nil
}

// Delete refuses to orphan skill-matrix entries or request requirements
// that still reference the competency.
func (u *Competency) Delete(ctx context.Context, label string) error {
	inUse, err := u.repo.InUse(ctx, label)
	if err != nil {
		return ErrInternal
	}
	if inUse {
		return ErrInUse
	}

	if err := u.repo.Delete(ctx, label); err != nil {
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
