package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
)

type SkillEntryInput struct {
	PersonID        string
	CompetencyLabel string
	RatingValue     int
}

type SkillMatrixUsecase interface {
	Get(ctx context.Context, personID, competencyLabel string) (repository.SkillEntry, error)
	ListByPerson(ctx context.Context, personID string) ([]repository.SkillEntry, error)
	ListByCompetency(ctx context.Context, competencyLabel string) ([]repository.SkillEntry, error)
	Create(ctx context.Context, in SkillEntryInput) (repository.SkillEntry, error)
	Update(ctx context.Context, in SkillEntryInput) (repository.SkillEntry, error)
	Delete(ctx context.Context, personID, competencyLabel string) error
}

type SkillMatrix struct {
	matrix       repository.SkillMatrixRepository
	people       repository.PersonRepository
	competencies repository.CompetencyRepository
	ratings      repository.RatingRepository
	cache        QueryCache
}

func NewSkillMatrixUsecase(
	matrix repository.SkillMatrixRepository,
	people repository.PersonRepository,
	competencies repository.CompetencyRepository,
	ratings repository.RatingRepository,
	cache QueryCache,
) *SkillMatrix {
	return &SkillMatrix{matrix: matrix, people: people, competencies: competencies, ratings: ratings, cache: cache}
}

func (u *SkillMatrix) Get(ctx context.Context, personID, competencyLabel string) (repository.SkillEntry, error) {
	e, err := u.matrix.Get(ctx, personID, competencyLabel)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.SkillEntry{}, ErrNotFound
		}
		return repository.SkillEntry{}, ErrInternal
	}
	return e, nil
}

func (u *SkillMatrix) ListByPerson(ctx context.Context, personID string) ([]repository.SkillEntry, error) {
	exists, err := u.people.Exists(ctx, personID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrNotFound
	}

	items, err := u.matrix.FindByPerson(ctx, personID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *SkillMatrix) ListByCompetency(ctx context.Context, competencyLabel string) ([]repository.SkillEntry, error) {
	exists, err := u.competencies.Exists(ctx, competencyLabel)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrNotFound
	}

	items, err := u.matrix.FindByCompetency(ctx, competencyLabel)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *SkillMatrix) Create(ctx context.Context, in SkillEntryInput) (repository.SkillEntry, error) {
	if err := u.resolve(ctx, &in); err != nil {
		return repository.SkillEntry{}, err
	}

	err := u.matrix.Create(ctx, repository.SkillEntry{
		PersonID:        in.PersonID,
		CompetencyLabel: in.CompetencyLabel,
		RatingValue:     in.RatingValue,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return repository.SkillEntry{}, ErrAlreadyExists
		case errors.Is(err, repository.ErrReferenced):
			return repository.SkillEntry{}, ErrNotFound
		default:
			return repository.SkillEntry{}, ErrInternal
		}
	}

	u.invalidateAvailability(ctx)
	return u.Get(ctx, in.PersonID, in.CompetencyLabel)
}

func (u *SkillMatrix) Update(ctx context.Context, in SkillEntryInput) (repository.SkillEntry, error) {
	if err := u.resolve(ctx, &in); err != nil {
		return repository.SkillEntry{}, err
	}

	err := u.matrix.Update(ctx, repository.SkillEntry{
		PersonID:        in.PersonID,
		CompetencyLabel: in.CompetencyLabel,
		RatingValue:     in.RatingValue,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return repository.SkillEntry{}, ErrNotFound
		case errors.Is(err, repository.ErrReferenced):
			return repository.SkillEntry{}, ErrNotFound
		default:
			return repository.SkillEntry{}, ErrInternal
		}
	}

	u.invalidateAvailability(ctx)
	return u.Get(ctx, in.PersonID, in.CompetencyLabel)
}

func (u *SkillMatrix) Delete(ctx context.Context, personID, competencyLabel string) error {
	if err := u.matrix.Delete(ctx, personID, competencyLabel); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	u.invalidateAvailability(ctx)
	return nil
}

// The cached availability filters read rating values out of the matrix, so
// any matrix write has to flush them.
func (u *SkillMatrix) invalidateAvailability(ctx context.Context) {
	if u.cache == nil {
		return
	}
	_ = u.cache.DeleteByPattern(ctx, availableCachePattern)
}

// resolve checks that the person, competency and rating all exist before a
// pair is written.
func (u *SkillMatrix) resolve(ctx context.Context, in *SkillEntryInput) error {
	in.PersonID = strings.TrimSpace(in.PersonID)
	in.CompetencyLabel = strings.TrimSpace(in.CompetencyLabel)
	if in.PersonID == "" || in.CompetencyLabel == "" {
		return ErrInvalidInput
	}

	exists, err := u.people.Exists(ctx, in.PersonID)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrNotFound
	}

	exists, err = u.competencies.Exists(ctx, in.CompetencyLabel)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrNotFound
	}

	exists, err = u.ratings.Exists(ctx, in.RatingValue)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}
