package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
)

// UpdatePersonInput supports partial updates: a nil field is left
// unchanged. TeamCode is three-state — nil keeps the current team, the
// empty string detaches, any other value reassigns.
type UpdatePersonInput struct {
	LastName  *string
	FirstName *string
	Role      *string
	TeamCode  *string
}

type PersonUsecase interface {
	List(ctx context.Context) ([]repository.Person, error)
	Get(ctx context.Context, id string) (repository.Person, error)
	Create(ctx context.Context, p repository.Person) (repository.Person, error)
	Update(ctx context.Context, id string, in UpdatePersonInput) (repository.Person, error)
	Delete(ctx context.Context, id string) error
}

type Person struct {
	people repository.PersonRepository
	teams  repository.TeamRepository
}

func NewPersonUsecase(people repository.PersonRepository, teams repository.TeamRepository) *Person {
	return &Person{people: people, teams: teams}
}

func (u *Person) List(ctx context.Context) ([]repository.Person, error) {
	items, err := u.people.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Person) Get(ctx context.Context, id string) (repository.Person, error) {
	p, err := u.people.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Person{}, ErrNotFound
		}
		return repository.Person{}, ErrInternal
	}
	return p, nil
}

func (u *Person) Create(ctx context.Context, p repository.Person) (repository.Person, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return repository.Person{}, ErrInvalidInput
	}

	if p.TeamCode != nil && *p.TeamCode == "" {
		p.TeamCode = nil
	}
	if err := u.resolveTeam(ctx, p.TeamCode); err != nil {
		return repository.Person{}, err
	}

	if err := u.people.Create(ctx, p); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return repository.Person{}, ErrAlreadyExists
		case errors.Is(err, repository.ErrReferenced):
			return repository.Person{}, ErrNotFound
		default:
			return repository.Person{}, ErrInternal
		}
	}
	return p, nil
}

func (u *Person) Update(ctx context.Context, id string, in UpdatePersonInput) (repository.Person, error) {
	p, err := u.people.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Person{}, ErrNotFound
		}
		return repository.Person{}, ErrInternal
	}

	if in.LastName != nil {
		p.LastName = *in.LastName
	}
	if in.FirstName != nil {
		p.FirstName = *in.FirstName
	}
	if in.Role != nil {
		p.Role = *in.Role
	}
	if in.TeamCode != nil {
		if *in.TeamCode == "" {
			p.TeamCode = nil
		} else {
			code := *in.TeamCode
			if err := u.resolveTeam(ctx, &code); err != nil {
				return repository.Person{}, err
			}
			p.TeamCode = &code
		}
	}

	if err := u.people.Update(ctx, p); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return repository.Person{}, ErrNotFound
		case errors.Is(err, repository.ErrReferenced):
			return repository.Person{}, ErrNotFound
		default:
			return repository.Person{}, ErrInternal
		}
	}
	return p, nil
}

func (u *Person) Delete(ctx context.Context, id string) error {
	if err := u.people.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Person) resolveTeam(ctx context.Context, teamCode *string) error {
	if teamCode == nil {
		return nil
	}
	exists, err := u.teams.Exists(ctx, *teamCode)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}
