package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
)

// TeamItem is a team with its computed membership.
type TeamItem struct {
	Code        string
	Name        string
	Description string
	GroupCode   *string
	Members     []repository.Person
}

type TeamUsecase interface {
	List(ctx context.Context) ([]TeamItem, error)
	Get(ctx context.Context, code string) (TeamItem, error)
	Create(ctx context.Context, t repository.Team) (TeamItem, error)
	Update(ctx context.Context, t repository.Team) (TeamItem, error)
	Delete(ctx context.Context, code string) error
}

type Team struct {
	teams  repository.TeamRepository
	groups repository.GroupRepository
	people repository.PersonRepository
}

func NewTeamUsecase(teams repository.TeamRepository, groups repository.GroupRepository, people repository.PersonRepository) *Team {
	return &Team{teams: teams, groups: groups, people: people}
}

func (u *Team) List(ctx context.Context) ([]TeamItem, error) {
	teams, err := u.teams.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]TeamItem, 0, len(teams))
	for _, t := range teams {
		item, err := u.withMembers(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (u *Team) Get(ctx context.Context, code string) (TeamItem, error) {
	t, err := u.teams.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return TeamItem{}, ErrNotFound
		}
		return TeamItem{}, ErrInternal
	}
	return u.withMembers(ctx, t)
}

func (u *Team) Create(ctx context.Context, t repository.Team) (TeamItem, error) {
	t.Code = strings.TrimSpace(t.Code)
	if t.Code == "" {
		return TeamItem{}, ErrInvalidInput
	}
	if err := u.resolveGroup(ctx, t.GroupCode); err != nil {
		return TeamItem{}, err
	}

	if err := u.teams.Create(ctx, t); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return TeamItem{}, ErrAlreadyExists
		case errors.Is(err, repository.ErrReferenced):
			return TeamItem{}, ErrNotFound
		default:
			return TeamItem{}, ErrInternal
		}
	}
	return u.withMembers(ctx, t)
}

func (u *Team) Update(ctx context.Context, t repository.Team) (TeamItem, error) {
	t.Code = strings.TrimSpace(t.Code)
	if t.Code == "" {
		return TeamItem{}, ErrInvalidInput
	}
	if err := u.resolveGroup(ctx, t.GroupCode); err != nil {
		return TeamItem{}, err
	}

	if err := u.teams.Update(ctx, t); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return TeamItem{}, ErrNotFound
		case errors.Is(err, repository.ErrReferenced):
			return TeamItem{}, ErrNotFound
		default:
			return TeamItem{}, ErrInternal
		}
	}
	return u.withMembers(ctx, t)
}

func (u *Team) Delete(ctx context.Context, code string) error {
	inUse, err := u.teams.InUse(ctx, code)
	if err != nil {
		return ErrInternal
	}
	if inUse {
		return ErrInUse
	}

	if err := u.teams.Delete(ctx, code); err != nil {
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

func (u *Team) resolveGroup(ctx context.Context, groupCode *string) error {
	if groupCode == nil || *groupCode == "" {
		return nil
	}
	exists, err := u.groups.Exists(ctx, *groupCode)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

// Membership is computed from people on every read, never stored on the
// team row.
func (u *Team) withMembers(ctx context.Context, t repository.Team) (TeamItem, error) {
	members, err := u.people.FindByTeamCode(ctx, t.Code)
	if err != nil {
		return TeamItem{}, ErrInternal
	}
	return TeamItem{
		Code:        t.Code,
		Name:        t.Name,
		Description: t.Description,
		GroupCode:   t.GroupCode,
		Members:     members,
	}, nil
}
