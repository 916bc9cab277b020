package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/domain/request"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"

	"github.com/google/uuid"
)

// RequestNotifier pushes staffing-request lifecycle events to connected
// dashboards. Notification is best-effort and never fails the operation.
type RequestNotifier interface {
	RequestCreated(id uuid.UUID)
	RequestUpdated(id uuid.UUID)
	RequestDeleted(id uuid.UUID)
}

type StaffingRequestUsecase interface {
	List(ctx context.Context) ([]request.StaffingRequest, error)
	Get(ctx context.Context, id uuid.UUID) (request.StaffingRequest, error)
	ListByRequester(ctx context.Context, requester string) ([]request.StaffingRequest, error)
	ListByCompetency(ctx context.Context, competencyLabel string) ([]request.StaffingRequest, error)
	ListActiveAt(ctx context.Context, date time.Time) ([]request.StaffingRequest, error)
	Create(ctx context.Context, r request.StaffingRequest) (request.StaffingRequest, error)
	Update(ctx context.Context, r request.StaffingRequest) (request.StaffingRequest, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type StaffingRequest struct {
	requests     repository.StaffingRequestRepository
	teams        repository.TeamRepository
	groups       repository.GroupRepository
	competencies repository.CompetencyRepository
	ratings      repository.RatingRepository
	notifier     RequestNotifier
}

func NewStaffingRequestUsecase(
	requests repository.StaffingRequestRepository,
	teams repository.TeamRepository,
	groups repository.GroupRepository,
	competencies repository.CompetencyRepository,
	ratings repository.RatingRepository,
	notifier RequestNotifier,
) *StaffingRequest {
	return &StaffingRequest{
		requests:     requests,
		teams:        teams,
		groups:       groups,
		competencies: competencies,
		ratings:      ratings,
		notifier:     notifier,
	}
}

func (u *StaffingRequest) List(ctx context.Context) ([]request.StaffingRequest, error) {
	items, err := u.requests.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *StaffingRequest) Get(ctx context.Context, id uuid.UUID) (request.StaffingRequest, error) {
	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return request.StaffingRequest{}, ErrNotFound
		}
		return request.StaffingRequest{}, ErrInternal
	}
	return r, nil
}

func (u *StaffingRequest) ListByRequester(ctx context.Context, requester string) ([]request.StaffingRequest, error) {
	requester = strings.TrimSpace(requester)
	if requester == "" {
		return nil, ErrInvalidInput
	}
	items, err := u.requests.FindByRequester(ctx, requester)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *StaffingRequest) ListByCompetency(ctx context.Context, competencyLabel string) ([]request.StaffingRequest, error) {
	competencyLabel = strings.TrimSpace(competencyLabel)
	if competencyLabel == "" {
		return nil, ErrInvalidInput
	}
	items, err := u.requests.FindByCompetency(ctx, competencyLabel)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *StaffingRequest) ListActiveAt(ctx context.Context, date time.Time) ([]request.StaffingRequest, error) {
	items, err := u.requests.FindActiveAt(ctx, date)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// Create runs the validity gate, resolves the destination and every
// requirement, then persists request and requirements as one unit. All
// resolution happens before the first write, so a failure leaves nothing
// behind.
func (u *StaffingRequest) Create(ctx context.Context, r request.StaffingRequest) (request.StaffingRequest, error) {
	if err := r.Validate(); err != nil {
		return request.StaffingRequest{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	} else {
		exists, err := u.requests.ExistsByID(ctx, r.ID)
		if err != nil {
			return request.StaffingRequest{}, ErrInternal
		}
		if exists {
			return request.StaffingRequest{}, ErrAlreadyExists
		}
	}

	name, err := u.resolveDestination(ctx, r.Destination)
	if err != nil {
		return request.StaffingRequest{}, err
	}
	r.Destination.Name = name

	if err := u.resolveRequirements(ctx, r.Requirements); err != nil {
		return request.StaffingRequest{}, err
	}

	if err := u.requests.Create(ctx, r); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return request.StaffingRequest{}, ErrAlreadyExists
		case errors.Is(err, repository.ErrReferenced):
			return request.StaffingRequest{}, ErrNotFound
		default:
			return request.StaffingRequest{}, ErrInternal
		}
	}

	if u.notifier != nil {
		u.notifier.RequestCreated(r.ID)
	}
	return u.Get(ctx, r.ID)
}

// Update applies the same gate and resolution as Create and replaces the
// requirement list whole.
func (u *StaffingRequest) Update(ctx context.Context, r request.StaffingRequest) (request.StaffingRequest, error) {
	if r.ID == uuid.Nil {
		return request.StaffingRequest{}, ErrInvalidInput
	}
	if err := r.Validate(); err != nil {
		return request.StaffingRequest{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	name, err := u.resolveDestination(ctx, r.Destination)
	if err != nil {
		return request.StaffingRequest{}, err
	}
	r.Destination.Name = name

	if err := u.resolveRequirements(ctx, r.Requirements); err != nil {
		return request.StaffingRequest{}, err
	}

	if err := u.requests.Update(ctx, r); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return request.StaffingRequest{}, ErrNotFound
		case errors.Is(err, repository.ErrReferenced):
			return request.StaffingRequest{}, ErrNotFound
		default:
			return request.StaffingRequest{}, ErrInternal
		}
	}

	if u.notifier != nil {
		u.notifier.RequestUpdated(r.ID)
	}
	return u.Get(ctx, r.ID)
}

func (u *StaffingRequest) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.requests.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	if u.notifier != nil {
		u.notifier.RequestDeleted(id)
	}
	return nil
}

// resolveDestination checks that the target team or group exists and
// returns its current display name for denormalization.
func (u *StaffingRequest) resolveDestination(ctx context.Context, d request.Destination) (string, error) {
	switch d.Type {
	case request.DestinationTeam:
		t, err := u.teams.GetByCode(ctx, d.Code)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return "", ErrNotFound
			}
			return "", ErrInternal
		}
		return t.Name, nil
	case request.DestinationGroup:
		g, err := u.groups.GetByCode(ctx, d.Code)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return "", ErrNotFound
			}
			return "", ErrInternal
		}
		return g.Label, nil
	default:
		return "", ErrInvalidInput
	}
}

func (u *StaffingRequest) resolveRequirements(ctx context.Context, reqs []request.Requirement) error {
	for _, rq := range reqs {
		exists, err := u.competencies.Exists(ctx, rq.CompetencyLabel)
		if err != nil {
			return ErrInternal
		}
		if !exists {
			return ErrNotFound
		}

		exists, err = u.ratings.Exists(ctx, rq.MinRating)
		if err != nil {
			return ErrInternal
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}
