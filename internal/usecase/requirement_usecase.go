package usecase

import (
	"context"
	"strings"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/domain/request"

	"github.com/google/uuid"
)

// RequirementUsecase is the nested collection under a staffing request.
// Every mutation re-fetches the parent, edits the requirement list and
// re-saves the whole request through the aggregate write path, so the
// parent validity gate always re-runs.
type RequirementUsecase interface {
	List(ctx context.Context, requestID uuid.UUID) ([]request.Requirement, error)
	Get(ctx context.Context, requestID uuid.UUID, competencyLabel string) (request.Requirement, error)
	Add(ctx context.Context, requestID uuid.UUID, rq request.Requirement) (request.Requirement, error)
	Update(ctx context.Context, requestID uuid.UUID, rq request.Requirement) (request.Requirement, error)
	Delete(ctx context.Context, requestID uuid.UUID, competencyLabel string) error
}

type Requirement struct {
	requests StaffingRequestUsecase
}

func NewRequirementUsecase(requests StaffingRequestUsecase) *Requirement {
	return &Requirement{requests: requests}
}

func (u *Requirement) List(ctx context.Context, requestID uuid.UUID) ([]request.Requirement, error) {
	r, err := u.requests.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return r.Requirements, nil
}

func (u *Requirement) Get(ctx context.Context, requestID uuid.UUID, competencyLabel string) (request.Requirement, error) {
	r, err := u.requests.Get(ctx, requestID)
	if err != nil {
		return request.Requirement{}, err
	}
	for _, rq := range r.Requirements {
		if rq.CompetencyLabel == competencyLabel {
			return rq, nil
		}
	}
	return request.Requirement{}, ErrNotFound
}

func (u *Requirement) Add(ctx context.Context, requestID uuid.UUID, rq request.Requirement) (request.Requirement, error) {
	rq.CompetencyLabel = strings.TrimSpace(rq.CompetencyLabel)
	if rq.CompetencyLabel == "" {
		return request.Requirement{}, ErrInvalidInput
	}

	r, err := u.requests.Get(ctx, requestID)
	if err != nil {
		return request.Requirement{}, err
	}

	for _, existing := range r.Requirements {
		if existing.CompetencyLabel == rq.CompetencyLabel {
			return request.Requirement{}, ErrAlreadyExists
		}
	}

	r.Requirements = append(r.Requirements, rq)
	if _, err := u.requests.Update(ctx, r); err != nil {
		return request.Requirement{}, err
	}
	return rq, nil
}

func (u *Requirement) Update(ctx context.Context, requestID uuid.UUID, rq request.Requirement) (request.Requirement, error) {
	rq.CompetencyLabel = strings.TrimSpace(rq.CompetencyLabel)
	if rq.CompetencyLabel == "" {
		return request.Requirement{}, ErrInvalidInput
	}

	r, err := u.requests.Get(ctx, requestID)
	if err != nil {
		return request.Requirement{}, err
	}

	found := false
	for i, existing := range r.Requirements {
		if existing.CompetencyLabel == rq.CompetencyLabel {
			r.Requirements[i].MinRating = rq.MinRating
			found = true
			break
		}
	}
	if !found {
		return request.Requirement{}, ErrNotFound
	}

	if _, err := u.requests.Update(ctx, r); err != nil {
		return request.Requirement{}, err
	}
	return rq, nil
}

// Delete refuses to remove the last requirement: a request must always
// carry at least one.
func (u *Requirement) Delete(ctx context.Context, requestID uuid.UUID, competencyLabel string) error {
	r, err := u.requests.Get(ctx, requestID)
	if err != nil {
		return err
	}

	idx := -1
	for i, existing := range r.Requirements {
		if existing.CompetencyLabel == competencyLabel {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	if len(r.Requirements) == 1 {
		return ErrInvalidInput
	}

	r.Requirements = append(r.Requirements[:idx], r.Requirements[idx+1:]...)
	_, err = u.requests.Update(ctx, r)
	return err
}
