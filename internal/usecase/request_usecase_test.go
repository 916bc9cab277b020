package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/domain/request"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"

	"github.com/google/uuid"
)

func requestFixture() (*StaffingRequest, *mockRequestRepo, *recordingNotifier) {
	requests := newMockRequestRepo()
	teams := newMockTeamRepo(repository.Team{Code: "EQ-PARIS", Name: "Equipe Paris"})
	groups := newMockGroupRepo(repository.Group{Code: "GR-IDF", Label: "Groupement IDF"})
	competencies := newMockCompetencyRepo(
		repository.Competency{Label: "JAVA"},
		repository.Competency{Label: "GO"},
	)
	ratings := newMockRatingRepo(
		repository.Rating{Value: 3, Label: "Confirme"},
		repository.Rating{Value: 4, Label: "Avance"},
	)
	notifier := &recordingNotifier{}
	uc := NewStaffingRequestUsecase(requests, teams, groups, competencies, ratings, notifier)
	return uc, requests, notifier
}

func validStaffingRequest() request.StaffingRequest {
	end := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	return request.StaffingRequest{
		Requester: "M12345",
		Nature:    request.NatureTemporary,
		StartDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		Destination: request.Destination{
			Type: request.DestinationTeam,
			Code: "EQ-PARIS",
		},
		Requirements: []request.Requirement{
			{CompetencyLabel: "JAVA", MinRating: 3},
		},
	}
}

func TestRequestCreate(t *testing.T) {
	uc, requests, notifier := requestFixture()

	created, err := uc.Create(context.Background(), validStaffingRequest())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if created.Destination.Name != "Equipe Paris" {
		t.Fatalf("expected resolved destination name, got %q", created.Destination.Name)
	}
	if len(requests.items) != 1 {
		t.Fatalf("expected 1 stored request, got %d", len(requests.items))
	}
	if len(notifier.created) != 1 || notifier.created[0] != created.ID {
		t.Fatalf("expected a created notification for %s", created.ID)
	}
}

func TestRequestCreateGroupDestination(t *testing.T) {
	uc, _, _ := requestFixture()

	r := validStaffingRequest()
	r.Destination = request.Destination{Type: request.DestinationGroup, Code: "GR-IDF"}

	created, err := uc.Create(context.Background(), r)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Destination.Name != "Groupement IDF" {
		t.Fatalf("expected group label as destination name, got %q", created.Destination.Name)
	}
}

func TestRequestCreateInvalid(t *testing.T) {
	uc, requests, notifier := requestFixture()

	r := validStaffingRequest()
	r.Requirements = nil

	if _, err := uc.Create(context.Background(), r); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(requests.items) != 0 {
		t.Fatalf("invalid request must not be persisted")
	}
	if len(notifier.created) != 0 {
		t.Fatalf("invalid request must not notify")
	}
}

func TestRequestCreateUnknownDestination(t *testing.T) {
	uc, requests, _ := requestFixture()

	r := validStaffingRequest()
	r.Destination.Code = "EQ-GHOST"

	if _, err := uc.Create(context.Background(), r); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(requests.items) != 0 {
		t.Fatalf("resolution failure must leave nothing behind")
	}
}

func TestRequestCreateUnknownRequirementRefs(t *testing.T) {
	uc, requests, _ := requestFixture()

	r := validStaffingRequest()
	r.Requirements = []request.Requirement{{CompetencyLabel: "COBOL", MinRating: 3}}
	if _, err := uc.Create(context.Background(), r); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown competency, got %v", err)
	}

	r = validStaffingRequest()
	r.Requirements = []request.Requirement{{CompetencyLabel: "JAVA", MinRating: 9}}
	if _, err := uc.Create(context.Background(), r); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown rating, got %v", err)
	}

	if len(requests.items) != 0 {
		t.Fatalf("resolution failure must leave nothing behind")
	}
}

func TestRequestCreateExplicitIDConflict(t *testing.T) {
	uc, _, _ := requestFixture()

	r := validStaffingRequest()
	r.ID = uuid.New()

	if _, err := uc.Create(context.Background(), r); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Create(context.Background(), r); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists on id reuse, got %v", err)
	}
}

func TestRequestUpdateReplacesRequirements(t *testing.T) {
	uc, requests, notifier := requestFixture()

	created, err := uc.Create(context.Background(), validStaffingRequest())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	created.Requirements = []request.Requirement{
		{CompetencyLabel: "GO", MinRating: 4},
	}
	updated, err := uc.Update(context.Background(), created)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(updated.Requirements) != 1 || updated.Requirements[0].CompetencyLabel != "GO" {
		t.Fatalf("expected requirement list replaced whole, got %+v", updated.Requirements)
	}

	stored := requests.items[created.ID]
	if len(stored.Requirements) != 1 || stored.Requirements[0].CompetencyLabel != "GO" {
		t.Fatalf("stored requirements not replaced: %+v", stored.Requirements)
	}
	if len(notifier.updated) != 1 {
		t.Fatalf("expected an updated notification")
	}
}

func TestRequestDelete(t *testing.T) {
	uc, _, notifier := requestFixture()

	created, err := uc.Create(context.Background(), validStaffingRequest())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := uc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(notifier.deleted) != 1 || notifier.deleted[0] != created.ID {
		t.Fatalf("expected a deleted notification for %s", created.ID)
	}
	if err := uc.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRequestListActiveAt(t *testing.T) {
	uc, _, _ := requestFixture()

	if _, err := uc.Create(context.Background(), validStaffingRequest()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	active, err := uc.ListActiveAt(context.Background(), time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active request, got %d", len(active))
	}

	active, err = uc.ListActiveAt(context.Background(), time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active request past the end date, got %d", len(active))
	}
}

func TestRequestListByRequesterBlank(t *testing.T) {
	uc, _, _ := requestFixture()
	if _, err := uc.ListByRequester(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
