package request

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func validRequest() StaffingRequest {
	end := time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC)
	return StaffingRequest{
		ID:        uuid.New(),
		Requester: "M12345",
		Nature:    NatureTemporary,
		StartDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		Destination: Destination{
			Type: DestinationTeam,
			Code: "EQ-PARIS",
		},
		Requirements: []Requirement{
			{CompetencyLabel: "JAVA", MinRating: 3},
		},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*StaffingRequest)
		wantErr error
	}{
		{"valid", func(r *StaffingRequest) {}, nil},
		{"blank requester", func(r *StaffingRequest) { r.Requester = "  " }, ErrMissingRequester},
		{"no destination code", func(r *StaffingRequest) { r.Destination.Code = "" }, ErrMissingDestination},
		{"no destination type", func(r *StaffingRequest) { r.Destination.Type = "" }, ErrMissingDestination},
		{"no nature", func(r *StaffingRequest) { r.Nature = "" }, ErrMissingNature},
		{"no start date", func(r *StaffingRequest) { r.StartDate = time.Time{} }, ErrMissingStartDate},
		{"temporary without end date", func(r *StaffingRequest) { r.EndDate = nil }, ErrMissingEndDate},
		{"end before start", func(r *StaffingRequest) {
			end := r.StartDate.AddDate(0, 0, -1)
			r.EndDate = &end
		}, ErrEndBeforeStart},
		{"end equals start", func(r *StaffingRequest) {
			end := r.StartDate
			r.EndDate = &end
		}, ErrEndBeforeStart},
		{"permanent without end date", func(r *StaffingRequest) {
			r.Nature = NaturePermanent
			r.EndDate = nil
		}, nil},
		{"no requirements", func(r *StaffingRequest) { r.Requirements = nil }, ErrNoRequirements},
		{"duplicate requirement", func(r *StaffingRequest) {
			r.Requirements = append(r.Requirements, Requirement{CompetencyLabel: "JAVA", MinRating: 5})
		}, ErrDuplicateRequirement},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRequest()
			tc.mutate(&r)
			err := r.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestActiveAt(t *testing.T) {
	r := validRequest()

	if !r.ActiveAt(r.StartDate) {
		t.Fatalf("start date must be inside the window")
	}
	if !r.ActiveAt(*r.EndDate) {
		t.Fatalf("end date must be inside the window")
	}
	if r.ActiveAt(r.StartDate.AddDate(0, 0, -1)) {
		t.Fatalf("day before start must be outside the window")
	}
	if r.ActiveAt(r.EndDate.AddDate(0, 0, 1)) {
		t.Fatalf("day after end must be outside the window")
	}

	r.EndDate = nil
	if !r.ActiveAt(r.StartDate.AddDate(10, 0, 0)) {
		t.Fatalf("open-ended request must stay active")
	}
}

func TestParseNature(t *testing.T) {
	if n, ok := ParseNature(" temporary "); !ok || n != NatureTemporary {
		t.Fatalf("expected TEMPORARY, got %q ok=%v", n, ok)
	}
	if _, ok := ParseNature("SAISONNIER"); ok {
		t.Fatalf("unknown nature must be rejected")
	}
}

func TestParseDestinationType(t *testing.T) {
	if d, ok := ParseDestinationType("equipe"); !ok || d != DestinationTeam {
		t.Fatalf("expected EQUIPE, got %q ok=%v", d, ok)
	}
	if _, ok := ParseDestinationType("DIRECTION"); ok {
		t.Fatalf("unknown destination type must be rejected")
	}
}
