package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Nature string

const (
	NaturePermanent Nature = "PERMANENT"
	NatureTemporary Nature = "TEMPORARY"
	NatureExpertise Nature = "EXPERTISE"
)

func ParseNature(raw string) (Nature, bool) {
	switch Nature(strings.ToUpper(strings.TrimSpace(raw))) {
	case NaturePermanent:
		return NaturePermanent, true
	case NatureTemporary:
		return NatureTemporary, true
	case NatureExpertise:
		return NatureExpertise, true
	}
	return "", false
}

type DestinationType string

const (
	DestinationTeam  DestinationType = "EQUIPE"
	DestinationGroup DestinationType = "GROUPEMENT"
)

func ParseDestinationType(raw string) (DestinationType, bool) {
	switch DestinationType(strings.ToUpper(strings.TrimSpace(raw))) {
	case DestinationTeam:
		return DestinationTeam, true
	case DestinationGroup:
		return DestinationGroup, true
	}
	return "", false
}

// Destination is the tagged union of the two staffing targets. Name is
// denormalized from the referenced team or group and re-resolved on read.
type Destination struct {
	Type DestinationType
	Code string
	Name string
}

type Requirement struct {
	CompetencyLabel string
	MinRating       int
}

type StaffingRequest struct {
	ID           uuid.UUID
	Requester    string
	Description  string
	Nature       Nature
	StartDate    time.Time
	EndDate      *time.Time
	Destination  Destination
	Requirements []Requirement
}

var (
	ErrMissingRequester    = errors.New("requester is required")
	ErrMissingDestination  = errors.New("destination is required")
	ErrMissingNature       = errors.New("nature is required")
	ErrMissingStartDate    = errors.New("start date is required")
	ErrMissingEndDate      = errors.New("temporary request requires an end date")
	ErrEndBeforeStart      = errors.New("end date must be after start date")
	ErrNoRequirements      = errors.New("at least one requirement is required")
	ErrDuplicateRequirement = errors.New("duplicate competency in requirements")
)

// Validate is the gate run before any create or update is persisted.
func (r StaffingRequest) Validate() error {
	if strings.TrimSpace(r.Requester) == "" {
		return ErrMissingRequester
	}
	if r.Destination.Code == "" || r.Destination.Type == "" {
		return ErrMissingDestination
	}
	if r.Nature == "" {
		return ErrMissingNature
	}
	if r.StartDate.IsZero() {
		return ErrMissingStartDate
	}
	if r.Nature == NatureTemporary {
		if r.EndDate == nil {
			return ErrMissingEndDate
		}
		if !r.EndDate.After(r.StartDate) {
			return ErrEndBeforeStart
		}
	}
	if len(r.Requirements) == 0 {
		return ErrNoRequirements
	}

	seen := make(map[string]struct{}, len(r.Requirements))
	for _, req := range r.Requirements {
		if _, dup := seen[req.CompetencyLabel]; dup {
			return ErrDuplicateRequirement
		}
		seen[req.CompetencyLabel] = struct{}{}
	}
	return nil
}

// ActiveAt reports whether the request window covers d, bounds inclusive.
func (r StaffingRequest) ActiveAt(d time.Time) bool {
	if r.StartDate.After(d) {
		return false
	}
	return r.EndDate == nil || !r.EndDate.Before(d)
}
