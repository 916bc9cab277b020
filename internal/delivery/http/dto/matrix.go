package dto

import (
	"time"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/usecase"
)

const dateLayout = "2006-01-02"

type SkillEntryResponse struct {
	PersonID        string `json:"personne_id"`
	CompetencyLabel string `json:"competence"`
	RatingValue     int    `json:"note"`
	RatingLabel     string `json:"note_libelle"`
}

func SkillEntryResponseFrom(e repository.SkillEntry) SkillEntryResponse {
	return SkillEntryResponse{
		PersonID:        e.PersonID,
		CompetencyLabel: e.CompetencyLabel,
		RatingValue:     e.RatingValue,
		RatingLabel:     e.RatingLabel,
	}
}

func SkillEntryResponsesFrom(items []repository.SkillEntry) []SkillEntryResponse {
	res := make([]SkillEntryResponse, 0, len(items))
	for _, it := range items {
		res = append(res, SkillEntryResponseFrom(it))
	}
	return res
}

type ProfileResponse struct {
	PersonID    string  `json:"personne_id"`
	Manager     string  `json:"manager"`
	WindowStart *string `json:"date_debut"`
	WindowEnd   *string `json:"date_fin"`
}

func ProfileResponseFrom(p repository.AvailabilityProfile) ProfileResponse {
	return ProfileResponse{
		PersonID:    p.PersonID,
		Manager:     p.Manager,
		WindowStart: formatDate(p.WindowStart),
		WindowEnd:   formatDate(p.WindowEnd),
	}
}

func ProfileResponsesFrom(items []repository.AvailabilityProfile) []ProfileResponse {
	res := make([]ProfileResponse, 0, len(items))
	for _, it := range items {
		res = append(res, ProfileResponseFrom(it))
	}
	return res
}

type AvailablePersonResponse struct {
	Person  PersonResponse  `json:"personne"`
	Profile ProfileResponse `json:"profil"`
}

func AvailablePersonResponseFrom(a usecase.AvailablePerson) AvailablePersonResponse {
	return AvailablePersonResponse{
		Person:  PersonResponseFrom(a.Person),
		Profile: ProfileResponseFrom(a.Profile),
	}
}

func AvailablePersonResponsesFrom(items []usecase.AvailablePerson) []AvailablePersonResponse {
	res := make([]AvailablePersonResponse, 0, len(items))
	for _, it := range items {
		res = append(res, AvailablePersonResponseFrom(it))
	}
	return res
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
