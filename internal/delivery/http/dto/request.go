package dto

import (
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/domain/request"

	"github.com/google/uuid"
)

type DestinationResponse struct {
	Type string `json:"type"`
	Code string `json:"code"`
	Name string `json:"nom"`
}

type RequirementResponse struct {
	CompetencyLabel string `json:"competence"`
	MinRating       int    `json:"note_minimale"`
}

func RequirementResponseFrom(rq request.Requirement) RequirementResponse {
	return RequirementResponse{CompetencyLabel: rq.CompetencyLabel, MinRating: rq.MinRating}
}

func RequirementResponsesFrom(items []request.Requirement) []RequirementResponse {
	res := make([]RequirementResponse, 0, len(items))
	for _, it := range items {
		res = append(res, RequirementResponseFrom(it))
	}
	return res
}

type StaffingRequestResponse struct {
	ID           uuid.UUID             `json:"id"`
	Requester    string                `json:"demandeur"`
	Description  string                `json:"description"`
	Nature       string                `json:"nature"`
	StartDate    string                `json:"date_debut"`
	EndDate      *string               `json:"date_fin"`
	Destination  DestinationResponse   `json:"destination"`
	Requirements []RequirementResponse `json:"competences_requises"`
}

func StaffingRequestResponseFrom(r request.StaffingRequest) StaffingRequestResponse {
	start := r.StartDate.Format(dateLayout)
	return StaffingRequestResponse{
		ID:          r.ID,
		Requester:   r.Requester,
		Description: r.Description,
		Nature:      string(r.Nature),
		StartDate:   start,
		EndDate:     formatDate(r.EndDate),
		Destination: DestinationResponse{
			Type: string(r.Destination.Type),
			Code: r.Destination.Code,
			Name: r.Destination.Name,
		},
		Requirements: RequirementResponsesFrom(r.Requirements),
	}
}

func StaffingRequestResponsesFrom(items []request.StaffingRequest) []StaffingRequestResponse {
	res := make([]StaffingRequestResponse, 0, len(items))
	for _, it := range items {
		res = append(res, StaffingRequestResponseFrom(it))
	}
	return res
}
