package dto

import "github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"

type CompetencyResponse struct {
	Label       string `json:"libelle"`
	Description string `json:"description"`
}

func CompetencyResponseFrom(c repository.Competency) CompetencyResponse {
	return CompetencyResponse{Label: c.Label, Description: c.Description}
}

func CompetencyResponsesFrom(items []repository.Competency) []CompetencyResponse {
	res := make([]CompetencyResponse, 0, len(items))
	for _, it := range items {
		res = append(res, CompetencyResponseFrom(it))
	}
	return res
}

type RatingResponse struct {
	Value int    `json:"valeur"`
	Label string `json:"libelle"`
}

func RatingResponseFrom(n repository.Rating) RatingResponse {
	return RatingResponse{Value: n.Value, Label: n.Label}
}

func RatingResponsesFrom(items []repository.Rating) []RatingResponse {
	res := make([]RatingResponse, 0, len(items))
	for _, it := range items {
		res = append(res, RatingResponseFrom(it))
	}
	return res
}

type HabilitationResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func HabilitationResponseFrom(h repository.Habilitation) HabilitationResponse {
	return HabilitationResponse{Code: h.Code, Description: h.Description}
}

func HabilitationResponsesFrom(items []repository.Habilitation) []HabilitationResponse {
	res := make([]HabilitationResponse, 0, len(items))
	for _, it := range items {
		res = append(res, HabilitationResponseFrom(it))
	}
	return res
}
