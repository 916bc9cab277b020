package dto

import (
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/usecase"
)

type GroupResponse struct {
	Code      string `json:"code"`
	Label     string `json:"libelle"`
	Direction string `json:"direction"`
}

func GroupResponseFrom(g repository.Group) GroupResponse {
	return GroupResponse{Code: g.Code, Label: g.Label, Direction: g.Direction}
}

func GroupResponsesFrom(items []repository.Group) []GroupResponse {
	res := make([]GroupResponse, 0, len(items))
	for _, it := range items {
		res = append(res, GroupResponseFrom(it))
	}
	return res
}

type PersonResponse struct {
	ID        string  `json:"id"`
	LastName  string  `json:"nom"`
	FirstName string  `json:"prenom"`
	Role      string  `json:"role"`
	TeamCode  *string `json:"equipe"`
}

func PersonResponseFrom(p repository.Person) PersonResponse {
	return PersonResponse{
		ID:        p.ID,
		LastName:  p.LastName,
		FirstName: p.FirstName,
		Role:      p.Role,
		TeamCode:  p.TeamCode,
	}
}

func PersonResponsesFrom(items []repository.Person) []PersonResponse {
	res := make([]PersonResponse, 0, len(items))
	for _, it := range items {
		res = append(res, PersonResponseFrom(it))
	}
	return res
}

type TeamResponse struct {
	Code        string           `json:"code"`
	Name        string           `json:"nom"`
	Description string           `json:"description"`
	GroupCode   *string          `json:"groupement"`
	Members     []PersonResponse `json:"membres"`
}

func TeamResponseFrom(t usecase.TeamItem) TeamResponse {
	return TeamResponse{
		Code:        t.Code,
		Name:        t.Name,
		Description: t.Description,
		GroupCode:   t.GroupCode,
		Members:     PersonResponsesFrom(t.Members),
	}
}

func TeamResponsesFrom(items []usecase.TeamItem) []TeamResponse {
	res := make([]TeamResponse, 0, len(items))
	for _, it := range items {
		res = append(res, TeamResponseFrom(it))
	}
	return res
}
