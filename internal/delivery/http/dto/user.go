package dto

import "github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"

// UserResponse never carries the password hash.
type UserResponse struct {
	Matricule     string   `json:"matricule"`
	Habilitations []string `json:"habilitations"`
}

func UserResponseFrom(u repository.User) UserResponse {
	habs := u.Habilitations
	if habs == nil {
		habs = []string{}
	}
	return UserResponse{Matricule: u.Matricule, Habilitations: habs}
}

func UserResponsesFrom(items []repository.User) []UserResponse {
	res := make([]UserResponse, 0, len(items))
	for _, it := range items {
		res = append(res, UserResponseFrom(it))
	}
	return res
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LoginResponse struct {
	User   UserResponse      `json:"utilisateur"`
	Tokens TokenPairResponse `json:"tokens"`
}
