package handler

import (
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/dto"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/pkg/response"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type loginRequest struct {
	Matricule string `json:"matricule"`
	Password  string `json:"mot_de_passe"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/auth")
	grp.Post("/login", h.Login)
	grp.Post("/refresh", h.Refresh)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	usr, access, refresh, err := h.uc.Login(c.Context(), usecase.LoginInput{
		Matricule: req.Matricule,
		Password:  req.Password,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.LoginResponse{
		User:   dto.UserResponseFrom(usr),
		Tokens: dto.TokenPairResponse{AccessToken: access, RefreshToken: refresh},
	})
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var req refreshRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}
	if req.RefreshToken == "" {
		return badRequest("refresh_token is required", nil)
	}

	access, refresh, err := h.uc.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}
