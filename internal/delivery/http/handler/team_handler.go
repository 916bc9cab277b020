package handler

import (
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/dto"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/pkg/response"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TeamHandler struct {
	uc usecase.TeamUsecase
}

type createTeamRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"nom"`
	Description string  `json:"description"`
	GroupCode   *string `json:"groupement"`
}

type updateTeamRequest struct {
	Name        string  `json:"nom"`
	Description string  `json:"description"`
	GroupCode   *string `json:"groupement"`
}

func NewTeamHandler(uc usecase.TeamUsecase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

func (h *TeamHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/equipes")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:code", h.Get)
	grp.Put("/:code", h.Update)
	grp.Delete("/:code", h.Delete)
}

func (h *TeamHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.TeamResponsesFrom(items))
}

func (h *TeamHandler) Get(c fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), c.Params("code"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.TeamResponseFrom(item))
}

func (h *TeamHandler) Create(c fiber.Ctx) error {
	var req createTeamRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	created, err := h.uc.Create(c.Context(), repository.Team{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		GroupCode:   req.GroupCode,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.TeamResponseFrom(created))
}

func (h *TeamHandler) Update(c fiber.Ctx) error {
	var req updateTeamRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	updated, err := h.uc.Update(c.Context(), repository.Team{
		Code:        c.Params("code"),
		Name:        req.Name,
		Description: req.Description,
		GroupCode:   req.GroupCode,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.TeamResponseFrom(updated))
}

func (h *TeamHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("code")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
