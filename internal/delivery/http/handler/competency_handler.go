package handler

import (
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/dto"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/pkg/response"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompetencyHandler struct {
	uc usecase.CompetencyUsecase
}

type createCompetencyRequest struct {
	Label       string `json:"libelle"`
	Description string `json:"description"`
}

type updateCompetencyRequest struct {
	Description string `json:"description"`
}

func NewCompetencyHandler(uc usecase.CompetencyUsecase) *CompetencyHandler {
	return &CompetencyHandler{uc: uc}
}

func (h *CompetencyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/competences")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:label", h.Get)
	grp.Put("/:label", h.Update)
	grp.Delete("/:label", h.Delete)
}

func (h *CompetencyHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CompetencyResponsesFrom(items))
}

func (h *CompetencyHandler) Get(c fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), c.Params("label"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CompetencyResponseFrom(item))
}

func (h *CompetencyHandler) Create(c fiber.Ctx) error {
	var req createCompetencyRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	created, err := h.uc.Create(c.Context(), repository.Competency{
		Label:       req.Label,
		Description: req.Description,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CompetencyResponseFrom(created))
}

func (h *CompetencyHandler) Update(c fiber.Ctx) error {
	var req updateCompetencyRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	updated, err := h.uc.Update(c.Context(), repository.Competency{
		Label:       c.Params("label"),
		Description: req.Description,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CompetencyResponseFrom(updated))
}

func (h *CompetencyHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("label")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
