package handler

import (
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/dto"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/pkg/response"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillMatrixHandler struct {
	uc usecase.SkillMatrixUsecase
}

type createSkillEntryRequest struct {
	PersonID        string `json:"personne_id"`
	CompetencyLabel string `json:"competence"`
	RatingValue     int    `json:"note"`
}

type updateSkillEntryRequest struct {
	RatingValue int `json:"note"`
}

func NewSkillMatrixHandler(uc usecase.SkillMatrixUsecase) *SkillMatrixHandler {
	return &SkillMatrixHandler{uc: uc}
}

func (h *SkillMatrixHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/matrices-competences")
	grp.Post("/", h.Create)
	grp.Get("/personne/:id", h.ListByPerson)
	grp.Get("/competence/:label", h.ListByCompetency)
	grp.Get("/:personId/:label", h.Get)
	grp.Put("/:personId/:label", h.Update)
	grp.Delete("/:personId/:label", h.Delete)
}

func (h *SkillMatrixHandler) Get(c fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), c.Params("personId"), c.Params("label"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillEntryResponseFrom(item))
}

func (h *SkillMatrixHandler) ListByPerson(c fiber.Ctx) error {
	items, err := h.uc.ListByPerson(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillEntryResponsesFrom(items))
}

func (h *SkillMatrixHandler) ListByCompetency(c fiber.Ctx) error {
	items, err := h.uc.ListByCompetency(c.Context(), c.Params("label"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillEntryResponsesFrom(items))
}

func (h *SkillMatrixHandler) Create(c fiber.Ctx) error {
	var req createSkillEntryRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	created, err := h.uc.Create(c.Context(), usecase.SkillEntryInput{
		PersonID:        req.PersonID,
		CompetencyLabel: req.CompetencyLabel,
		RatingValue:     req.RatingValue,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillEntryResponseFrom(created))
}

func (h *SkillMatrixHandler) Update(c fiber.Ctx) error {
	var req updateSkillEntryRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	updated, err := h.uc.Update(c.Context(), usecase.SkillEntryInput{
		PersonID:        c.Params("personId"),
		CompetencyLabel: c.Params("label"),
		RatingValue:     req.RatingValue,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillEntryResponseFrom(updated))
}

func (h *SkillMatrixHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("personId"), c.Params("label")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
