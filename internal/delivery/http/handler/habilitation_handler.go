package handler

import (
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/dto"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/pkg/response"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type HabilitationHandler struct {
	uc usecase.HabilitationUsecase
}

type createHabilitationRequest struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type updateHabilitationRequest struct {
	Description string `json:"description"`
}

func NewHabilitationHandler(uc usecase.HabilitationUsecase) *HabilitationHandler {
	return &HabilitationHandler{uc: uc}
}

func (h *HabilitationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/habilitations")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:code", h.Get)
	grp.Put("/:code", h.Update)
	grp.Delete("/:code", h.Delete)
}

func (h *HabilitationHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.HabilitationResponsesFrom(items))
}

func (h *HabilitationHandler) Get(c fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), c.Params("code"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.HabilitationResponseFrom(item))
}

func (h *HabilitationHandler) Create(c fiber.Ctx) error {
	var req createHabilitationRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	created, err := h.uc.Create(c.Context(), repository.Habilitation{
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.HabilitationResponseFrom(created))
}

func (h *HabilitationHandler) Update(c fiber.Ctx) error {
	var req updateHabilitationRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	updated, err := h.uc.Update(c.Context(), repository.Habilitation{
		Code:        c.Params("code"),
		Description: req.Description,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.HabilitationResponseFrom(updated))
}

func (h *HabilitationHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("code")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
