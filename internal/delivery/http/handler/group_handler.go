package handler

import (
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/dto"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/pkg/response"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type GroupHandler struct {
	uc usecase.GroupUsecase
}

type createGroupRequest struct {
	Code      string `json:"code"`
	Label     string `json:"libelle"`
	Direction string `json:"direction"`
}

type updateGroupRequest struct {
	Label     string `json:"libelle"`
	Direction string `json:"direction"`
}

func NewGroupHandler(uc usecase.GroupUsecase) *GroupHandler {
	return &GroupHandler{uc: uc}
}

func (h *GroupHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/groupements")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:code", h.Get)
	grp.Put("/:code", h.Update)
	grp.Delete("/:code", h.Delete)
}

func (h *GroupHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.GroupResponsesFrom(items))
}

func (h *GroupHandler) Get(c fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), c.Params("code"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.GroupResponseFrom(item))
}

func (h *GroupHandler) Create(c fiber.Ctx) error {
	var req createGroupRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	created, err := h.uc.Create(c.Context(), repository.Group{
		Code:      req.Code,
		Label:     req.Label,
		Direction: req.Direction,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.GroupResponseFrom(created))
}

func (h *GroupHandler) Update(c fiber.Ctx) error {
	var req updateGroupRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	updated, err := h.uc.Update(c.Context(), repository.Group{
		Code:      c.Params("code"),
		Label:     req.Label,
		Direction: req.Direction,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.GroupResponseFrom(updated))
}

func (h *GroupHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("code")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
