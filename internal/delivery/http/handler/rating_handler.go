package handler

import (
	"strconv"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/dto"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/pkg/response"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RatingHandler struct {
	uc usecase.RatingUsecase
}

type createRatingRequest struct {
	Value int    `json:"valeur"`
	Label string `json:"libelle"`
}

type updateRatingRequest struct {
	Label string `json:"libelle"`
}

func NewRatingHandler(uc usecase.RatingUsecase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

func (h *RatingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/notes")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:valeur", h.Get)
	grp.Put("/:valeur", h.Update)
	grp.Delete("/:valeur", h.Delete)
}

func (h *RatingHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RatingResponsesFrom(items))
}

func (h *RatingHandler) Get(c fiber.Ctx) error {
	value, err := ratingValueParam(c)
	if err != nil {
		return err
	}

	item, err := h.uc.Get(c.Context(), value)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RatingResponseFrom(item))
}

func (h *RatingHandler) Create(c fiber.Ctx) error {
	var req createRatingRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	created, err := h.uc.Create(c.Context(), repository.Rating{Value: req.Value, Label: req.Label})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RatingResponseFrom(created))
}

func (h *RatingHandler) Update(c fiber.Ctx) error {
	value, err := ratingValueParam(c)
	if err != nil {
		return err
	}

	var req updateRatingRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	updated, err := h.uc.Update(c.Context(), repository.Rating{Value: value, Label: req.Label})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RatingResponseFrom(updated))
}

func (h *RatingHandler) Delete(c fiber.Ctx) error {
	value, err := ratingValueParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), value); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func ratingValueParam(c fiber.Ctx) (int, error) {
	value, err := strconv.Atoi(c.Params("valeur"))
	if err != nil {
		return 0, badRequest("Rating value must be an integer", err)
	}
	return value, nil
}
