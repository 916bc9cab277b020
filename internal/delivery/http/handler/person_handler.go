package handler

import (
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/dto"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/pkg/response"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PersonHandler struct {
	uc usecase.PersonUsecase
}

type createPersonRequest struct {
	ID        string  `json:"id"`
	LastName  string  `json:"nom"`
	FirstName string  `json:"prenom"`
	Role      string  `json:"role"`
	TeamCode  *string `json:"equipe"`
}

// updatePersonRequest: an omitted or null field keeps the current value. For
// the team, an explicit empty string detaches the person.
type updatePersonRequest struct {
	LastName  *string `json:"nom"`
	FirstName *string `json:"prenom"`
	Role      *string `json:"role"`
	TeamCode  *string `json:"equipe"`
}

func NewPersonHandler(uc usecase.PersonUsecase) *PersonHandler {
	return &PersonHandler{uc: uc}
}

func (h *PersonHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/personnes")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *PersonHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PersonResponsesFrom(items))
}

func (h *PersonHandler) Get(c fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PersonResponseFrom(item))
}

func (h *PersonHandler) Create(c fiber.Ctx) error {
	var req createPersonRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	created, err := h.uc.Create(c.Context(), repository.Person{
		ID:        req.ID,
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Role:      req.Role,
		TeamCode:  req.TeamCode,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PersonResponseFrom(created))
}

func (h *PersonHandler) Update(c fiber.Ctx) error {
	var req updatePersonRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	updated, err := h.uc.Update(c.Context(), c.Params("id"), usecase.UpdatePersonInput{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Role:      req.Role,
		TeamCode:  req.TeamCode,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PersonResponseFrom(updated))
}

func (h *PersonHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
