package handler

import (
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/dto"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/pkg/response"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

type createUserRequest struct {
	Matricule     string   `json:"matricule"`
	Password      string   `json:"mot_de_passe"`
	Habilitations []string `json:"habilitations"`
}

// updateUserRequest: a nil field keeps the current value.
type updateUserRequest struct {
	Password      *string   `json:"mot_de_passe"`
	Habilitations *[]string `json:"habilitations"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/utilisateurs")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:matricule", h.Get)
	grp.Put("/:matricule", h.Update)
	grp.Delete("/:matricule", h.Delete)
}

func (h *UserHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.UserResponsesFrom(items))
}

func (h *UserHandler) Get(c fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), c.Params("matricule"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.UserResponseFrom(item))
}

func (h *UserHandler) Create(c fiber.Ctx) error {
	var req createUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	created, err := h.uc.Create(c.Context(), usecase.CreateUserInput{
		Matricule:     req.Matricule,
		Password:      req.Password,
		Habilitations: req.Habilitations,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.UserResponseFrom(created))
}

func (h *UserHandler) Update(c fiber.Ctx) error {
	var req updateUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	updated, err := h.uc.Update(c.Context(), c.Params("matricule"), usecase.UpdateUserInput{
		Password:      req.Password,
		Habilitations: req.Habilitations,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.UserResponseFrom(updated))
}

func (h *UserHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("matricule")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
