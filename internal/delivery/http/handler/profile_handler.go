package handler

import (
	"strconv"
	"strings"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/dto"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/pkg/response"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.AvailabilityUsecase
}

type createProfileRequest struct {
	PersonID    string `json:"personne_id"`
	Manager     string `json:"manager"`
	WindowStart string `json:"date_debut"`
	WindowEnd   string `json:"date_fin"`
}

type updateProfileRequest struct {
	Manager     string `json:"manager"`
	WindowStart string `json:"date_debut"`
	WindowEnd   string `json:"date_fin"`
}

func NewProfileHandler(uc usecase.AvailabilityUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	profiles := r.Group("/profils")
	profiles.Get("/", h.List)
	profiles.Post("/", h.Create)
	profiles.Get("/:personId", h.Get)
	profiles.Put("/:personId", h.Update)
	profiles.Delete("/:personId", h.Delete)

	available := r.Group("/disponibles")
	available.Get("/", h.Available)
	available.Get("/filtre-notes", h.FilterByRating)
	available.Get("/filtre-competences", h.FilterByCompetencies)
	available.Get("/:id/matrice", h.MatrixForAvailable)
}

func (h *ProfileHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListProfiles(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ProfileResponsesFrom(items))
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	item, err := h.uc.GetProfile(c.Context(), c.Params("personId"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ProfileResponseFrom(item))
}

func (h *ProfileHandler) Create(c fiber.Ctx) error {
	var req createProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	p, err := profileFromBody(req.PersonID, req.Manager, req.WindowStart, req.WindowEnd)
	if err != nil {
		return err
	}

	created, err := h.uc.CreateProfile(c.Context(), p)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ProfileResponseFrom(created))
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	p, err := profileFromBody(c.Params("personId"), req.Manager, req.WindowStart, req.WindowEnd)
	if err != nil {
		return err
	}

	updated, err := h.uc.UpdateProfile(c.Context(), p)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ProfileResponseFrom(updated))
}

func (h *ProfileHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.DeleteProfile(c.Context(), c.Params("personId")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProfileHandler) Available(c fiber.Ctx) error {
	items, err := h.uc.AvailablePeople(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AvailablePersonResponsesFrom(items))
}

func (h *ProfileHandler) MatrixForAvailable(c fiber.Ctx) error {
	items, err := h.uc.MatrixForAvailablePerson(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillEntryResponsesFrom(items))
}

func (h *ProfileHandler) FilterByRating(c fiber.Ctx) error {
	labels := splitLabels(c.Query("competences"))
	if len(labels) == 0 {
		return badRequest("Query parameter competences is required", nil)
	}

	min, err := strconv.Atoi(c.Query("note"))
	if err != nil {
		return badRequest("Query parameter note must be an integer", err)
	}

	items, err := h.uc.FilterByMinimumRating(c.Context(), labels, min)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AvailablePersonResponsesFrom(items))
}

func (h *ProfileHandler) FilterByCompetencies(c fiber.Ctx) error {
	labels := splitLabels(c.Query("competences"))
	if len(labels) == 0 {
		return badRequest("Query parameter competences is required", nil)
	}

	items, err := h.uc.FilterByCompetencies(c.Context(), labels)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AvailablePersonResponsesFrom(items))
}

func profileFromBody(personID, manager, start, end string) (repository.AvailabilityProfile, error) {
	ws, err := parseOptionalDate(start)
	if err != nil {
		return repository.AvailabilityProfile{}, badRequest("date_debut must be YYYY-MM-DD", err)
	}
	we, err := parseOptionalDate(end)
	if err != nil {
		return repository.AvailabilityProfile{}, badRequest("date_fin must be YYYY-MM-DD", err)
	}
	return repository.AvailabilityProfile{
		PersonID:    personID,
		Manager:     manager,
		WindowStart: ws,
		WindowEnd:   we,
	}, nil
}

func splitLabels(raw string) []string {
	parts := strings.Split(raw, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			labels = append(labels, p)
		}
	}
	return labels
}
