package handler

import (
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/dto"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/domain/request"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/pkg/response"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type StaffingRequestHandler struct {
	uc           usecase.StaffingRequestUsecase
	requirements usecase.RequirementUsecase
}

type destinationBody struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

type requirementBody struct {
	CompetencyLabel string `json:"competence"`
	MinRating       int    `json:"note_minimale"`
}

type staffingRequestBody struct {
	ID           string            `json:"id"`
	Requester    string            `json:"demandeur"`
	Description  string            `json:"description"`
	Nature       string            `json:"nature"`
	StartDate    string            `json:"date_debut"`
	EndDate      string            `json:"date_fin"`
	Destination  destinationBody   `json:"destination"`
	Requirements []requirementBody `json:"competences_requises"`
}

func NewStaffingRequestHandler(uc usecase.StaffingRequestUsecase, requirements usecase.RequirementUsecase) *StaffingRequestHandler {
	return &StaffingRequestHandler{uc: uc, requirements: requirements}
}

func (h *StaffingRequestHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/demandes")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)

	reqs := grp.Group("/:id/competences-requises")
	reqs.Get("/", h.ListRequirements)
	reqs.Post("/", h.AddRequirement)
	reqs.Get("/:label", h.GetRequirement)
	reqs.Put("/:label", h.UpdateRequirement)
	reqs.Delete("/:label", h.DeleteRequirement)
}

// List serves the plain collection plus the three query filters. Filters are
// exclusive; demandeur wins over competence, competence over date.
func (h *StaffingRequestHandler) List(c fiber.Ctx) error {
	var (
		items []request.StaffingRequest
		err   error
	)

	switch {
	case c.Query("demandeur") != "":
		items, err = h.uc.ListByRequester(c.Context(), c.Query("demandeur"))
	case c.Query("competence") != "":
		items, err = h.uc.ListByCompetency(c.Context(), c.Query("competence"))
	case c.Query("date") != "":
		at, perr := parseDate(c.Query("date"))
		if perr != nil {
			return badRequest("Query parameter date must be YYYY-MM-DD", perr)
		}
		items, err = h.uc.ListActiveAt(c.Context(), at)
	default:
		items, err = h.uc.List(c.Context())
	}
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.StaffingRequestResponsesFrom(items))
}

func (h *StaffingRequestHandler) Get(c fiber.Ctx) error {
	id, err := requestIDParam(c)
	if err != nil {
		return err
	}

	item, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.StaffingRequestResponseFrom(item))
}

func (h *StaffingRequestHandler) Create(c fiber.Ctx) error {
	var body staffingRequestBody
	if err := c.Bind().Body(&body); err != nil {
		return badRequest("Bad request", err)
	}

	r, err := staffingRequestFromBody(body)
	if err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), r)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.StaffingRequestResponseFrom(created))
}

func (h *StaffingRequestHandler) Update(c fiber.Ctx) error {
	id, err := requestIDParam(c)
	if err != nil {
		return err
	}

	var body staffingRequestBody
	if err := c.Bind().Body(&body); err != nil {
		return badRequest("Bad request", err)
	}

	r, err := staffingRequestFromBody(body)
	if err != nil {
		return err
	}
	r.ID = id

	updated, err := h.uc.Update(c.Context(), r)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.StaffingRequestResponseFrom(updated))
}

func (h *StaffingRequestHandler) Delete(c fiber.Ctx) error {
	id, err := requestIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *StaffingRequestHandler) ListRequirements(c fiber.Ctx) error {
	id, err := requestIDParam(c)
	if err != nil {
		return err
	}

	items, err := h.requirements.List(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RequirementResponsesFrom(items))
}

func (h *StaffingRequestHandler) GetRequirement(c fiber.Ctx) error {
	id, err := requestIDParam(c)
	if err != nil {
		return err
	}

	item, err := h.requirements.Get(c.Context(), id, c.Params("label"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RequirementResponseFrom(item))
}

func (h *StaffingRequestHandler) AddRequirement(c fiber.Ctx) error {
	id, err := requestIDParam(c)
	if err != nil {
		return err
	}

	var body requirementBody
	if err := c.Bind().Body(&body); err != nil {
		return badRequest("Bad request", err)
	}

	added, err := h.requirements.Add(c.Context(), id, request.Requirement{
		CompetencyLabel: body.CompetencyLabel,
		MinRating:       body.MinRating,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RequirementResponseFrom(added))
}

func (h *StaffingRequestHandler) UpdateRequirement(c fiber.Ctx) error {
	id, err := requestIDParam(c)
	if err != nil {
		return err
	}

	var body requirementBody
	if err := c.Bind().Body(&body); err != nil {
		return badRequest("Bad request", err)
	}

	updated, err := h.requirements.Update(c.Context(), id, request.Requirement{
		CompetencyLabel: c.Params("label"),
		MinRating:       body.MinRating,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RequirementResponseFrom(updated))
}

func (h *StaffingRequestHandler) DeleteRequirement(c fiber.Ctx) error {
	id, err := requestIDParam(c)
	if err != nil {
		return err
	}

	if err := h.requirements.Delete(c.Context(), id, c.Params("label")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func requestIDParam(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, badRequest("Request id must be a UUID", err)
	}
	return id, nil
}

func staffingRequestFromBody(body staffingRequestBody) (request.StaffingRequest, error) {
	var r request.StaffingRequest

	if body.ID != "" {
		id, err := uuid.Parse(body.ID)
		if err != nil {
			return r, badRequest("Request id must be a UUID", err)
		}
		r.ID = id
	}

	if body.Nature != "" {
		nature, ok := request.ParseNature(body.Nature)
		if !ok {
			return r, badRequest("Unknown nature", nil)
		}
		r.Nature = nature
	}

	if body.Destination.Type != "" {
		dtype, ok := request.ParseDestinationType(body.Destination.Type)
		if !ok {
			return r, badRequest("Unknown destination type", nil)
		}
		r.Destination.Type = dtype
	}
	r.Destination.Code = body.Destination.Code

	if body.StartDate != "" {
		start, err := parseDate(body.StartDate)
		if err != nil {
			return r, badRequest("date_debut must be YYYY-MM-DD", err)
		}
		r.StartDate = start
	}

	end, err := parseOptionalDate(body.EndDate)
	if err != nil {
		return r, badRequest("date_fin must be YYYY-MM-DD", err)
	}
	r.EndDate = end

	r.Requester = body.Requester
	r.Description = body.Description
	r.Requirements = make([]request.Requirement, 0, len(body.Requirements))
	for _, rq := range body.Requirements {
		r.Requirements = append(r.Requirements, request.Requirement{
			CompetencyLabel: rq.CompetencyLabel,
			MinRating:       rq.MinRating,
		})
	}
	return r, nil
}
