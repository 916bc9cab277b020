package v1

import (
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/handler"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

const adminHabilitation = "ADMIN"

type Deps struct {
	AuthMw *middleware.AuthMiddleware

	Auth          *handler.AuthHandler
	Competencies  *handler.CompetencyHandler
	Ratings       *handler.RatingHandler
	Habilitations *handler.HabilitationHandler
	Groups        *handler.GroupHandler
	Teams         *handler.TeamHandler
	People        *handler.PersonHandler
	SkillMatrix   *handler.SkillMatrixHandler
	Profiles      *handler.ProfileHandler
	Requests      *handler.StaffingRequestHandler
	Users         *handler.UserHandler
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	d.Auth.RegisterRoutes(r)

	protected := r.Group("", d.AuthMw.Middleware())
	d.Competencies.RegisterRoutes(protected)
	d.Ratings.RegisterRoutes(protected)
	d.Groups.RegisterRoutes(protected)
	d.Teams.RegisterRoutes(protected)
	d.People.RegisterRoutes(protected)
	d.SkillMatrix.RegisterRoutes(protected)
	d.Profiles.RegisterRoutes(protected)
	d.Requests.RegisterRoutes(protected)

	admin := protected.Group("", d.AuthMw.RequireHabilitation(adminHabilitation))
	d.Habilitations.RegisterRoutes(admin)
	d.Users.RegisterRoutes(admin)
}
