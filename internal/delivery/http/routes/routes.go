package routes

import (
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/handler"
	v1 "github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/routes/v1"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	ws     *ws.Handler
	v1deps v1.Deps
}

func NewRegistry(health *handler.HealthHandler, wsHandler *ws.Handler, deps v1.Deps) *Registry {
	return &Registry{health: health, ws: wsHandler, v1deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", r.health.Check)
	app.Get("/ws/demandes", r.ws.HandleRequestsWS)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.v1deps)
}
