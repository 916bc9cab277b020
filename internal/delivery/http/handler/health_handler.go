package handler

import (
	"context"
	"time"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	status := "ok"
	dbStatus := "up"

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			status = "degraded"
			dbStatus = "down"
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"status":   status,
		"database": dbStatus,
	})
}
