package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/config"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/database/seeder"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/middleware"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	go c.Hub.Run()

	if err := seedReferentials(c); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{})
	registerGlobalMiddleware(f)
	routes.NewRegistry(c.Health, c.WS, c.V1).Register(f)

	app := &App{Fiber: f, Container: c}
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(log.Default()).Middleware())
}

func seedReferentials(c *Container) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	runner := seeder.Runner{Seeders: []seeder.Seeder{
		seeder.RatingsSeeder{},
		seeder.CompetenciesSeeder{},
	}}
	return runner.Run(ctx, c.DB)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
