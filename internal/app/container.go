package app

import (
	"context"
	"log"
	"time"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/config"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/database"
	dbpostgres "github.com/david-lacoste-pmu/matrix-competence-sub000/internal/database/postgres"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/handler"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/middleware"
	v1 "github.com/david-lacoste-pmu/matrix-competence-sub000/internal/delivery/http/routes/v1"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/infrastructure/cache"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/pkg/jwt"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/usecase"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/ws"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Health *handler.HealthHandler
	WS     *ws.Handler
	V1     v1.Deps
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	logger := log.Default()
	redisCache := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	competencyRepo := repository.NewPostgresCompetencyRepository(db)
	ratingRepo := repository.NewPostgresRatingRepository(db)
	habilitationRepo := repository.NewPostgresHabilitationRepository(db)
	groupRepo := repository.NewPostgresGroupRepository(db)
	teamRepo := repository.NewPostgresTeamRepository(db)
	personRepo := repository.NewPostgresPersonRepository(db)
	matrixRepo := repository.NewPostgresSkillMatrixRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	requestRepo := repository.NewPostgresStaffingRequestRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)

	competencyUC := usecase.NewCompetencyUsecase(competencyRepo)
	ratingUC := usecase.NewRatingUsecase(ratingRepo)
	habilitationUC := usecase.NewHabilitationUsecase(habilitationRepo)
	groupUC := usecase.NewGroupUsecase(groupRepo)
	teamUC := usecase.NewTeamUsecase(teamRepo, groupRepo, personRepo)
	personUC := usecase.NewPersonUsecase(personRepo, teamRepo)
	matrixUC := usecase.NewSkillMatrixUsecase(matrixRepo, personRepo, competencyRepo, ratingRepo, redisCache)
	availabilityUC := usecase.NewAvailabilityUsecase(profileRepo, personRepo, matrixRepo, redisCache)
	requestUC := usecase.NewStaffingRequestUsecase(requestRepo, teamRepo, groupRepo, competencyRepo, ratingRepo, notifier)
	requirementUC := usecase.NewRequirementUsecase(requestUC)
	userUC := usecase.NewUserUsecase(userRepo, habilitationRepo)
	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		Health: handler.NewHealthHandler(db),
		WS:     ws.NewHandler(hub, logger),
		V1: v1.Deps{
			AuthMw:        authMw,
			Auth:          handler.NewAuthHandler(authUC),
			Competencies:  handler.NewCompetencyHandler(competencyUC),
			Ratings:       handler.NewRatingHandler(ratingUC),
			Habilitations: handler.NewHabilitationHandler(habilitationUC),
			Groups:        handler.NewGroupHandler(groupUC),
			Teams:         handler.NewTeamHandler(teamUC),
			People:        handler.NewPersonHandler(personUC),
			SkillMatrix:   handler.NewSkillMatrixHandler(matrixUC),
			Profiles:      handler.NewProfileHandler(availabilityUC),
			Requests:      handler.NewStaffingRequestHandler(requestUC, requirementUC),
			Users:         handler.NewUserHandler(userUC),
		},
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
