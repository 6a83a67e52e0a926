package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Mal-1702/ats-backend/internal/config"
	"github.com/Mal-1702/ats-backend/internal/delivery/http/handler"
	"github.com/Mal-1702/ats-backend/internal/delivery/http/middleware"
	"github.com/Mal-1702/ats-backend/internal/delivery/http/routes"
	v1 "github.com/Mal-1702/ats-backend/internal/delivery/http/routes/v1"
	"github.com/Mal-1702/ats-backend/internal/pkg/jwt"
	"github.com/Mal-1702/ats-backend/internal/repository"
	"github.com/Mal-1702/ats-backend/internal/seeder"
	"github.com/Mal-1702/ats-backend/internal/usecase"
	"github.com/Mal-1702/ats-backend/internal/ws"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	cfg := c.Config

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
		// One slack megabyte over the upload cap so the store, not the
		// body parser, is what rejects oversized files.
		BodyLimit: int(cfg.Upload.MaxSizeMB+1) * 1024 * 1024,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.App.SeedDemoData {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := seeder.RunAll(ctx, container.Logger,
			seeder.NewJobSeeder(repository.NewPostgresJobRepository(container.DB)),
		)
		cancel()
		if err != nil {
			_ = container.Close()
			return nil, nil, err
		}
	}

	app := New(container)
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(c.Config.JWT.AccessSecret, c.Config.JWT.AccessExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(c.DB)
	jobRepo := repository.NewPostgresJobRepository(c.DB)
	resumeRepo := repository.NewPostgresResumeRepository(c.DB)
	rankingRepo := repository.NewPostgresRankingRepository(c.DB)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	jobUC := usecase.NewJobUsecase(jobRepo)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, c.Store, c.Logger)
	rankingUC := usecase.NewRankingUsecase(jobRepo, resumeRepo, rankingRepo, c.Matcher, c.Cache, c.Pool, c.Hub, c.Logger)
	analysisUC := usecase.NewAnalysisUsecase(resumeRepo, c.Matcher)

	registry := &routes.Registry{
		Health: handler.NewHealthHandler(c.DB, c.Cache),
		API: v1.Handlers{
			Auth:     handler.NewAuthHandler(authUC),
			Jobs:     handler.NewJobHandler(jobUC),
			Resumes:  handler.NewResumeHandler(resumeUC),
			Rankings: handler.NewRankingHandler(rankingUC),
			Analysis: handler.NewAnalysisHandler(analysisUC),
			AuthMw:   authMw.Middleware(),
		},
		Rankings: ws.NewHandler(c.Hub, c.Logger),
	}
	registry.Register(app)
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
