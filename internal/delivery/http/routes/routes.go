package routes

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Mal-1702/ats-backend/internal/delivery/http/handler"
	v1 "github.com/Mal-1702/ats-backend/internal/delivery/http/routes/v1"
	"github.com/Mal-1702/ats-backend/internal/ws"
)

type Registry struct {
	Health   *handler.HealthHandler
	API      v1.Handlers
	Rankings *ws.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if r == nil || app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.API)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.Rankings != nil {
		app.Get("/ws/rankings", r.Rankings.HandleRankingsWS)
	}
}
