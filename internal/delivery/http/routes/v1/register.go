package v1

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Mal-1702/ats-backend/internal/delivery/http/handler"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Jobs     *handler.JobHandler
	Resumes  *handler.ResumeHandler
	Rankings *handler.RankingHandler
	Analysis *handler.AnalysisHandler

	AuthMw fiber.Handler
}

// Register mounts the v1 surface. Everything except registration and
// login sits behind the auth middleware.
func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	authMw := h.AuthMw
	if authMw == nil {
		authMw = func(c fiber.Ctx) error { return c.Next() }
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"), authMw)
	}

	protected := r.Group("", authMw)

	if h.Jobs != nil {
		h.Jobs.RegisterRoutes(protected.Group("/jobs"))
	}
	if h.Resumes != nil {
		h.Resumes.RegisterRoutes(protected.Group("/resumes"))
	}
	if h.Rankings != nil {
		h.Rankings.RegisterRoutes(protected.Group("/rank"))
	}
	if h.Analysis != nil {
		h.Analysis.RegisterRoutes(protected.Group("/analysis"))
	}
}
