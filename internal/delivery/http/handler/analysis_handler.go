package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Mal-1702/ats-backend/internal/delivery/http/dto"
	"github.com/Mal-1702/ats-backend/internal/delivery/http/middleware"
	"github.com/Mal-1702/ats-backend/internal/pkg/response"
	"github.com/Mal-1702/ats-backend/internal/usecase"
)

type AnalysisHandler struct {
	uc usecase.AnalysisUsecase
}

func NewAnalysisHandler(uc usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/resume/:id", h.Analyze)
}

func (h *AnalysisHandler) Analyze(c fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}

	analysis, err := h.uc.Analyze(c.Context(), resumeID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrResumeNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
		case errors.Is(err, usecase.ErrMatcherUnavailable):
			return middleware.NewAppError(fiber.StatusServiceUnavailable, "Matcher engine unavailable", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAnalysisResponse(analysis))
}
