package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Mal-1702/ats-backend/internal/delivery/http/middleware"
	"github.com/Mal-1702/ats-backend/internal/pkg/response"
	"github.com/Mal-1702/ats-backend/internal/usecase"
)

type RankingHandler struct {
	uc usecase.RankingUsecase
}

func NewRankingHandler(uc usecase.RankingUsecase) *RankingHandler {
	return &RankingHandler{uc: uc}
}

func (h *RankingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/job/:id", h.Trigger)
	r.Get("/tasks/:taskId", h.TaskStatus)
	r.Get("/job/:id", h.ListByJob)
	r.Get("/job/:id/shortlist", h.Shortlist)
}

// Trigger starts an async ranking run and answers 202 with the task
// record the client polls.
func (h *RankingHandler) Trigger(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	st, err := h.uc.Trigger(c.Context(), jobID)
	if err != nil {
		return mapRankingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusAccepted, response.MessageOK, st)
}

func (h *RankingHandler) TaskStatus(c fiber.Ctx) error {
	st, err := h.uc.TaskStatus(c.Context(), c.Params("taskId"))
	if err != nil {
		return mapRankingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}

func (h *RankingHandler) ListByJob(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	items, err := h.uc.ListByJob(c.Context(), jobID)
	if err != nil {
		return mapRankingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *RankingHandler) Shortlist(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	view, err := h.uc.Shortlist(c.Context(), jobID)
	if err != nil {
		return mapRankingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, view)
}

func mapRankingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Ranking task not found", nil, err)
	case errors.Is(err, usecase.ErrNoResumes):
		return middleware.NewAppError(fiber.StatusBadRequest, "No resumes uploaded", nil, err)
	case errors.Is(err, usecase.ErrMatcherUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Matcher engine unavailable", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
