package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Mal-1702/ats-backend/internal/domain/job"
	"github.com/Mal-1702/ats-backend/internal/domain/priority"
)

type SkillPriorityRequest struct {
	Name   string  `json:"name" validate:"required,max=100"`
	Weight float64 `json:"weight" validate:"gte=0,lte=1"`
}

type CreateJobRequest struct {
	Title         string                 `json:"title" validate:"required,max=200"`
	Keywords      []string               `json:"keywords" validate:"max=50,dive,max=100"`
	MinExperience float64                `json:"min_experience" validate:"gte=0,lte=50"`
	Skills        []SkillPriorityRequest `json:"skills" validate:"required,min=1,max=50,dive"`
}

func (r *CreateJobRequest) Validate() error {
	return validate.Struct(r)
}

type JobResponse struct {
	ID              uuid.UUID                `json:"id"`
	Title           string                   `json:"title"`
	Keywords        []string                 `json:"keywords"`
	MinExperience   float64                  `json:"min_experience"`
	SkillPriorities []priority.SkillPriority `json:"skill_priorities"`
	LevelCounts     map[string]int           `json:"level_counts"`
	IsActive        bool                     `json:"is_active"`
	CreatedAt       time.Time                `json:"created_at"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Keywords:        j.Keywords,
		MinExperience:   j.MinExperience,
		SkillPriorities: j.SkillPriorities,
		LevelCounts:     priority.CountByLevel(j.SkillPriorities),
		IsActive:        j.IsActive,
		CreatedAt:       j.CreatedAt,
	}
}

func NewJobListResponse(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}
