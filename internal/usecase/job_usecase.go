package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Mal-1702/ats-backend/internal/domain/job"
	"github.com/Mal-1702/ats-backend/internal/domain/priority"
	"github.com/Mal-1702/ats-backend/internal/repository"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrJobTitleRequired  = errors.New("job title is required")
	ErrJobSkillsRequired = errors.New("at least one skill priority is required")
	ErrSkillNameRequired = errors.New("skill name is required")
	ErrWeightOutOfRange  = errors.New("skill weight must be between 0 and 1")
)

// SkillInput is one slider row from the job editor: a skill name and the
// weight the recruiter picked for it.
type SkillInput struct {
	Name   string
	Weight float64
}

type CreateJobInput struct {
	Title         string
	Keywords      []string
	MinExperience float64
	Skills        []SkillInput
}

type JobUsecase interface {
	Create(ctx context.Context, in CreateJobInput) (job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	List(ctx context.Context, limit, offset int) ([]job.Job, error)
}

type Job struct {
	jobs repository.JobRepository
}

func NewJobUsecase(jobs repository.JobRepository) *Job {
	return &Job{jobs: jobs}
}

// Create validates the editor input and derives each skill's importance
// level from its weight before persisting. The level label is fixed at
// authoring time so every downstream consumer sees the same wording.
func (u *Job) Create(ctx context.Context, in CreateJobInput) (job.Job, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.Job{}, ErrJobTitleRequired
	}
	if len(in.Skills) == 0 {
		return job.Job{}, ErrJobSkillsRequired
	}

	priorities := make([]priority.SkillPriority, 0, len(in.Skills))
	for _, s := range in.Skills {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return job.Job{}, ErrSkillNameRequired
		}
		if s.Weight < 0 || s.Weight > 1 {
			return job.Job{}, ErrWeightOutOfRange
		}
		priorities = append(priorities, priority.NewSkillPriority(name, s.Weight))
	}

	keywords := make([]string, 0, len(in.Keywords))
	for _, kw := range in.Keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}

	minExp := in.MinExperience
	if minExp < 0 {
		minExp = 0
	}

	j := job.Job{
		ID:              uuid.New(),
		Title:           title,
		Keywords:        keywords,
		MinExperience:   minExp,
		SkillPriorities: priorities,
		IsActive:        true,
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, err
	}
	return u.jobs.GetByID(ctx, j.ID)
}

func (u *Job) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (u *Job) List(ctx context.Context, limit, offset int) ([]job.Job, error) {
	return u.jobs.List(ctx, limit, offset)
}

var _ JobUsecase = (*Job)(nil)
