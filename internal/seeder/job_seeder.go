package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/Mal-1702/ats-backend/internal/domain/job"
	"github.com/Mal-1702/ats-backend/internal/domain/priority"
	"github.com/Mal-1702/ats-backend/internal/repository"
)

type JobSeeder struct {
	jobs repository.JobRepository
}

func NewJobSeeder(jobs repository.JobRepository) *JobSeeder {
	return &JobSeeder{jobs: jobs}
}

func (*JobSeeder) Name() string { return "jobs" }

func (s *JobSeeder) Run(ctx context.Context) error {
	existing, err := s.jobs.List(ctx, 1, 0)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	items := []struct {
		Title         string
		Keywords      []string
		MinExperience float64
		Skills        []struct {
			Name   string
			Weight float64
		}
	}{
		{
			Title:         "Backend Engineer (Go)",
			Keywords:      []string{"microservices", "rest", "grpc"},
			MinExperience: 3,
			Skills: []struct {
				Name   string
				Weight float64
			}{
				{"Go", 0.95},
				{"PostgreSQL", 0.75},
				{"Redis", 0.5},
				{"Docker", 0.45},
				{"Kubernetes", 0.25},
				{"GraphQL", 0.1},
			},
		},
		{
			Title:         "Data Engineer",
			Keywords:      []string{"etl", "warehouse", "analytics"},
			MinExperience: 2,
			Skills: []struct {
				Name   string
				Weight float64
			}{
				{"Python", 0.9},
				{"SQL", 0.8},
				{"Airflow", 0.55},
				{"Spark", 0.3},
			},
		},
	}

	for _, item := range items {
		priorities := make([]priority.SkillPriority, 0, len(item.Skills))
		for _, sk := range item.Skills {
			priorities = append(priorities, priority.NewSkillPriority(sk.Name, sk.Weight))
		}

		j := job.Job{
			ID:              uuid.New(),
			Title:           item.Title,
			Keywords:        item.Keywords,
			MinExperience:   item.MinExperience,
			SkillPriorities: priorities,
			IsActive:        true,
		}
		if err := s.jobs.Create(ctx, j); err != nil {
			return err
		}
	}
	return nil
}
