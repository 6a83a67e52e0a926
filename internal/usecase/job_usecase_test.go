package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Mal-1702/ats-backend/internal/domain/job"
	"github.com/Mal-1702/ats-backend/internal/repository"
)

type memJobRepo struct {
	jobs map[uuid.UUID]job.Job
	err  error
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: make(map[uuid.UUID]job.Job)}
}

func (m *memJobRepo) Create(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	j.CreatedAt = time.Now().UTC()
	m.jobs[j.ID] = j
	return nil
}

func (m *memJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (m *memJobRepo) List(_ context.Context, _, _ int) ([]job.Job, error) {
	out := make([]job.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		out = append(out, j)
	}
	return out, nil
}

func TestJobUsecase_Create_DerivesImportanceLevels(t *testing.T) {
	uc := NewJobUsecase(newMemJobRepo())

	j, err := uc.Create(context.Background(), CreateJobInput{
		Title:         "Backend Engineer",
		Keywords:      []string{"go", " microservices ", ""},
		MinExperience: 3,
		Skills: []SkillInput{
			{Name: "Go", Weight: 0.95},
			{Name: "PostgreSQL", Weight: 0.7},
			{Name: "Docker", Weight: 0.45},
			{Name: "Terraform", Weight: 0.22},
			{Name: "GraphQL", Weight: 0.05},
		},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := []string{"critical", "high", "medium", "low", "optional"}
	if len(j.SkillPriorities) != len(want) {
		t.Fatalf("expected %d priorities, got %d", len(want), len(j.SkillPriorities))
	}
	for i, lvl := range want {
		if j.SkillPriorities[i].ImportanceLevel != lvl {
			t.Fatalf("skill %d: expected level %q, got %q", i, lvl, j.SkillPriorities[i].ImportanceLevel)
		}
	}
	if len(j.Keywords) != 2 {
		t.Fatalf("expected blank keywords dropped, got %v", j.Keywords)
	}
	if !j.IsActive {
		t.Fatal("expected new job to be active")
	}
}

func TestJobUsecase_Create_Validation(t *testing.T) {
	uc := NewJobUsecase(newMemJobRepo())

	cases := []struct {
		name string
		in   CreateJobInput
		want error
	}{
		{"blank title", CreateJobInput{Title: "  ", Skills: []SkillInput{{Name: "Go", Weight: 0.5}}}, ErrJobTitleRequired},
		{"no skills", CreateJobInput{Title: "Engineer"}, ErrJobSkillsRequired},
		{"blank skill name", CreateJobInput{Title: "Engineer", Skills: []SkillInput{{Name: " ", Weight: 0.5}}}, ErrSkillNameRequired},
		{"weight above one", CreateJobInput{Title: "Engineer", Skills: []SkillInput{{Name: "Go", Weight: 1.5}}}, ErrWeightOutOfRange},
		{"negative weight", CreateJobInput{Title: "Engineer", Skills: []SkillInput{{Name: "Go", Weight: -0.1}}}, ErrWeightOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Create(context.Background(), tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestJobUsecase_GetByID_NotFound(t *testing.T) {
	uc := NewJobUsecase(newMemJobRepo())
	if _, err := uc.GetByID(context.Background(), uuid.New()); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
