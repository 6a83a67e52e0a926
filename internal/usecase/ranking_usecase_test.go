package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Mal-1702/ats-backend/internal/domain/priority"
	"github.com/Mal-1702/ats-backend/internal/domain/ranking"
	"github.com/Mal-1702/ats-backend/internal/domain/resume"
	"github.com/Mal-1702/ats-backend/internal/infrastructure/matcher"
	"github.com/Mal-1702/ats-backend/internal/worker"
)

type memResumeRepo struct {
	items []resume.Resume
}

func (m *memResumeRepo) Create(_ context.Context, _ resume.Resume) error { return nil }
func (m *memResumeRepo) Delete(_ context.Context, _ uuid.UUID) error     { return nil }
func (m *memResumeRepo) List(_ context.Context) ([]resume.Resume, error) { return m.items, nil }
func (m *memResumeRepo) GetByID(_ context.Context, id uuid.UUID) (resume.Resume, error) {
	for _, r := range m.items {
		if r.ID == id {
			return r, nil
		}
	}
	return resume.Resume{}, errors.New("not found")
}

type memRankingRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID][]ranking.CandidateRanking
}

func newMemRankingRepo() *memRankingRepo {
	return &memRankingRepo{items: make(map[uuid.UUID][]ranking.CandidateRanking)}
}

func (m *memRankingRepo) Upsert(_ context.Context, jobID uuid.UUID, r ranking.CandidateRanking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.items[jobID] {
		if existing.ResumeID == r.ResumeID {
			m.items[jobID][i] = r
			return nil
		}
	}
	m.items[jobID] = append(m.items[jobID], r)
	return nil
}

func (m *memRankingRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]ranking.CandidateRanking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ranking.CandidateRanking, len(m.items[jobID]))
	copy(out, m.items[jobID])
	return out, nil
}

type fakeMatcher struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (f *fakeMatcher) RankResume(_ context.Context, req matcher.RankRequest) (ranking.CandidateRanking, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.fail {
		return ranking.CandidateRanking{}, errors.New("matcher down")
	}
	return ranking.CandidateRanking{
		FinalScore:    82.5,
		Tier:          "A",
		MatchedSkills: []string{"Go"},
		MissingSkills: []string{"Kubernetes"},
	}, nil
}

func (f *fakeMatcher) AnalyzeResume(_ context.Context, _ string) (ranking.ResumeAnalysis, error) {
	return ranking.ResumeAnalysis{Score: 70}, nil
}

// memCache is a map-backed stand-in for the Redis layer.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	b, ok := c.data[key]
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.data[key] = b
	c.mu.Unlock()
	return nil
}

func (c *memCache) InvalidateJob(_ context.Context, jobID string) error {
	c.mu.Lock()
	delete(c.data, "shortlist:"+jobID)
	delete(c.data, "rankings:"+jobID)
	c.mu.Unlock()
	return nil
}

func testRankingUsecase(t *testing.T, jobs *memJobRepo, resumes *memResumeRepo, rankings *memRankingRepo, m matcher.Client, c Cache) *Ranking {
	t.Helper()
	pool := worker.NewPool(2, 16)
	ctx, cancel := context.WithCancel(context.Background())
	results := pool.Run(ctx)
	go func() {
		for range results {
		}
	}()
	t.Cleanup(func() {
		pool.Close()
		cancel()
	})
	return NewRankingUsecase(jobs, resumes, rankings, m, c, pool, nil, nil)
}

func seedJob(t *testing.T, jobs *memJobRepo) uuid.UUID {
	t.Helper()
	j, err := NewJobUsecase(jobs).Create(context.Background(), CreateJobInput{
		Title: "Backend Engineer",
		Skills: []SkillInput{
			{Name: "Go", Weight: 0.95},
			{Name: "Kubernetes", Weight: 0.7},
		},
	})
	if err != nil {
		t.Fatalf("seed job failed: %v", err)
	}
	return j.ID
}

func waitForTask(t *testing.T, uc *Ranking, taskID string) TaskStatus {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		st, err := uc.TaskStatus(context.Background(), taskID)
		if err == nil && (st.Status == TaskCompleted || st.Status == TaskFailed) {
			return st
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("ranking task did not finish in time")
	return TaskStatus{}
}

func TestRankingUsecase_Trigger_RanksAllResumes(t *testing.T) {
	jobs := newMemJobRepo()
	jobID := seedJob(t, jobs)
	resumes := &memResumeRepo{items: []resume.Resume{
		{ID: uuid.New(), Filename: "alice.pdf", StoredPath: "uploads/a_alice.pdf"},
		{ID: uuid.New(), Filename: "bob.pdf", StoredPath: "uploads/b_bob.pdf"},
		{ID: uuid.New(), Filename: "carol.docx", StoredPath: "uploads/c_carol.docx"},
	}}
	rankings := newMemRankingRepo()
	fm := &fakeMatcher{}
	uc := testRankingUsecase(t, jobs, resumes, rankings, fm, newMemCache())

	st, err := uc.Trigger(context.Background(), jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if st.Status != TaskPending || st.Total != 3 {
		t.Fatalf("unexpected initial status: %+v", st)
	}

	final := waitForTask(t, uc, st.TaskID)
	if final.Status != TaskCompleted {
		t.Fatalf("expected completed, got %+v", final)
	}
	if final.Ranked != 3 || final.Failed != 0 {
		t.Fatalf("expected 3 ranked, got %+v", final)
	}

	stored, err := uc.ListByJob(context.Background(), jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("expected 3 stored rankings, got %d", len(stored))
	}
	for _, r := range stored {
		if r.Filename == "" || r.ResumeID == uuid.Nil {
			t.Fatalf("ranking missing resume identity: %+v", r)
		}
	}
}

func TestRankingUsecase_Trigger_AllFailuresMarksTaskFailed(t *testing.T) {
	jobs := newMemJobRepo()
	jobID := seedJob(t, jobs)
	resumes := &memResumeRepo{items: []resume.Resume{
		{ID: uuid.New(), Filename: "alice.pdf", StoredPath: "uploads/a_alice.pdf"},
	}}
	uc := testRankingUsecase(t, jobs, resumes, newMemRankingRepo(), &fakeMatcher{fail: true}, newMemCache())

	st, err := uc.Trigger(context.Background(), jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	final := waitForTask(t, uc, st.TaskID)
	if final.Status != TaskFailed || final.Failed != 1 {
		t.Fatalf("expected failed task, got %+v", final)
	}
}

func TestRankingUsecase_Trigger_NoResumes(t *testing.T) {
	jobs := newMemJobRepo()
	jobID := seedJob(t, jobs)
	uc := testRankingUsecase(t, jobs, &memResumeRepo{}, newMemRankingRepo(), &fakeMatcher{}, newMemCache())

	if _, err := uc.Trigger(context.Background(), jobID); !errors.Is(err, ErrNoResumes) {
		t.Fatalf("expected ErrNoResumes, got %v", err)
	}
}

func TestRankingUsecase_Trigger_JobNotFound(t *testing.T) {
	uc := testRankingUsecase(t, newMemJobRepo(), &memResumeRepo{}, newMemRankingRepo(), &fakeMatcher{}, newMemCache())
	if _, err := uc.Trigger(context.Background(), uuid.New()); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestRankingUsecase_TaskStatus_NotFound(t *testing.T) {
	uc := testRankingUsecase(t, newMemJobRepo(), &memResumeRepo{}, newMemRankingRepo(), &fakeMatcher{}, newMemCache())
	if _, err := uc.TaskStatus(context.Background(), uuid.NewString()); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestRankingUsecase_Shortlist_AnnotatesAndSummarizes(t *testing.T) {
	jobs := newMemJobRepo()
	jobID := seedJob(t, jobs)
	rankings := newMemRankingRepo()

	resumeID := uuid.New()
	if err := rankings.Upsert(context.Background(), jobID, ranking.CandidateRanking{
		ResumeID:      resumeID,
		Filename:      "alice.pdf",
		FinalScore:    82.5,
		Tier:          "A",
		MatchedSkills: []string{"go"},
		MissingSkills: []string{"kubernetes", "Rust"},
	}); err != nil {
		t.Fatalf("seed ranking failed: %v", err)
	}

	uc := testRankingUsecase(t, jobs, &memResumeRepo{}, rankings, &fakeMatcher{}, newMemCache())

	view, err := uc.Shortlist(context.Background(), jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if view.JobTitle != "Backend Engineer" {
		t.Fatalf("unexpected job title %q", view.JobTitle)
	}
	if len(view.Candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(view.Candidates))
	}

	c := view.Candidates[0]
	if c.ScoreTier != priority.ScoreExcellent {
		t.Fatalf("expected excellent score tier, got %q", c.ScoreTier)
	}
	if c.MatchedSkills[0].ImportanceLevel != "critical" {
		t.Fatalf("expected matched skill tagged critical, got %+v", c.MatchedSkills[0])
	}
	if c.MissingSkills[0].ImportanceLevel != "high" {
		t.Fatalf("expected missing skill tagged high, got %+v", c.MissingSkills[0])
	}
	// Rust was never prioritized by the job, so it carries no tag.
	if c.MissingSkills[1].ImportanceLevel != "" {
		t.Fatalf("expected untagged missing skill, got %+v", c.MissingSkills[1])
	}

	if view.Summary.Total != 1 || view.Summary.TierA != 1 || view.Summary.MeanScore != 82.5 {
		t.Fatalf("unexpected summary %+v", view.Summary)
	}
	if view.LevelCounts["Critical"] != 1 || view.LevelCounts["High"] != 1 {
		t.Fatalf("unexpected level counts %v", view.LevelCounts)
	}
}

func TestRankingUsecase_Shortlist_ServesFromCache(t *testing.T) {
	jobs := newMemJobRepo()
	jobID := seedJob(t, jobs)
	c := newMemCache()
	cached := ShortlistView{JobID: jobID.String(), JobTitle: "Cached Title"}
	if err := c.SetJSON(context.Background(), "shortlist:"+jobID.String(), cached, 0); err != nil {
		t.Fatalf("seed cache failed: %v", err)
	}

	uc := testRankingUsecase(t, jobs, &memResumeRepo{}, newMemRankingRepo(), &fakeMatcher{}, c)

	view, err := uc.Shortlist(context.Background(), jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if view.JobTitle != "Cached Title" {
		t.Fatalf("expected cached view, got %+v", view)
	}
}
