package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mal-1702/ats-backend/internal/domain/job"
	"github.com/Mal-1702/ats-backend/internal/domain/priority"
	"github.com/Mal-1702/ats-backend/internal/domain/ranking"
	"github.com/Mal-1702/ats-backend/internal/domain/resume"
	"github.com/Mal-1702/ats-backend/internal/infrastructure/matcher"
	"github.com/Mal-1702/ats-backend/internal/repository"
	"github.com/Mal-1702/ats-backend/internal/worker"
	"github.com/Mal-1702/ats-backend/internal/ws"
)

var (
	ErrNoResumes          = errors.New("no resumes uploaded")
	ErrTaskNotFound       = errors.New("ranking task not found")
	ErrMatcherUnavailable = errors.New("matcher engine unavailable")
)

const (
	TaskPending   = "pending"
	TaskRunning   = "running"
	TaskCompleted = "completed"
	TaskFailed    = "failed"

	taskStatusTTL = time.Hour
)

// TaskStatus is the poll record for one ranking run. It lives in the
// cache only; a cache restart loses in-flight task visibility but never
// the rankings themselves.
type TaskStatus struct {
	TaskID      string     `json:"task_id"`
	JobID       string     `json:"job_id"`
	Status      string     `json:"status"`
	Total       int        `json:"total"`
	Ranked      int        `json:"ranked"`
	Failed      int        `json:"failed"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ShortlistView is the annotated ranking page for one job: every
// candidate decorated with score tiers and per-skill priority tags, plus
// the dashboard summary and the job's own priority distribution.
type ShortlistView struct {
	JobID       string              `json:"job_id"`
	JobTitle    string              `json:"job_title"`
	Candidates  []ranking.Candidate `json:"candidates"`
	Summary     ranking.Summary     `json:"summary"`
	LevelCounts map[string]int      `json:"level_counts"`
}

// Cache is the slice of the cache layer the ranking flow needs. Declared
// here so tests can swap in a map-backed fake.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateJob(ctx context.Context, jobID string) error
}

type RankingUsecase interface {
	Trigger(ctx context.Context, jobID uuid.UUID) (TaskStatus, error)
	TaskStatus(ctx context.Context, taskID string) (TaskStatus, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]ranking.CandidateRanking, error)
	Shortlist(ctx context.Context, jobID uuid.UUID) (ShortlistView, error)
}

type Ranking struct {
	jobs     repository.JobRepository
	resumes  repository.ResumeRepository
	rankings repository.RankingRepository
	matcher  matcher.Client
	cache    Cache
	pool     *worker.Pool
	hub      *ws.Hub
	logger   *log.Logger

	mu sync.Mutex
}

func NewRankingUsecase(
	jobs repository.JobRepository,
	resumes repository.ResumeRepository,
	rankings repository.RankingRepository,
	matcherClient matcher.Client,
	cacheClient Cache,
	pool *worker.Pool,
	hub *ws.Hub,
	logger *log.Logger,
) *Ranking {
	return &Ranking{
		jobs:     jobs,
		resumes:  resumes,
		rankings: rankings,
		matcher:  matcherClient,
		cache:    cacheClient,
		pool:     pool,
		hub:      hub,
		logger:   logger,
	}
}

// Trigger starts a ranking run for every uploaded resume against one job
// and returns immediately with the task record to poll. The matcher calls
// run on the shared worker pool.
func (u *Ranking) Trigger(ctx context.Context, jobID uuid.UUID) (TaskStatus, error) {
	if u.matcher == nil {
		return TaskStatus{}, ErrMatcherUnavailable
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return TaskStatus{}, ErrJobNotFound
		}
		return TaskStatus{}, err
	}

	recs, err := u.resumes.List(ctx)
	if err != nil {
		return TaskStatus{}, err
	}
	if len(recs) == 0 {
		return TaskStatus{}, ErrNoResumes
	}

	st := TaskStatus{
		TaskID:    uuid.NewString(),
		JobID:     j.ID.String(),
		Status:    TaskPending,
		Total:     len(recs),
		StartedAt: time.Now().UTC(),
	}
	u.putStatus(ctx, st)

	if u.logger != nil {
		u.logger.Printf("[Ranking] task started task_id=%s job_id=%s resumes=%d", st.TaskID, st.JobID, st.Total)
	}

	go u.run(j, recs, st)

	return st, nil
}

// run fans the resumes out to the pool and finalizes the task once every
// result is in. Submit blocks when the pool buffer is full, which is why
// this is off the request path.
func (u *Ranking) run(j job.Job, recs []resume.Resume, st TaskStatus) {
	ctx := context.Background()

	st.Status = TaskRunning
	u.putStatus(ctx, st)

	var wg sync.WaitGroup
	for _, rec := range recs {
		rec := rec
		wg.Add(1)
		u.pool.Submit(func(taskCtx context.Context) error {
			defer wg.Done()
			err := u.rankOne(taskCtx, j, rec)
			u.mu.Lock()
			if err != nil {
				st.Failed++
			} else {
				st.Ranked++
			}
			snapshot := st
			u.mu.Unlock()
			u.putStatus(taskCtx, snapshot)
			return err
		})
	}
	wg.Wait()

	u.mu.Lock()
	now := time.Now().UTC()
	st.CompletedAt = &now
	if st.Ranked == 0 {
		st.Status = TaskFailed
	} else {
		st.Status = TaskCompleted
	}
	final := st
	u.mu.Unlock()

	u.putStatus(ctx, final)
	if u.cache != nil {
		_ = u.cache.InvalidateJob(ctx, final.JobID)
	}
	ws.NotifyRankingCompleted(u.hub, final.JobID, final.TaskID, final.Ranked, final.Failed)

	if u.logger != nil {
		u.logger.Printf("[Ranking] task finished task_id=%s job_id=%s status=%s ranked=%d failed=%d",
			final.TaskID, final.JobID, final.Status, final.Ranked, final.Failed)
	}
}

func (u *Ranking) rankOne(ctx context.Context, j job.Job, rec resume.Resume) error {
	// The matcher shares the upload volume, so it receives the stored
	// path rather than the user-facing filename.
	result, err := u.matcher.RankResume(ctx, matcher.RankRequest{
		Filename:        rec.StoredPath,
		JobTitle:        j.Title,
		SkillPriorities: j.SkillPriorities,
		Keywords:        j.Keywords,
		MinExperience:   j.MinExperience,
	})
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Ranking] matcher error job_id=%s resume_id=%s error=%v", j.ID, rec.ID, err)
		}
		return err
	}

	result.ResumeID = rec.ID
	result.Filename = rec.Filename
	return u.rankings.Upsert(ctx, j.ID, result)
}

func (u *Ranking) TaskStatus(ctx context.Context, taskID string) (TaskStatus, error) {
	if u.cache == nil {
		return TaskStatus{}, ErrTaskNotFound
	}
	var st TaskStatus
	found, err := u.cache.GetJSON(ctx, taskKey(taskID), &st)
	if err != nil || !found {
		return TaskStatus{}, ErrTaskNotFound
	}
	return st, nil
}

func (u *Ranking) ListByJob(ctx context.Context, jobID uuid.UUID) ([]ranking.CandidateRanking, error) {
	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return u.rankings.ListByJob(ctx, jobID)
}

// Shortlist assembles the annotated ranking view for a job, serving from
// cache when a fresh copy exists. The cache entry is dropped whenever a
// ranking run finishes for the job.
func (u *Ranking) Shortlist(ctx context.Context, jobID uuid.UUID) (ShortlistView, error) {
	key := shortlistKey(jobID.String())
	if u.cache != nil {
		var cached ShortlistView
		if found, err := u.cache.GetJSON(ctx, key, &cached); err == nil && found {
			return cached, nil
		}
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ShortlistView{}, ErrJobNotFound
		}
		return ShortlistView{}, err
	}

	recs, err := u.rankings.ListByJob(ctx, jobID)
	if err != nil {
		return ShortlistView{}, err
	}

	idx := priority.BuildIndex(j.SkillPriorities)
	candidates := make([]ranking.Candidate, 0, len(recs))
	for _, r := range recs {
		candidates = append(candidates, ranking.Present(r, idx))
	}

	view := ShortlistView{
		JobID:       j.ID.String(),
		JobTitle:    j.Title,
		Candidates:  candidates,
		Summary:     ranking.Summarize(recs),
		LevelCounts: priority.CountByLevel(j.SkillPriorities),
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, view, 0)
	}
	return view, nil
}

func (u *Ranking) putStatus(ctx context.Context, st TaskStatus) {
	if u.cache == nil {
		return
	}
	_ = u.cache.SetJSON(ctx, taskKey(st.TaskID), st, taskStatusTTL)
}

func taskKey(taskID string) string     { return "task:" + taskID }
func shortlistKey(jobID string) string { return "shortlist:" + jobID }

var _ RankingUsecase = (*Ranking)(nil)
