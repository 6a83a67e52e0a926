package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Mal-1702/ats-backend/internal/database"
	"github.com/Mal-1702/ats-backend/internal/domain/job"
	"github.com/Mal-1702/ats-backend/internal/domain/priority"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(ctx context.Context, j job.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	List(ctx context.Context, limit, offset int) ([]job.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO jobs (id, title, keywords, min_experience, is_active)
		 VALUES ($1, $2, $3, $4, $5)`,
		j.ID, j.Title, j.Keywords, j.MinExperience, j.IsActive,
	)
	if err != nil {
		return err
	}

	// Insertion order is preserved via the position column; matching is
	// order-independent but the editor renders skills as entered.
	for i, sp := range j.SkillPriorities {
		_, err = tx.Exec(ctx,
			`INSERT INTO job_skill_priorities (job_id, position, skill, priority, importance_level)
			 VALUES ($1, $2, $3, $4, $5)`,
			j.ID, i, sp.Skill, sp.Priority, sp.ImportanceLevel,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, keywords, min_experience, is_active, created_at
		 FROM jobs WHERE id = $1`, id)

	var j job.Job
	if err := row.Scan(&j.ID, &j.Title, &j.Keywords, &j.MinExperience, &j.IsActive, &j.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}

	priorities, err := r.skillPriorities(ctx, []uuid.UUID{id})
	if err != nil {
		return job.Job{}, err
	}
	j.SkillPriorities = priorities[id]
	return j, nil
}

func (r *PostgresJobRepository) List(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, keywords, min_experience, is_active, created_at
		 FROM jobs
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]job.Job, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Keywords, &j.MinExperience, &j.IsActive, &j.CreatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
		ids = append(ids, j.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	priorities, err := r.skillPriorities(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		jobs[i].SkillPriorities = priorities[jobs[i].ID]
	}
	return jobs, nil
}

func (r *PostgresJobRepository) skillPriorities(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID][]priority.SkillPriority, error) {
	out := make(map[uuid.UUID][]priority.SkillPriority, len(jobIDs))
	if len(jobIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT job_id, skill, priority, importance_level
		 FROM job_skill_priorities
		 WHERE job_id = ANY($1)
		 ORDER BY job_id, position`,
		jobIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var jobID uuid.UUID
		var sp priority.SkillPriority
		if err := rows.Scan(&jobID, &sp.Skill, &sp.Priority, &sp.ImportanceLevel); err != nil {
			return nil, err
		}
		out[jobID] = append(out[jobID], sp)
	}
	return out, rows.Err()
}

var _ JobRepository = (*PostgresJobRepository)(nil)
