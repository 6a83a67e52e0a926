package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Mal-1702/ats-backend/internal/database"
	"github.com/Mal-1702/ats-backend/internal/domain/resume"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	Create(ctx context.Context, rec resume.Resume) error
	GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error)
	List(ctx context.Context) ([]resume.Resume, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) Create(ctx context.Context, rec resume.Resume) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO resumes (id, filename, stored_path, size_bytes)
		 VALUES ($1, $2, $3, $4)`,
		rec.ID, rec.Filename, rec.StoredPath, rec.SizeBytes,
	)
	return err
}

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, filename, stored_path, size_bytes, uploaded_at FROM resumes WHERE id = $1`, id)

	var rec resume.Resume
	if err := row.Scan(&rec.ID, &rec.Filename, &rec.StoredPath, &rec.SizeBytes, &rec.UploadedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, err
	}
	return rec, nil
}

func (r *PostgresResumeRepository) List(ctx context.Context) ([]resume.Resume, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, filename, stored_path, size_bytes, uploaded_at
		 FROM resumes
		 ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resume.Resume, 0)
	for rows.Next() {
		var rec resume.Resume
		if err := rows.Scan(&rec.ID, &rec.Filename, &rec.StoredPath, &rec.SizeBytes, &rec.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PostgresResumeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

var _ ResumeRepository = (*PostgresResumeRepository)(nil)
