package usecase

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/Mal-1702/ats-backend/internal/domain/resume"
	"github.com/Mal-1702/ats-backend/internal/infrastructure/storage"
	"github.com/Mal-1702/ats-backend/internal/repository"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeUsecase interface {
	Upload(ctx context.Context, filename string, size int64, r io.Reader) (resume.Resume, error)
	List(ctx context.Context) ([]resume.Resume, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Resume struct {
	resumes repository.ResumeRepository
	store   *storage.LocalStore
	logger  *log.Logger
}

func NewResumeUsecase(resumes repository.ResumeRepository, store *storage.LocalStore, logger *log.Logger) *Resume {
	return &Resume{resumes: resumes, store: store, logger: logger}
}

// Upload writes the file to the store first and the row second; a failed
// insert removes the orphaned file so disk and table stay in step.
func (u *Resume) Upload(ctx context.Context, filename string, size int64, r io.Reader) (resume.Resume, error) {
	storedPath, err := u.store.Save(filename, size, r)
	if err != nil {
		return resume.Resume{}, err
	}

	rec := resume.Resume{
		ID:         uuid.New(),
		Filename:   filename,
		StoredPath: storedPath,
		SizeBytes:  size,
	}

	if err := u.resumes.Create(ctx, rec); err != nil {
		if rmErr := u.store.Remove(storedPath); rmErr != nil && u.logger != nil {
			u.logger.Printf("[Resume] orphan cleanup failed path=%s error=%v", storedPath, rmErr)
		}
		return resume.Resume{}, err
	}

	return u.resumes.GetByID(ctx, rec.ID)
}

func (u *Resume) List(ctx context.Context) ([]resume.Resume, error) {
	return u.resumes.List(ctx)
}

func (u *Resume) Delete(ctx context.Context, id uuid.UUID) error {
	rec, err := u.resumes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ErrResumeNotFound
		}
		return err
	}

	if err := u.resumes.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ErrResumeNotFound
		}
		return err
	}

	// The row is gone; a leftover file is only noise, not a failure.
	if err := u.store.Remove(rec.StoredPath); err != nil && u.logger != nil {
		u.logger.Printf("[Resume] file removal failed path=%s error=%v", rec.StoredPath, err)
	}
	return nil
}

var _ ResumeUsecase = (*Resume)(nil)
