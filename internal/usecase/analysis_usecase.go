package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Mal-1702/ats-backend/internal/domain/ranking"
	"github.com/Mal-1702/ats-backend/internal/infrastructure/matcher"
	"github.com/Mal-1702/ats-backend/internal/repository"
)

type AnalysisUsecase interface {
	Analyze(ctx context.Context, resumeID uuid.UUID) (ranking.ResumeAnalysis, error)
}

type Analysis struct {
	resumes repository.ResumeRepository
	matcher matcher.Client
}

func NewAnalysisUsecase(resumes repository.ResumeRepository, matcherClient matcher.Client) *Analysis {
	return &Analysis{resumes: resumes, matcher: matcherClient}
}

func (u *Analysis) Analyze(ctx context.Context, resumeID uuid.UUID) (ranking.ResumeAnalysis, error) {
	if u.matcher == nil {
		return ranking.ResumeAnalysis{}, ErrMatcherUnavailable
	}

	rec, err := u.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ranking.ResumeAnalysis{}, ErrResumeNotFound
		}
		return ranking.ResumeAnalysis{}, err
	}

	return u.matcher.AnalyzeResume(ctx, rec.StoredPath)
}

var _ AnalysisUsecase = (*Analysis)(nil)
