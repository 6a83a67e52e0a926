package dto

import (
	"github.com/Mal-1702/ats-backend/internal/domain/priority"
	"github.com/Mal-1702/ats-backend/internal/domain/ranking"
)

type AnalysisResponse struct {
	ranking.ResumeAnalysis
	ScoreTier priority.ScoreTier `json:"score_tier"`
}

func NewAnalysisResponse(a ranking.ResumeAnalysis) AnalysisResponse {
	return AnalysisResponse{
		ResumeAnalysis: a,
		ScoreTier:      priority.ClassifyScore(a.Score),
	}
}
