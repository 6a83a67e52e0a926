// Package ranking holds the candidate-ranking records produced by the
// external matcher engine and the presentation logic that decorates them
// for display. Records are read-only once received: the service never
// recomputes scores or tier letters, only display classifications.
package ranking

import (
	"time"

	"github.com/google/uuid"
)

// Breakdown carries the matcher's per-component scores.
type Breakdown struct {
	SkillMatch      float64 `json:"skill_match"`
	KeywordMatch    float64 `json:"keyword_match"`
	ExperienceScore float64 `json:"experience_score"`
	ExperienceYears float64 `json:"experience_years"`
}

// CandidateRanking is one matcher result for a (job, resume) pair. Tier
// is the matcher-assigned letter (A/B/C/D); it uses its own thresholds
// and is deliberately not reconciled with the client-side score bands.
type CandidateRanking struct {
	ResumeID      uuid.UUID `json:"resume_id"`
	Filename      string    `json:"filename"`
	FinalScore    float64   `json:"final_score"`
	Tier          string    `json:"tier"`
	Breakdown     Breakdown `json:"breakdown"`
	MatchedSkills []string  `json:"matched_skills"`
	MissingSkills []string  `json:"missing_skills"`
	BonusSkills   []string  `json:"bonus_skills"`
	Reasoning     string    `json:"reasoning"`
	KeyStrengths  []string  `json:"key_strengths"`
	Gaps          []string  `json:"gaps"`
	RankedAt      time.Time `json:"ranked_at"`
}

// ResumeAnalysis is the matcher's standalone resume review.
type ResumeAnalysis struct {
	Score        float64  `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Suggestions  []string `json:"suggestions"`
}
