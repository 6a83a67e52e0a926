package ranking

import (
	"math"

	"github.com/Mal-1702/ats-backend/internal/domain/priority"
)

// AnnotatedSkill pairs a skill name from a ranking record with the
// priority level the job assigned it, when one exists. Skills the job
// never prioritized carry no tag.
type AnnotatedSkill struct {
	Skill           string  `json:"skill"`
	ImportanceLevel string  `json:"importance_level,omitempty"`
	Weight          float64 `json:"weight,omitempty"`
	Color           string  `json:"color,omitempty"`
}

// Candidate is the shortlist view model for one ranking: the raw record
// plus derived display classifications.
type Candidate struct {
	CandidateRanking
	ScoreTier     priority.ScoreTier `json:"score_tier"`
	MatchedSkills []AnnotatedSkill   `json:"matched_skills"`
	MissingSkills []AnnotatedSkill   `json:"missing_skills"`
}

// Summary aggregates a shortlist for the dashboard header.
type Summary struct {
	Total     int     `json:"total"`
	TierA     int     `json:"tier_a_count"`
	MeanScore float64 `json:"mean_score"`
}

// Present decorates a ranking with its score tier and per-skill priority
// annotations looked up in the job's skill-priority index. Lookup misses
// leave the annotation fields empty.
func Present(r CandidateRanking, idx priority.Index) Candidate {
	return Candidate{
		CandidateRanking: r,
		ScoreTier:        priority.ClassifyScore(r.FinalScore),
		MatchedSkills:    annotate(r.MatchedSkills, idx),
		MissingSkills:    annotate(r.MissingSkills, idx),
	}
}

// Summarize reduces a ranking list to its dashboard counters. The mean of
// an empty list is reported as 0 so no NaN reaches the view.
func Summarize(rankings []CandidateRanking) Summary {
	s := Summary{Total: len(rankings)}
	if len(rankings) == 0 {
		return s
	}

	sum := 0.0
	for _, r := range rankings {
		if r.Tier == "A" {
			s.TierA++
		}
		sum += r.FinalScore
	}
	s.MeanScore = math.Round(sum/float64(len(rankings))*100) / 100
	return s
}

func annotate(skills []string, idx priority.Index) []AnnotatedSkill {
	out := make([]AnnotatedSkill, 0, len(skills))
	for _, name := range skills {
		a := AnnotatedSkill{Skill: name}
		if sp, ok := idx.Lookup(name); ok {
			lvl := priority.Classify(sp.Priority)
			a.ImportanceLevel = sp.ImportanceLevel
			a.Weight = sp.Priority
			a.Color = lvl.Color
		}
		out = append(out, a)
	}
	return out
}
