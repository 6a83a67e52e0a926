package priority

// ScoreTier classifies an overall 0-100 score into a display band. Used
// uniformly for resume-analysis scores and candidate match scores.
type ScoreTier string

const (
	ScoreExcellent ScoreTier = "excellent"
	ScoreGood      ScoreTier = "good"
	ScoreFair      ScoreTier = "fair"
	ScorePoor      ScoreTier = "poor"
)

// ClassifyScore maps a score to its band. Boundary values belong to the
// higher band. Total over all reals, same input always yields same output.
func ClassifyScore(score float64) ScoreTier {
	switch {
	case score >= 80:
		return ScoreExcellent
	case score >= 60:
		return ScoreGood
	case score >= 40:
		return ScoreFair
	default:
		return ScorePoor
	}
}
