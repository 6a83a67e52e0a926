// Package priority implements the classification rules that turn raw
// matching numbers (skill weights, candidate scores) into the discrete,
// color-coded tiers the client renders. Every function here is pure and
// total: any real-valued input maps to exactly one tier.
package priority

type Level struct {
	Label string
	// Threshold is the inclusive lower bound on the input weight.
	Threshold float64
	// Representative is the canonical weight shown when the level is
	// picked from a preset chip in the job editor.
	Representative float64
	Color          string
}

// Levels ordered by descending threshold. Classification scans this slice
// top-down and returns the first level whose threshold the weight meets,
// so Optional acts as the catch-all for anything below 0.20.
var Levels = []Level{
	{Label: "Critical", Threshold: 0.90, Representative: 1.00, Color: "#dc2626"},
	{Label: "High", Threshold: 0.65, Representative: 0.75, Color: "#ea580c"},
	{Label: "Medium", Threshold: 0.40, Representative: 0.50, Color: "#f59e0b"},
	{Label: "Low", Threshold: 0.20, Representative: 0.25, Color: "#3b82f6"},
	{Label: "Optional", Threshold: 0.00, Representative: 0.10, Color: "#9ca3af"},
}

// nearestTolerance is the absolute distance within which a preset chip is
// highlighted as matching the current weight.
const nearestTolerance = 0.13

// Classify maps a priority weight to its level. Weights above 1.0 satisfy
// every threshold and classify as Critical; weights below 0 fall through
// to Optional. No input is rejected.
func Classify(weight float64) Level {
	for _, lvl := range Levels {
		if weight >= lvl.Threshold {
			return lvl
		}
	}
	return Levels[len(Levels)-1]
}

// Rank returns the position of the level in the ordered table, 0 being the
// most critical. Useful for monotonicity checks and sorting.
func (l Level) Rank() int {
	for i, lvl := range Levels {
		if lvl.Label == l.Label {
			return i
		}
	}
	return len(Levels) - 1
}

// NearestLevelMatch returns the level whose representative weight lies
// within the chip-highlight tolerance of the given weight. When several
// qualify the closest one wins, ties going to the more critical level
// because Levels is scanned in descending order with a strict comparison.
// This drives UI highlighting only; Classify stays authoritative.
func NearestLevelMatch(weight float64) (Level, bool) {
	best := Level{}
	bestDiff := 0.0
	found := false

	for _, lvl := range Levels {
		diff := abs(weight - lvl.Representative)
		if diff > nearestTolerance {
			continue
		}
		if !found || diff < bestDiff {
			best = lvl
			bestDiff = diff
			found = true
		}
	}

	return best, found
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
