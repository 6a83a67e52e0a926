package priority

import "strings"

// SkillPriority associates a skill name with the weight a recruiter gave
// it while authoring a job. ImportanceLevel is the lowercased label of the
// level the weight classifies into; it travels with the job record so the
// matcher engine and the client agree on wording.
type SkillPriority struct {
	Skill           string  `json:"skill"`
	Priority        float64 `json:"priority"`
	ImportanceLevel string  `json:"importance_level"`
}

// NewSkillPriority derives the importance level from the weight.
func NewSkillPriority(skill string, weight float64) SkillPriority {
	return SkillPriority{
		Skill:           skill,
		Priority:        weight,
		ImportanceLevel: strings.ToLower(Classify(weight).Label),
	}
}

// Index maps normalized skill names to their priority entries for the
// annotation lookups done while rendering a candidate's matched and
// missing skill lists.
type Index map[string]SkillPriority

// NormalizeSkill is the shared key normalization: lowercase plus trimmed
// leading/trailing whitespace. Both index construction and lookup apply
// it so matching is case- and whitespace-insensitive on both sides.
func NormalizeSkill(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// BuildIndex builds a lookup index from a job's skill-priority list. Two
// entries normalizing to the same key collapse last-write-wins; that is a
// deliberate policy, not an error.
func BuildIndex(priorities []SkillPriority) Index {
	idx := make(Index, len(priorities))
	for _, sp := range priorities {
		key := NormalizeSkill(sp.Skill)
		if key == "" {
			continue
		}
		idx[key] = sp
	}
	return idx
}

// Lookup finds the priority entry for a skill name. Absence is an
// expected outcome (a matched skill the job never explicitly prioritized)
// and callers render no priority tag in that case.
func (idx Index) Lookup(name string) (SkillPriority, bool) {
	sp, ok := idx[NormalizeSkill(name)]
	return sp, ok
}

// CountByLevel partitions a skill-priority list into per-level counts,
// keyed by level label. Bands are mutually exclusive and exhaustive, so
// the counts always sum to len(priorities).
func CountByLevel(priorities []SkillPriority) map[string]int {
	counts := make(map[string]int, len(Levels))
	for _, lvl := range Levels {
		counts[lvl.Label] = 0
	}
	for _, sp := range priorities {
		counts[Classify(sp.Priority).Label]++
	}
	return counts
}
