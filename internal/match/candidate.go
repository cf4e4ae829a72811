package match

import (
	"sort"
)

// Candidate is a known name scored against a name that failed to resolve.
type Candidate struct {
	Name  string
	Score float64 // folded similarity (0-1)

	NormalizedName string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against the requested one.
// Returns candidates sorted by score (descending).
func RankCandidates(requested string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))

	req, reqBare := Fold(requested), FoldBare(requested)

	for _, name := range known {
		norm := Fold(name)

		// a unit suffix on either side should not cost the match
		score := max(Similarity(norm, req), Similarity(FoldBare(name), reqBare))

		candidates = append(candidates, Candidate{
			Name:           name,
			Score:          score,
			NormalizedName: norm,
		})
	}

	// Sort by score (descending), then by name for determinism
	sort.Sort(candidates)

	return candidates
}

// Suggest returns the known name closest to requested, if any is close enough
// to be worth offering as a hint.
func Suggest(requested string, known []string) (string, bool) {
	best := RankCandidates(requested, known).Best()
	if best == nil || best.Score < DefaultMinScore {
		return "", false
	}

	return best.Name, true
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	// Higher score comes first
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}
	// Tie-breaker: alphabetical by name
	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}
	diff := c[0].Score - c[1].Score
	return diff < threshold
}

// AboveThreshold returns candidates with score above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}
	return result
}

const (
	// DefaultMinScore is the minimum similarity for a name to be suggested.
	DefaultMinScore = 0.6
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.1
)
