package similarity

import (
	"regexp"
	"sort"
	"strings"

	"github.com/SAbotsup/hindi-mapper/internal/models"
)

// shortTitleWords is how many leading words the prefix sub-score compares.
// Three words keep a shared franchise prefix while dropping divergent
// subtitles and season tags.
const shortTitleWords = 3

var reParenthetical = regexp.MustCompile(`\s*\([^)]*\)\s*`)

// Ranker orders search candidates by similarity to a target title.
type Ranker struct {
	threshold float64
}

// NewRanker creates a Ranker with the given confidence threshold.
func NewRanker(threshold float64) *Ranker {
	return &Ranker{threshold: threshold}
}

// Threshold returns the configured confidence threshold.
func (r *Ranker) Threshold() float64 {
	return r.threshold
}

// Confident reports whether a score counts as a confident match.
func (r *Ranker) Confident(score float64) bool {
	return score >= r.threshold
}

// Best scores every candidate against the target title and returns the
// highest-scoring one. Ties keep extraction order. The winner is returned
// even below the confidence threshold; callers that need strict confidence
// must check Similarity themselves. ok is false only when there are no
// candidates at all.
func (r *Ranker) Best(target string, candidates []models.Candidate) (models.Candidate, bool) {
	if len(candidates) == 0 {
		return models.Candidate{}, false
	}

	ranked := make([]models.Candidate, len(candidates))
	copy(ranked, candidates)

	for i := range ranked {
		ranked[i].Similarity = scoreCandidate(target, ranked[i].Title)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Similarity > ranked[j].Similarity
	})

	return ranked[0], true
}

// scoreCandidate is the maximum of three independent sub-scores. A single
// metric produces both false positives (season-suffix mismatches) and false
// negatives (reordered subtitles), so the best of the three wins.
func scoreCandidate(target, title string) float64 {
	exact := Score(target, title)
	clean := Score(stripParentheticals(target), stripParentheticals(title))
	short := Score(firstWords(target, shortTitleWords), firstWords(title, shortTitleWords))

	best := exact
	if clean > best {
		best = clean
	}
	if short > best {
		best = short
	}
	return best
}

// stripParentheticals drops parenthesized annotations such as "(TV)" or
// "(2024)".
func stripParentheticals(s string) string {
	return strings.TrimSpace(reParenthetical.ReplaceAllString(s, " "))
}

// firstWords truncates s to its first n whitespace-delimited words.
func firstWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
