// Package similarity scores how alike two titles are, tolerating the
// case, punctuation, whitespace and diacritic differences that two catalogs
// routinely disagree on.
package similarity

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum   = regexp.MustCompile(`[^a-z0-9\s]+`)
	reMultiSpace = regexp.MustCompile(`\s+`)
)

// EditDistance returns the Levenshtein distance between a and b.
func EditDistance(a, b string) int {
	return fuzzy.LevenshteinDistance(a, b)
}

// stripDiacritics removes combining marks after NFD decomposition.
func stripDiacritics(s string) string {
	decomp := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomp))
	for _, r := range decomp {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize canonicalizes a title for comparison: width/compatibility folding,
// diacritic stripping, lower-casing, removal of everything that is not
// alphanumeric or whitespace, and whitespace collapsing. Pure and idempotent.
func Normalize(title string) string {
	s := strings.TrimSpace(title)
	if s == "" {
		return ""
	}

	s = norm.NFKC.String(s)
	s = stripDiacritics(s)
	s = strings.ToLower(s)
	s = reNonAlnum.ReplaceAllString(s, "")
	s = reMultiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Score returns a similarity in [0, 1] between two raw titles, 1 meaning
// identical after normalization. Equal normalized forms short-circuit to
// exactly 1.0 so exact matches never suffer floating-point erosion.
func Score(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	na := Normalize(a)
	nb := Normalize(b)

	if na == nb {
		return 1
	}
	if na == "" || nb == "" {
		return 0
	}

	distance := EditDistance(na, nb)
	maxLen := len(na)
	if len(nb) > maxLen {
		maxLen = len(nb)
	}

	score := 1 - float64(distance)/float64(maxLen)
	if score < 0 {
		return 0
	}
	return score
}
