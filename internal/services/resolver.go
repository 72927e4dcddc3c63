package services

import (
	"context"
	"net/url"
	"strings"

	apperrors "github.com/SAbotsup/hindi-mapper/internal/errors"
	"github.com/SAbotsup/hindi-mapper/internal/extractor"
	"github.com/SAbotsup/hindi-mapper/internal/similarity"
	"github.com/SAbotsup/hindi-mapper/pkg/logger"
)

// SearchHost is the slice of the host client the resolver needs.
type SearchHost interface {
	SearchPage(ctx context.Context, query string) (string, error)
}

// searchAttempt is one step of the progressive fallback strategy: the query
// narrows the search, while ranking is always judged against compareTitle.
type searchAttempt struct {
	query        string
	compareTitle string
}

// Resolver maps a metadata-service title onto the host catalog's internal
// identifier. The host indexes full titles imprecisely, so successively
// shorter queries broaden recall while the ranker handles disambiguation.
type Resolver struct {
	host   SearchHost
	ranker *similarity.Ranker
	logger logger.Logger
}

func NewResolver(host SearchHost, ranker *similarity.Ranker, logger logger.Logger) *Resolver {
	return &Resolver{
		host:   host,
		ranker: ranker,
		logger: logger,
	}
}

// Resolve tries each search attempt in priority order and returns the host
// identifier of the first attempt yielding a candidate. Exhausting every
// attempt is a resolution failure.
func (r *Resolver) Resolve(ctx context.Context, title string, synonyms []string) (string, error) {
	for _, attempt := range buildAttempts(title, synonyms) {
		id, ok := r.tryAttempt(ctx, attempt)
		if ok {
			return id, nil
		}
	}

	return "", apperrors.NewResolutionError(title)
}

func (r *Resolver) tryAttempt(ctx context.Context, attempt searchAttempt) (string, bool) {
	html, err := r.host.SearchPage(ctx, formatQuery(attempt.query))
	if err != nil {
		r.logger.Debugf("[Resolver] search for %q failed: %v", attempt.query, err)
		return "", false
	}

	listing := extractor.ParseSearchListing(html)

	if len(listing.Candidates) == 0 {
		if listing.FallbackID != "" {
			// IDs without titles: nothing to rank, first identifier stands.
			r.logger.Warnf("[Resolver] untitled results for %q, using first ID %s", attempt.query, listing.FallbackID)
			return listing.FallbackID, true
		}
		return "", false
	}

	best, ok := r.ranker.Best(attempt.compareTitle, listing.Candidates)
	if !ok {
		return "", false
	}

	if r.ranker.Confident(best.Similarity) {
		r.logger.Debugf("[Resolver] matched %q -> %s (%q, score %.2f)", attempt.compareTitle, best.ID, best.Title, best.Similarity)
	} else {
		r.logger.Warnf("[Resolver] low-confidence match %q -> %s (%q, score %.2f)", attempt.compareTitle, best.ID, best.Title, best.Similarity)
	}
	return best.ID, true
}

// buildAttempts fixes the fallback priority: full title, first three words,
// first two words (the shortened forms only when the title has more than two
// words), then each non-blank synonym compared against itself.
func buildAttempts(title string, synonyms []string) []searchAttempt {
	attempts := []searchAttempt{{query: title, compareTitle: title}}

	words := strings.Fields(title)
	if len(words) > 2 {
		if len(words) >= 3 {
			attempts = append(attempts, searchAttempt{
				query:        strings.Join(words[:3], " "),
				compareTitle: title,
			})
		}
		attempts = append(attempts, searchAttempt{
			query:        strings.Join(words[:2], " "),
			compareTitle: title,
		})
	}

	for _, synonym := range synonyms {
		if strings.TrimSpace(synonym) == "" {
			continue
		}
		attempts = append(attempts, searchAttempt{query: synonym, compareTitle: synonym})
	}

	return attempts
}

// formatQuery joins the query's words with the host's "+" separator,
// escaping each word.
func formatQuery(query string) string {
	words := strings.Fields(query)
	for i, word := range words {
		words[i] = url.QueryEscape(word)
	}
	return strings.Join(words, "+")
}
