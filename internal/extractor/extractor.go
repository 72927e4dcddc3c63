// Package extractor mines structured records out of the host's
// semi-structured markup. Each function targets one known markup shape and
// treats zero matches as a normal empty result: markup absence is expected
// for some titles and must never abort the pipeline.
package extractor

import (
	"regexp"
	"strings"

	"github.com/SAbotsup/hindi-mapper/internal/constants"
	"github.com/SAbotsup/hindi-mapper/internal/models"
)

var (
	// Search listing: the film-poster anchor carries both the internal ID
	// and the display title in one tag.
	rePosterWithTitle = regexp.MustCompile(`(?i)<a [^>]*class="film-poster-ahref[^"]*"[^>]* data-id="(\d+)"[^>]*title="([^"]+)"[^>]*>`)

	// Fallback sub-patterns when the combined anchor shape drifts: IDs and
	// titles matched separately, paired positionally.
	rePosterID    = regexp.MustCompile(`(?i)<a [^>]*class="film-poster-ahref[^"]*"[^>]* data-id="(\d+)"[^>]*>`)
	reDynamicName = regexp.MustCompile(`(?i)<a href="[^"]+" title="([^"]+)" class="dynamic-name"[^>]*>`)

	// Episode listing entry: title, episode number, internal ID, page URL.
	reEpisode = regexp.MustCompile(`<a title="([^"]*)" class="ssl-item[^"]*" data-number="(\d+)" data-id="(\d+)" href="([^"]+)">`)

	// Server listing block: numeric ID, server ID, display name.
	reServer = regexp.MustCompile(`<div class="server-item" data-type="[^"]*" data-id="(\d+)" data-server-id="(\d+)">\s*<a[^>]*>([^<]+)</a>`)

	// Playlist assignment embedded in a redirect page's script content.
	// "mastreUrl" is the host's own spelling.
	rePlaylistURL = regexp.MustCompile(`const\s+mastreUrl\s*=\s*['"]([^'"]+` + regexp.QuoteMeta(constants.PlaylistExtension) + `)['"]`)
)

// SearchListing is the result of mining one search-result page.
type SearchListing struct {
	// Candidates carries (ID, title) pairs ready for ranking.
	Candidates []models.Candidate

	// FallbackID is set when identifier-bearing anchors were found but no
	// titles could be paired with them. The ranker has nothing to compare,
	// so the first identifier stands in as a last resort.
	FallbackID string
}

// ParseSearchListing extracts match candidates from a search-result page.
// The primary pattern matches anchors carrying ID and title together; when
// it yields nothing, IDs and titles are matched separately and paired
// positionally, but only when their counts agree.
func ParseSearchListing(html string) SearchListing {
	var listing SearchListing

	for _, m := range rePosterWithTitle.FindAllStringSubmatch(html, -1) {
		listing.Candidates = append(listing.Candidates, models.Candidate{ID: m[1], Title: m[2]})
	}
	if len(listing.Candidates) > 0 {
		return listing
	}

	ids := captureAll(rePosterID, html)
	titles := captureAll(reDynamicName, html)

	switch {
	case len(ids) > 0 && len(ids) == len(titles):
		for i := range ids {
			listing.Candidates = append(listing.Candidates, models.Candidate{ID: ids[i], Title: titles[i]})
		}
	case len(ids) > 0:
		listing.FallbackID = ids[0]
	}

	return listing
}

// ParseEpisodeList extracts the ordered episode sequence from an
// episode-listing fragment. Order follows the document, which is ascending
// episode number as published.
func ParseEpisodeList(html string) []models.Episode {
	var episodes []models.Episode
	for _, m := range reEpisode.FindAllStringSubmatch(html, -1) {
		episodes = append(episodes, models.Episode{
			Title:   m[1],
			Number:  m[2],
			ID:      m[3],
			PageURL: m[4],
		})
	}
	return episodes
}

// ParseServerList extracts the hosting mirrors offered for an episode.
func ParseServerList(html string) []models.Server {
	var servers []models.Server
	for _, m := range reServer.FindAllStringSubmatch(html, -1) {
		servers = append(servers, models.Server{
			ID:       m[1],
			ServerID: m[2],
			Name:     strings.TrimSpace(m[3]),
		})
	}
	return servers
}

// ParsePlaylistURL extracts the playlist URL assigned inside a redirect
// page's script content. The second return is false when the assignment is
// absent.
func ParsePlaylistURL(html string) (string, bool) {
	m := rePlaylistURL.FindStringSubmatch(html)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func captureAll(re *regexp.Regexp, html string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(html, -1) {
		out = append(out, m[1])
	}
	return out
}
