// Package models defines the data structures flowing through the mapper.
package models

// TitleInfo is the result of the metadata lookup: the display title plus any
// alternate titles usable as fallback search queries.
type TitleInfo struct {
	Title    string   `json:"title"`
	Synonyms []string `json:"synonyms"`
}

// Candidate is a possible host-catalog match produced during one search
// attempt. Similarity is filled in by the ranker.
type Candidate struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Similarity float64 `json:"similarity"`
}

// Episode is one entry of the host's episode listing. Number is an opaque
// string: it is compared to the requested episode number without numeric
// coercion, so "05" and "5" are different episodes.
type Episode struct {
	Title   string `json:"title"`
	Number  string `json:"number"`
	ID      string `json:"id"`
	PageURL string `json:"url"`
}

// Server is one hosting mirror offered for an episode.
type Server struct {
	ID       string `json:"id"`
	ServerID string `json:"serverId"`
	Name     string `json:"name"`
}

// SourceRecord is the per-server stream descriptor. It is either the host's
// source payload passed through, or a resolved playlist record
// (Type "m3u8") when the declared link pointed at the redirect host.
type SourceRecord struct {
	Type   string `json:"type,omitempty"`
	Link   string `json:"link,omitempty"`
	Server int    `json:"server,omitempty"`
}

// ServerSource pairs a server with its successfully fetched source.
type ServerSource struct {
	Server
	Source SourceRecord `json:"source"`
}

// EpisodeSources is the aggregate pipeline result for one episode.
// ServerCount reflects every mirror discovered; Sources holds only the ones
// whose fetch succeeded, possibly fewer.
type EpisodeSources struct {
	EpisodeID   string
	ServerCount int
	Sources     []ServerSource
}
