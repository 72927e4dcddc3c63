package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/SAbotsup/hindi-mapper/internal/constants"
	"github.com/SAbotsup/hindi-mapper/internal/extractor"
	"github.com/SAbotsup/hindi-mapper/internal/models"
	"github.com/SAbotsup/hindi-mapper/pkg/httputil"
	"github.com/SAbotsup/hindi-mapper/pkg/logger"
)

// Satoru is the client for the content-hosting catalog. Every request
// carries a fixed browser-impersonating header set; the host rejects
// anything else.
type Satoru struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

func NewSatoru(baseURL string, logger logger.Logger) *Satoru {
	if baseURL == "" {
		baseURL = constants.SatoruBaseURL
	}
	return &Satoru{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httputil.NewHeaderClient(constants.HostCallTimeout, constants.BrowserHeaders),
		logger:     logger,
	}
}

// SearchPage fetches the search-result document for an already formatted
// keyword query.
func (s *Satoru) SearchPage(ctx context.Context, query string) (string, error) {
	pageURL := fmt.Sprintf("%s/filter?keyword=%s", s.baseURL, query)
	body, err := s.get(ctx, pageURL)
	if err != nil {
		return "", fmt.Errorf("search request failed: %w", err)
	}
	return string(body), nil
}

// EpisodeList fetches and mines the episode listing for a host title ID.
func (s *Satoru) EpisodeList(ctx context.Context, satoruID string) ([]models.Episode, error) {
	fragment, err := s.getFragment(ctx, fmt.Sprintf("%s/ajax/episode/list/%s", s.baseURL, satoruID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch episode list: %w", err)
	}
	return extractor.ParseEpisodeList(fragment), nil
}

// EpisodeServers fetches and mines the server listing for an episode ID.
func (s *Satoru) EpisodeServers(ctx context.Context, episodeID string) ([]models.Server, error) {
	fragment, err := s.getFragment(ctx, fmt.Sprintf("%s/ajax/episode/servers?episodeId=%s", s.baseURL, url.QueryEscape(episodeID)))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch episode servers: %w", err)
	}
	return extractor.ParseServerList(fragment), nil
}

// EpisodeSource fetches one server's source record. When the declared link
// targets the known redirect host, the true playlist URL is extracted from
// the playback page and the record is rewritten to an m3u8 descriptor; on
// any failure there the original record passes through unchanged. The
// rewrite is attempted at most once per record.
func (s *Satoru) EpisodeSource(ctx context.Context, sourceID string) (models.SourceRecord, error) {
	body, err := s.get(ctx, fmt.Sprintf("%s/ajax/episode/sources?id=%s", s.baseURL, url.QueryEscape(sourceID)))
	if err != nil {
		return models.SourceRecord{}, fmt.Errorf("failed to fetch episode source: %w", err)
	}

	var record models.SourceRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return models.SourceRecord{}, fmt.Errorf("failed to decode episode source: %w", err)
	}

	if record.Link != "" && strings.Contains(record.Link, constants.RedirectHost) {
		if playlist, ok := s.resolvePlaylist(ctx, record.Link); ok {
			return models.SourceRecord{
				Type:   "m3u8",
				Link:   playlist,
				Server: record.Server,
			}, nil
		}
	}

	return record, nil
}

// resolvePlaylist fetches a redirect playback page and extracts the playlist
// URL assigned in its script content. A network error or pattern miss just
// reports false; the caller keeps the unresolved record.
func (s *Satoru) resolvePlaylist(ctx context.Context, pageURL string) (string, bool) {
	body, err := s.get(ctx, pageURL)
	if err != nil {
		s.logger.Debugf("[Satoru] failed to fetch redirect page %s: %v", pageURL, err)
		return "", false
	}

	playlist, ok := extractor.ParsePlaylistURL(string(body))
	if !ok {
		s.logger.Debugf("[Satoru] no playlist assignment on redirect page %s", pageURL)
		return "", false
	}
	return playlist, true
}

// getFragment fetches an AJAX endpoint returning a JSON-wrapped HTML fragment.
func (s *Satoru) getFragment(ctx context.Context, reqURL string) (string, error) {
	body, err := s.get(ctx, reqURL)
	if err != nil {
		return "", err
	}

	var envelope models.FragmentEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("failed to decode fragment envelope: %w", err)
	}
	return envelope.HTML, nil
}

func (s *Satoru) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("host returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
