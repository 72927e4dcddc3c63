package services

import (
	"context"
	"sync"

	apperrors "github.com/SAbotsup/hindi-mapper/internal/errors"
	"github.com/SAbotsup/hindi-mapper/internal/models"
	"github.com/SAbotsup/hindi-mapper/pkg/logger"
)

// SourceHost is the slice of the host client the pipeline needs.
type SourceHost interface {
	EpisodeList(ctx context.Context, satoruID string) ([]models.Episode, error)
	EpisodeServers(ctx context.Context, episodeID string) ([]models.Server, error)
	EpisodeSource(ctx context.Context, sourceID string) (models.SourceRecord, error)
}

// Pipeline walks the host's episode -> servers -> sources hierarchy for a
// resolved identifier. Host mirrors fail independently, so the final stage
// isolates per-server faults: a dead mirror is dropped, never fatal.
type Pipeline struct {
	host   SourceHost
	logger logger.Logger
}

func NewPipeline(host SourceHost, logger logger.Logger) *Pipeline {
	return &Pipeline{
		host:   host,
		logger: logger,
	}
}

// Fetch produces the stream descriptors for one episode of a resolved host
// title. The requested episode number is compared as an opaque string:
// leading zeros or formatting differences miss by design.
func (p *Pipeline) Fetch(ctx context.Context, satoruID, episodeNumber string) (*models.EpisodeSources, error) {
	episodes, err := p.host.EpisodeList(ctx, satoruID)
	if err != nil {
		return nil, apperrors.NewHostError("failed to fetch episode list", err)
	}

	episode, found := findEpisode(episodes, episodeNumber)
	if !found {
		return nil, apperrors.NewEpisodeNotFoundError(episodeNumber)
	}

	servers, err := p.host.EpisodeServers(ctx, episode.ID)
	if err != nil {
		return nil, apperrors.NewHostError("failed to fetch episode servers", err)
	}
	if len(servers) == 0 {
		return nil, apperrors.NewNoServersError()
	}

	sources := p.fetchSources(ctx, servers)

	p.logger.Infof("[Pipeline] episode %s: %d/%d sources fetched", episode.ID, len(sources), len(servers))

	return &models.EpisodeSources{
		EpisodeID:   episode.ID,
		ServerCount: len(servers),
		Sources:     sources,
	}, nil
}

// fetchSources fetches every server's source concurrently. Results keep
// server order; a failed fetch leaves a gap that is compacted out.
func (p *Pipeline) fetchSources(ctx context.Context, servers []models.Server) []models.ServerSource {
	results := make([]*models.ServerSource, len(servers))

	var wg sync.WaitGroup
	for i, server := range servers {
		wg.Add(1)
		go func(i int, server models.Server) {
			defer wg.Done()

			source, err := p.host.EpisodeSource(ctx, server.ID)
			if err != nil {
				p.logger.Debugf("[Pipeline] skipping server %s (%s): %v", server.ID, server.Name, err)
				return
			}
			results[i] = &models.ServerSource{Server: server, Source: source}
		}(i, server)
	}
	wg.Wait()

	sources := make([]models.ServerSource, 0, len(servers))
	for _, result := range results {
		if result != nil {
			sources = append(sources, *result)
		}
	}
	return sources
}

func findEpisode(episodes []models.Episode, number string) (models.Episode, bool) {
	for _, episode := range episodes {
		if episode.Number == number {
			return episode, true
		}
	}
	return models.Episode{}, false
}
