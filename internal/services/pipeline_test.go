package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/SAbotsup/hindi-mapper/internal/errors"
	"github.com/SAbotsup/hindi-mapper/internal/models"
	"github.com/SAbotsup/hindi-mapper/pkg/logger"
)

type fakeSourceHost struct {
	episodes    []models.Episode
	episodesErr error
	servers     []models.Server
	serversErr  error
	sources     map[string]models.SourceRecord
	sourceErrs  map[string]error
}

func (f *fakeSourceHost) EpisodeList(_ context.Context, _ string) ([]models.Episode, error) {
	return f.episodes, f.episodesErr
}

func (f *fakeSourceHost) EpisodeServers(_ context.Context, _ string) ([]models.Server, error) {
	return f.servers, f.serversErr
}

func (f *fakeSourceHost) EpisodeSource(_ context.Context, sourceID string) (models.SourceRecord, error) {
	if err, ok := f.sourceErrs[sourceID]; ok {
		return models.SourceRecord{}, err
	}
	return f.sources[sourceID], nil
}

func testEpisodes() []models.Episode {
	return []models.Episode{
		{Title: "Episode 4", Number: "4", ID: "1004", PageURL: "/watch?ep=1004"},
		{Title: "Episode 5", Number: "5", ID: "1005", PageURL: "/watch?ep=1005"},
		{Title: "Episode 6", Number: "6", ID: "1006", PageURL: "/watch?ep=1006"},
	}
}

func TestPipelinePartialFailureTolerance(t *testing.T) {
	host := &fakeSourceHost{
		episodes: testEpisodes(),
		servers: []models.Server{
			{ID: "1", ServerID: "4", Name: "HD-1"},
			{ID: "2", ServerID: "1", Name: "HD-2"},
			{ID: "3", ServerID: "5", Name: "HD-3"},
		},
		sources: map[string]models.SourceRecord{
			"1": {Type: "iframe", Link: "https://mirror-one.example/embed", Server: 4},
			"3": {Type: "iframe", Link: "https://mirror-three.example/embed", Server: 5},
		},
		sourceErrs: map[string]error{
			"2": errors.New("mirror down"),
		},
	}
	pipeline := NewPipeline(host, logger.New())

	result, err := pipeline.Fetch(context.Background(), "112", "5")
	require.NoError(t, err)

	assert.Equal(t, "1005", result.EpisodeID)
	// Every discovered mirror is counted, even the failed one.
	assert.Equal(t, 3, result.ServerCount)
	// Only the successful fetches survive, in server order.
	require.Len(t, result.Sources, 2)
	assert.Equal(t, "1", result.Sources[0].ID)
	assert.Equal(t, "3", result.Sources[1].ID)
	assert.Equal(t, "https://mirror-one.example/embed", result.Sources[0].Source.Link)
}

func TestPipelineEpisodeLookup(t *testing.T) {
	host := &fakeSourceHost{
		episodes: testEpisodes(),
		servers:  []models.Server{{ID: "1", ServerID: "4", Name: "HD-1"}},
		sources:  map[string]models.SourceRecord{"1": {Link: "https://mirror.example"}},
	}
	pipeline := NewPipeline(host, logger.New())

	t.Run("StringEquality", func(t *testing.T) {
		result, err := pipeline.Fetch(context.Background(), "112", "5")
		require.NoError(t, err)
		assert.Equal(t, "1005", result.EpisodeID)
	})

	t.Run("NoNumericCoercion", func(t *testing.T) {
		// "05" never equals "5": numbers are opaque strings.
		_, err := pipeline.Fetch(context.Background(), "112", "05")
		require.Error(t, err)

		var me *apperrors.MapperError
		require.True(t, errors.As(err, &me))
		assert.Equal(t, apperrors.ErrorTypeEpisodeNotFound, me.Type)
	})

	t.Run("MissingNumber", func(t *testing.T) {
		_, err := pipeline.Fetch(context.Background(), "112", "7")
		require.Error(t, err)
		assert.Equal(t, 404, apperrors.HTTPStatus(err))
	})
}

func TestPipelineTerminalConditions(t *testing.T) {
	t.Run("EpisodeListFailure", func(t *testing.T) {
		host := &fakeSourceHost{episodesErr: errors.New("host unreachable")}
		pipeline := NewPipeline(host, logger.New())

		_, err := pipeline.Fetch(context.Background(), "112", "1")
		require.Error(t, err)

		var me *apperrors.MapperError
		require.True(t, errors.As(err, &me))
		assert.Equal(t, apperrors.ErrorTypeHostUnreachable, me.Type)
	})

	t.Run("ServerListFailure", func(t *testing.T) {
		host := &fakeSourceHost{
			episodes:   testEpisodes(),
			serversErr: errors.New("host unreachable"),
		}
		pipeline := NewPipeline(host, logger.New())

		_, err := pipeline.Fetch(context.Background(), "112", "4")
		require.Error(t, err)
	})

	t.Run("NoServers", func(t *testing.T) {
		host := &fakeSourceHost{episodes: testEpisodes()}
		pipeline := NewPipeline(host, logger.New())

		_, err := pipeline.Fetch(context.Background(), "112", "4")
		require.Error(t, err)

		var me *apperrors.MapperError
		require.True(t, errors.As(err, &me))
		assert.Equal(t, apperrors.ErrorTypeNoServersFound, me.Type)
		assert.Equal(t, 404, apperrors.HTTPStatus(err))
	})

	t.Run("AllSourcesFailedIsStillSuccess", func(t *testing.T) {
		host := &fakeSourceHost{
			episodes:   testEpisodes(),
			servers:    []models.Server{{ID: "1", ServerID: "4", Name: "HD-1"}},
			sourceErrs: map[string]error{"1": errors.New("mirror down")},
		}
		pipeline := NewPipeline(host, logger.New())

		result, err := pipeline.Fetch(context.Background(), "112", "4")
		require.NoError(t, err)
		assert.Equal(t, 1, result.ServerCount)
		assert.Empty(t, result.Sources)
	})
}
