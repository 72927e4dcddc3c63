// Package services provides the application services and their dependency
// injection container.
package services

import (
	"context"

	"github.com/SAbotsup/hindi-mapper/internal/cache"
	"github.com/SAbotsup/hindi-mapper/internal/database"
	"github.com/SAbotsup/hindi-mapper/internal/models"
	"github.com/SAbotsup/hindi-mapper/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	AniList  TitleService
	Resolver ResolverService
	Pipeline PipelineService
	Cache    *cache.LRUCache
	DB       database.Database
	Logger   logger.Logger
}

// TitleService defines the metadata-side title lookup.
type TitleService interface {
	GetTitle(ctx context.Context, anilistID string) (*models.TitleInfo, error)
}

// ResolverService defines the cross-catalog identity resolution.
type ResolverService interface {
	Resolve(ctx context.Context, title string, synonyms []string) (string, error)
}

// PipelineService defines the episode/server/source extraction chain.
type PipelineService interface {
	Fetch(ctx context.Context, satoruID, episodeNumber string) (*models.EpisodeSources, error)
}
