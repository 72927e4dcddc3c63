package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAbotsup/hindi-mapper/internal/cache"
	"github.com/SAbotsup/hindi-mapper/internal/config"
	"github.com/SAbotsup/hindi-mapper/internal/database"
	"github.com/SAbotsup/hindi-mapper/internal/handlers"
	"github.com/SAbotsup/hindi-mapper/internal/middleware"
	"github.com/SAbotsup/hindi-mapper/internal/services"
	"github.com/SAbotsup/hindi-mapper/internal/similarity"
	"github.com/SAbotsup/hindi-mapper/pkg/logger"
)

type app struct {
	cfg       *config.Config
	log       logger.Logger
	db        database.Database
	container *services.Container
	handler   *handlers.Handler
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New()

	var db database.Database
	if cfg.DatabasePath != "" {
		db, err = database.NewBolt(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		log.Infof("[App] title cache database opened at %s", cfg.DatabasePath)
	}

	titleCache := cache.New(cfg.CacheSize, cfg.CacheTTL)

	anilist := services.NewAniList(cfg.AniListURL, titleCache, log)
	if db != nil {
		anilist.SetDB(db)
	}

	satoru := services.NewSatoru(cfg.SatoruURL, log)
	ranker := similarity.NewRanker(cfg.SimilarityThreshold)

	container := &services.Container{
		AniList:  anilist,
		Resolver: services.NewResolver(satoru, ranker, log),
		Pipeline: services.NewPipeline(satoru, log),
		Cache:    titleCache,
		DB:       db,
		Logger:   log,
	}

	return &app{
		cfg:       cfg,
		log:       log,
		db:        db,
		container: container,
		handler:   handlers.New(container, cfg),
	}, nil
}

// Run starts the HTTP server and blocks until it stops.
func (a *app) Run() error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(a.log))
	r.Use(middleware.CORS())
	r.Use(middleware.Gzip())

	a.handler.RegisterRoutes(r)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.container.Cache.StartCleanup(ctx)

	a.log.Infof("[App] starting HTTP server on port %s", a.cfg.Port)
	return http.ListenAndServe(":"+a.cfg.Port, r)
}

// ResolveOnce runs a single title lookup plus identity resolution; used by
// the resolve debug command.
func (a *app) ResolveOnce(ctx context.Context, anilistID string) (map[string]interface{}, error) {
	info, err := a.container.AniList.GetTitle(ctx, anilistID)
	if err != nil {
		return nil, err
	}

	satoruID, err := a.container.Resolver.Resolve(ctx, info.Title, info.Synonyms)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"anilistId": anilistID,
		"title":     info.Title,
		"synonyms":  info.Synonyms,
		"satoruId":  satoruID,
	}, nil
}

func (a *app) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Errorf("[App] failed to close database: %v", err)
		}
	}
}
