package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/SAbotsup/hindi-mapper/internal/cache"
	"github.com/SAbotsup/hindi-mapper/internal/constants"
	"github.com/SAbotsup/hindi-mapper/internal/database"
	apperrors "github.com/SAbotsup/hindi-mapper/internal/errors"
	"github.com/SAbotsup/hindi-mapper/internal/models"
	"github.com/SAbotsup/hindi-mapper/pkg/httputil"
	"github.com/SAbotsup/hindi-mapper/pkg/logger"
	"github.com/SAbotsup/hindi-mapper/pkg/ratelimiter"
)

const mediaQuery = `
query ($id: Int) {
  Media (id: $id, type: ANIME) {
    id
    title {
      romaji
      english
      native
    }
    synonyms
  }
}`

// reTrailingTag strips one trailing parenthetical tag such as "(TV)".
var reTrailingTag = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// AniList looks up display titles and synonyms for AniList media IDs.
type AniList struct {
	apiURL      string
	cache       *cache.LRUCache
	db          database.Database
	rateLimiter *ratelimiter.TokenBucket
	httpClient  *http.Client
	logger      logger.Logger
}

func NewAniList(apiURL string, cache *cache.LRUCache, logger logger.Logger) *AniList {
	if apiURL == "" {
		apiURL = constants.AniListAPIURL
	}
	return &AniList{
		apiURL:      apiURL,
		cache:       cache,
		rateLimiter: ratelimiter.NewTokenBucket(constants.AniListRateBurst, constants.AniListRateLimit),
		httpClient:  httputil.NewHTTPClient(constants.AniListCallTimeout),
		logger:      logger,
	}
}

// SetDB attaches a persistent cache for looked-up titles.
func (a *AniList) SetDB(db database.Database) {
	a.db = db
}

// GetTitle returns the display title (preferring the English form, falling
// back to romaji, with one trailing tag stripped) plus synonyms for an
// AniList ID. Any failure surfaces as a single title-lookup error.
func (a *AniList) GetTitle(ctx context.Context, anilistID string) (*models.TitleInfo, error) {
	cacheKey := fmt.Sprintf("anilist:%s", anilistID)

	if data, found := a.cache.Get(cacheKey); found {
		return data.(*models.TitleInfo), nil
	}

	if cached := a.checkDatabaseCache(anilistID, cacheKey); cached != nil {
		return cached, nil
	}

	info, err := a.fetchTitle(ctx, anilistID)
	if err != nil {
		return nil, apperrors.NewTitleLookupError(err)
	}

	a.cache.Set(cacheKey, info)
	a.storeTitleCache(anilistID, info)

	return info, nil
}

func (a *AniList) checkDatabaseCache(anilistID, cacheKey string) *models.TitleInfo {
	if a.db == nil {
		return nil
	}

	cached, err := a.db.GetCachedTitle(anilistID)
	if err != nil || cached == nil {
		return nil
	}

	info := &models.TitleInfo{
		Title:    cached.Title,
		Synonyms: cached.Synonyms,
	}
	a.cache.Set(cacheKey, info)
	return info
}

func (a *AniList) fetchTitle(ctx context.Context, anilistID string) (*models.TitleInfo, error) {
	id, err := strconv.Atoi(anilistID)
	if err != nil {
		return nil, fmt.Errorf("invalid AniList ID %q", anilistID)
	}

	a.rateLimiter.Wait()

	reqBody, err := json.Marshal(models.GraphQLRequest{
		Query:     mediaQuery,
		Variables: map[string]interface{}{"id": id},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode AniList query: %w", err)
	}

	a.logger.Debugf("[AniList] fetching title for ID %s", anilistID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to build AniList request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch AniList data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AniList API error: status %d", resp.StatusCode)
	}

	var alResp models.AniListResponse
	if err := json.NewDecoder(resp.Body).Decode(&alResp); err != nil {
		return nil, fmt.Errorf("failed to decode AniList response: %w", err)
	}
	if len(alResp.Errors) > 0 {
		return nil, fmt.Errorf("AniList API error: %s", alResp.Errors[0].Message)
	}

	title := alResp.Data.Media.Title.English
	if title == "" {
		title = alResp.Data.Media.Title.Romaji
	}
	if title == "" {
		return nil, fmt.Errorf("no usable title for AniList ID %s", anilistID)
	}

	return &models.TitleInfo{
		Title:    reTrailingTag.ReplaceAllString(title, ""),
		Synonyms: alResp.Data.Media.Synonyms,
	}, nil
}

func (a *AniList) storeTitleCache(anilistID string, info *models.TitleInfo) {
	if a.db == nil {
		return
	}

	err := a.db.StoreTitle(&database.TitleCache{
		AniListID: anilistID,
		Title:     info.Title,
		Synonyms:  info.Synonyms,
	})
	if err != nil {
		a.logger.Errorf("[AniList] failed to store cache for %s: %v", anilistID, err)
	}
}
