// Package constants defines application-wide constants and default values.
package constants

const (
	// Service metadata
	ServiceName    = "hindi-mapper"
	ServiceVersion = "1.0.0"

	// Default configuration values
	DefaultPort     = "3000"
	DefaultLogLevel = "info"

	// Remote services
	AniListAPIURL = "https://graphql.anilist.co"
	SatoruBaseURL = "https://www.satoru.one"

	// RedirectHost wraps the real playlist URL behind an intermediate
	// playback page; links pointing there get a second extraction pass.
	RedirectHost = "cdn.buycodeonline.com"

	// PlaylistExtension is the manifest suffix extracted from redirect pages.
	PlaylistExtension = ".m3u8"

	// DefaultSimilarityThreshold is the score at or above which a search
	// candidate counts as a confident match. Below it the top candidate is
	// still returned as a best-effort fallback.
	DefaultSimilarityThreshold = 0.5

	// Cache settings (AniList title lookups only)
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 24 // hours

	// Rate limiting for the AniList API
	AniListRateLimit = 10 // requests per second
	AniListRateBurst = 3  // burst capacity
)

// BrowserHeaders is the fixed outbound header set for the content host.
// The host rejects requests that do not look like a browser.
var BrowserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"Referer":                   "https://www.satoru.one/",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
	"Cache-Control":             "max-age=0",
}
