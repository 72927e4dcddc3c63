package constants

import "time"

const (
	// DefaultRequestTimeout bounds one full mapper request (resolution plus
	// the episode/server/source chain).
	DefaultRequestTimeout = 30 * time.Second

	// HostCallTimeout bounds a single outbound call so one slow mirror
	// cannot stall the whole request.
	HostCallTimeout = 10 * time.Second

	// AniListCallTimeout bounds the metadata lookup.
	AniListCallTimeout = 10 * time.Second
)
