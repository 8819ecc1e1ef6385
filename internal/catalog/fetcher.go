package catalog

import (
	"context"
	"time"

	"musicfun/internal/logging"
)

// Source tells whether a fetch result came from the upstream API or the
// curated fallback.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// FetchResult is the outcome of one catalog fetch.
type FetchResult struct {
	Source Source
	Tracks []Track
}

// Degraded reports whether the result is the curated fallback.
func (r FetchResult) Degraded() bool {
	return r.Source == SourceFallback
}

// Upstream is the third-party tracks API.
type Upstream interface {
	FetchTracks(ctx context.Context) ([]RawTrack, error)
}

// Fetcher loads the catalog from upstream and never fails: any upstream error
// is logged and answered with the curated base.
type Fetcher struct {
	upstream Upstream
	curated  *CuratedBase
	clock    func() time.Time
}

// Option customizes a Fetcher.
type Option func(*Fetcher)

// WithClock overrides the time source used for timestamp defaulting.
func WithClock(clock func() time.Time) Option {
	return func(f *Fetcher) {
		f.clock = clock
	}
}

// NewFetcher constructs a Fetcher over upstream and the curated base.
func NewFetcher(upstream Upstream, curated *CuratedBase, opts ...Option) *Fetcher {
	f := &Fetcher{
		upstream: upstream,
		curated:  curated,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Curated returns the curated base the fetcher defaults against.
func (f *Fetcher) Curated() *CuratedBase {
	return f.curated
}

// Fetch performs one upstream call and normalizes the result.
func (f *Fetcher) Fetch(ctx context.Context) FetchResult {
	logger := logging.WithContext(ctx)

	if f.upstream == nil {
		logger.Warn().Msg("No upstream configured, serving curated tracks")
		return f.fallback()
	}

	start := time.Now()
	raws, err := f.upstream.FetchTracks(ctx)
	if err != nil {
		logger.Warn().
			Err(err).
			Dur("duration_ms", time.Since(start)).
			Int("fallback_tracks", f.curated.Len()).
			Msg("Error fetching tracks, serving curated tracks")
		return f.fallback()
	}

	tracks := NormalizeAll(raws, f.curated, f.clock())
	logger.Debug().
		Int("tracks", len(tracks)).
		Dur("duration_ms", time.Since(start)).
		Msg("Fetched upstream tracks")

	return FetchResult{Source: SourceLive, Tracks: tracks}
}

func (f *Fetcher) fallback() FetchResult {
	return FetchResult{Source: SourceFallback, Tracks: f.curated.Tracks()}
}
