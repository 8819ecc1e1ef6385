package catalog

import (
	"strings"
	"time"
)

// UnknownTitle is used when neither upstream nor the curated base has a title.
const UnknownTitle = "Unknown track"

// Normalize maps a raw upstream record onto Track. Each field is resolved on
// its own: upstream value first where upstream carries one, then the curated
// entry for the same id, then a fixed default. Duration and all descriptive
// metadata come only from the curated base.
func Normalize(raw RawTrack, curated *CuratedBase, now time.Time) Track {
	nowISO := FormatTimestamp(now)
	base, hasBase := curated.Lookup(raw.ID)

	track := Track{
		ID:        raw.ID,
		Title:     UnknownTitle,
		ArtistIDs: []string{},
		TagIDs:    []string{},
		CreatedAt: nowISO,
		UpdatedAt: nowISO,
	}

	switch {
	case raw.Title != nil:
		track.Title = *raw.Title
	case hasBase:
		track.Title = base.Title
	}

	audioURL := ""
	switch {
	case raw.URL != nil:
		audioURL = *raw.URL
	case hasBase:
		audioURL = base.AudioURL
	}
	track.AudioURL = strings.TrimSpace(audioURL)

	if !hasBase {
		return track
	}

	track.DurationMs = base.DurationMs
	track.CoverURL = base.CoverURL
	track.Genre = base.Genre
	track.Lyrics = base.Lyrics
	track.ArtistIDs = base.ArtistIDs
	track.TagIDs = base.TagIDs
	track.PlaylistIDs = base.PlaylistIDs
	if base.CreatedAt != "" {
		track.CreatedAt = base.CreatedAt
	}
	return track
}

// NormalizeAll maps every raw record with a single timestamp reading.
func NormalizeAll(raws []RawTrack, curated *CuratedBase, now time.Time) []Track {
	tracks := make([]Track, 0, len(raws))
	for _, raw := range raws {
		tracks = append(tracks, Normalize(raw, curated, now))
	}
	return tracks
}

// BuildDetail derives the detail view for id. A curated entry always wins:
// its metadata is returned verbatim and only lyrics may come from track when
// the curated entry has none. Without a curated entry the detail is track
// minus its audio locator.
func BuildDetail(id string, track Track, curated *CuratedBase) TrackDetail {
	fallbackLyrics := track.Lyrics
	if base, ok := curated.Lookup(id); ok && base.Lyrics != nil {
		fallbackLyrics = base.Lyrics
	}

	detail, ok := curated.LookupDetail(id)
	if !ok {
		detail = track.Detail()
	}
	if detail.Lyrics == nil {
		detail.Lyrics = cloneString(fallbackLyrics)
	}
	return detail
}
