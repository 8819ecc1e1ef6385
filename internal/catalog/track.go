// Package catalog turns raw upstream track records into the catalog's own
// Track shape, merging them with a curated base table.
package catalog

import (
	"slices"
	"time"
)

// TimestampLayout renders timestamps as ISO-8601 with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Track is a canonical catalog entry as served by the list view.
type Track struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	DurationMs  int      `json:"durationMs"`
	AudioURL    string   `json:"audioUrl"`
	CoverURL    *string  `json:"coverUrl,omitempty"`
	Genre       *string  `json:"genre,omitempty"`
	Lyrics      *string  `json:"lyrics,omitempty"`
	ArtistIDs   []string `json:"artistIds"`
	TagIDs      []string `json:"tagIds"`
	PlaylistIDs []string `json:"playlistIds,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// TrackDetail is a Track without its playable-media locator.
type TrackDetail struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	DurationMs  int      `json:"durationMs"`
	CoverURL    *string  `json:"coverUrl,omitempty"`
	Genre       *string  `json:"genre,omitempty"`
	Lyrics      *string  `json:"lyrics,omitempty"`
	ArtistIDs   []string `json:"artistIds"`
	TagIDs      []string `json:"tagIds"`
	PlaylistIDs []string `json:"playlistIds,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// RawTrack is an upstream record. Nil fields were absent or null in the payload.
type RawTrack struct {
	ID    string
	Title *string
	URL   *string
}

// Clone returns a deep copy of t. ArtistIDs and TagIDs are never nil in the copy.
func (t Track) Clone() Track {
	t.CoverURL = cloneString(t.CoverURL)
	t.Genre = cloneString(t.Genre)
	t.Lyrics = cloneString(t.Lyrics)
	t.ArtistIDs = cloneIDs(t.ArtistIDs)
	t.TagIDs = cloneIDs(t.TagIDs)
	if t.PlaylistIDs != nil {
		t.PlaylistIDs = slices.Clone(t.PlaylistIDs)
	}
	return t
}

// Detail strips the audio locator from a copy of t.
func (t Track) Detail() TrackDetail {
	c := t.Clone()
	return TrackDetail{
		ID:          c.ID,
		Title:       c.Title,
		DurationMs:  c.DurationMs,
		CoverURL:    c.CoverURL,
		Genre:       c.Genre,
		Lyrics:      c.Lyrics,
		ArtistIDs:   c.ArtistIDs,
		TagIDs:      c.TagIDs,
		PlaylistIDs: c.PlaylistIDs,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return slices.Clone(ids)
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
