package catalog

// CuratedBase is a fixed set of fully populated tracks used for per-field
// defaults and as the fallback catalog. It is immutable after construction;
// every accessor hands out copies.
type CuratedBase struct {
	order  []string
	tracks map[string]Track
}

// NewCuratedBase builds a curated base whose canonical ordering is the order
// of tracks. A later track with a duplicate ID replaces the earlier one in place.
func NewCuratedBase(tracks ...Track) *CuratedBase {
	b := &CuratedBase{tracks: make(map[string]Track, len(tracks))}
	for _, t := range tracks {
		if _, ok := b.tracks[t.ID]; !ok {
			b.order = append(b.order, t.ID)
		}
		b.tracks[t.ID] = t.Clone()
	}
	return b
}

// Lookup returns a copy of the curated track for id.
func (b *CuratedBase) Lookup(id string) (Track, bool) {
	if b == nil {
		return Track{}, false
	}
	t, ok := b.tracks[id]
	if !ok {
		return Track{}, false
	}
	return t.Clone(), true
}

// LookupDetail returns the curated detail projection for id.
func (b *CuratedBase) LookupDetail(id string) (TrackDetail, bool) {
	t, ok := b.Lookup(id)
	if !ok {
		return TrackDetail{}, false
	}
	return t.Detail(), true
}

// Tracks returns copies of every curated track in canonical order.
func (b *CuratedBase) Tracks() []Track {
	if b == nil {
		return []Track{}
	}
	out := make([]Track, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.tracks[id].Clone())
	}
	return out
}

// Len reports the number of curated tracks.
func (b *CuratedBase) Len() int {
	if b == nil {
		return 0
	}
	return len(b.order)
}

const curatedTimestamp = "2024-01-01T00:00:00.000Z"

// DefaultCuratedBase returns the hand-authored musicfun soundtrack entries.
func DefaultCuratedBase() *CuratedBase {
	return NewCuratedBase(
		Track{
			ID:         "1",
			Title:      "Musicfun soundtrack",
			DurationMs: 49_000,
			AudioURL:   "https://musicfun.it-incubator.app/api/samurai-way-soundtrack.mp3",
			CoverURL:   StringPtr("https://images.unsplash.com/photo-1485579149621-3123dd979885?w=400"),
			Genre:      StringPtr("Future Garage"),
			Lyrics: StringPtr("Into the neon night we ride,\n" +
				"Blades of light at either side,\n" +
				"Through the static, hearts collide,\n" +
				"Samurai way, our city guide."),
			ArtistIDs:   []string{"artist-neo-samurai"},
			TagIDs:      []string{"tag-focus", "tag-instrumental"},
			PlaylistIDs: []string{"playlist-focus-mode"},
			CreatedAt:   curatedTimestamp,
			UpdatedAt:   curatedTimestamp,
		},
		Track{
			ID:          "2",
			Title:       "Musicfun soundtrack instrumental",
			DurationMs:  49_000,
			AudioURL:    "https://musicfun.it-incubator.app/api/samurai-way-soundtrack-instrumental.mp3",
			CoverURL:    StringPtr("https://images.unsplash.com/photo-1470229538611-16ba8c7ffbd7?w=400"),
			Genre:       StringPtr("Ambient"),
			ArtistIDs:   []string{"artist-neo-samurai"},
			TagIDs:      []string{"tag-chill", "tag-lofi"},
			PlaylistIDs: []string{"playlist-samurai-way", "playlist-night-drive"},
			CreatedAt:   curatedTimestamp,
			UpdatedAt:   curatedTimestamp,
		},
	)
}
