package tracks

import (
	"context"
	"errors"

	"musicfun/internal/catalog"
)

// ErrTrackNotFound is returned when no fetched track has the requested id.
var ErrTrackNotFound = errors.New("track not found")

// Catalog is the source of fetched tracks.
type Catalog interface {
	Fetch(ctx context.Context) catalog.FetchResult
	Curated() *catalog.CuratedBase
}

// Detail is a single-track lookup together with where the catalog came from.
type Detail struct {
	Source catalog.Source
	Track  catalog.TrackDetail
}

// Service exposes the list and detail views of the track catalog.
type Service interface {
	List(ctx context.Context) (catalog.FetchResult, error)
	Get(ctx context.Context, id string) (Detail, error)
}

type service struct {
	catalog Catalog
}

// New constructs a track Service backed by the provided catalog.
func New(c Catalog) Service {
	return &service{catalog: c}
}

// List never fails for a cancelled context; the catalog falls back instead.
func (s *service) List(ctx context.Context) (catalog.FetchResult, error) {
	result := s.catalog.Fetch(ctx)
	if result.Tracks == nil {
		result.Tracks = []catalog.Track{}
	}
	return result, nil
}

func (s *service) Get(ctx context.Context, id string) (Detail, error) {
	result, err := s.List(ctx)
	if err != nil {
		return Detail{}, err
	}

	for _, track := range result.Tracks {
		if track.ID == id {
			return Detail{
				Source: result.Source,
				Track:  catalog.BuildDetail(id, track, s.catalog.Curated()),
			}, nil
		}
	}
	return Detail{Source: result.Source}, ErrTrackNotFound
}
