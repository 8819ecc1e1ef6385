package tracks

import (
	"context"
	"errors"
	"testing"

	"musicfun/internal/catalog"
)

type stubCatalog struct {
	result  catalog.FetchResult
	curated *catalog.CuratedBase
	fetches int
}

func (s *stubCatalog) Fetch(context.Context) catalog.FetchResult {
	s.fetches++
	return s.result
}

func (s *stubCatalog) Curated() *catalog.CuratedBase {
	return s.curated
}

func TestListReturnsNonNilTracks(t *testing.T) {
	svc := New(&stubCatalog{result: catalog.FetchResult{Source: catalog.SourceLive}})

	result, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Tracks == nil || len(result.Tracks) != 0 {
		t.Fatalf("expected empty non-nil tracks, got %#v", result.Tracks)
	}
}

func TestListFallsBackForCancelledContext(t *testing.T) {
	stub := &stubCatalog{
		curated: catalog.DefaultCuratedBase(),
		result:  catalog.FetchResult{Source: catalog.SourceFallback, Tracks: catalog.DefaultCuratedBase().Tracks()},
	}
	svc := New(stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if stub.fetches != 1 {
		t.Fatalf("expected one fetch, got %d", stub.fetches)
	}
	if result.Source != catalog.SourceFallback || len(result.Tracks) != 2 {
		t.Fatalf("expected curated fallback, got %q with %d tracks", result.Source, len(result.Tracks))
	}

	if _, err := svc.Get(ctx, "2"); err != nil {
		t.Fatalf("Get: %v", err)
	}
}

func TestGetBuildsDetail(t *testing.T) {
	curated := catalog.DefaultCuratedBase()
	stub := &stubCatalog{
		curated: curated,
		result: catalog.FetchResult{
			Source: catalog.SourceLive,
			Tracks: []catalog.Track{
				{ID: "1", Title: "Upstream title", AudioURL: "https://cdn/1.mp3", Genre: catalog.StringPtr("Polka"), ArtistIDs: []string{}, TagIDs: []string{}},
				{ID: "8", Title: "Eight", AudioURL: "https://cdn/8.mp3", ArtistIDs: []string{}, TagIDs: []string{}},
			},
		},
	}
	svc := New(stub)

	detail, err := svc.Get(context.Background(), "1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.Source != catalog.SourceLive {
		t.Fatalf("expected live source, got %q", detail.Source)
	}
	if detail.Track.Genre == nil || *detail.Track.Genre != "Future Garage" {
		t.Fatalf("expected curated genre, got %v", detail.Track.Genre)
	}
	if detail.Track.Title != "Musicfun soundtrack" {
		t.Fatalf("expected curated title, got %q", detail.Track.Title)
	}

	detail, err = svc.Get(context.Background(), "8")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.Track.Title != "Eight" {
		t.Fatalf("expected upstream title, got %q", detail.Track.Title)
	}
}

func TestGetNotFound(t *testing.T) {
	stub := &stubCatalog{
		curated: catalog.DefaultCuratedBase(),
		result:  catalog.FetchResult{Source: catalog.SourceFallback, Tracks: catalog.DefaultCuratedBase().Tracks()},
	}
	svc := New(stub)

	detail, err := svc.Get(context.Background(), "unknown-id")
	if !errors.Is(err, ErrTrackNotFound) {
		t.Fatalf("expected ErrTrackNotFound, got %v", err)
	}
	if detail.Source != catalog.SourceFallback {
		t.Fatalf("expected fallback source on miss, got %q", detail.Source)
	}
}
