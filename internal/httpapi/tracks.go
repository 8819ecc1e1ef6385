package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"musicfun/internal/app/tracks"
	"musicfun/internal/catalog"
	"musicfun/internal/logging"
)

type listMeta struct {
	Total int `json:"total"`
}

type tracksResponse struct {
	Data []catalog.Track `json:"data"`
	Meta listMeta        `json:"meta"`
}

type trackResponse struct {
	Data catalog.TrackDetail `json:"data"`
}

// handleListTracks serves the full catalog. It always answers 200; upstream
// failures surface only through the source header.
func (s *Server) handleListTracks(w http.ResponseWriter, r *http.Request) {
	result, err := s.tracks.List(r.Context())
	if err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Msg("List tracks failed")
		writeError(w, http.StatusInternalServerError, "InternalError", "Internal server error", "The track catalog could not be loaded")
		return
	}

	w.Header().Set(CatalogSourceHeader, string(result.Source))
	writeJSON(w, http.StatusOK, tracksResponse{
		Data: result.Tracks,
		Meta: listMeta{Total: len(result.Tracks)},
	})
}

// handleGetTrack serves the detail projection of one track.
func (s *Server) handleGetTrack(w http.ResponseWriter, r *http.Request) {
	trackID := mux.Vars(r)["trackId"]
	if unescaped, err := url.PathUnescape(trackID); err == nil {
		trackID = unescaped
	}

	detail, err := s.tracks.Get(r.Context(), trackID)
	if detail.Source != "" {
		w.Header().Set(CatalogSourceHeader, string(detail.Source))
	}
	if err != nil {
		if errors.Is(err, tracks.ErrTrackNotFound) {
			writeError(w, http.StatusNotFound, "TrackNotFound", "Track not found", fmt.Sprintf("Track with id %s was not found", trackID))
			return
		}
		logging.WithContext(r.Context()).Error().Err(err).Str("track_id", trackID).Msg("Get track failed")
		writeError(w, http.StatusInternalServerError, "InternalError", "Internal server error", "The track could not be loaded")
		return
	}

	writeJSON(w, http.StatusOK, trackResponse{Data: detail.Track})
}
