package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"musicfun/internal/app/tracks"
)

// CatalogSourceHeader reports whether a response was built from live upstream
// data or from the curated fallback.
const CatalogSourceHeader = "X-Catalog-Source"

// Server wires HTTP handlers to the underlying services.
type Server struct {
	tracks tracks.Service
}

// New configures a Server with the given track service.
func New(tracks tracks.Service) *Server {
	return &Server{tracks: tracks}
}

// Routes exposes the HTTP handlers for the track catalog.
func (s *Server) Routes() http.Handler {
	// Match on the escaped path so an encoded slash stays inside {trackId},
	// and answer unclean paths from the router instead of redirecting.
	router := mux.NewRouter().UseEncodedPath().SkipClean(true)
	router.NotFoundHandler = http.HandlerFunc(handleRouteNotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(handleMethodNotAllowed)

	get(router, "/health", handleHealth)

	get(router, "/catalog/tracks", s.handleListTracks)
	get(router, "/catalog/tracks/{trackId}", s.handleGetTrack)

	// Legacy paths kept for older frontends.
	get(router, "/api/playlists/tracks", s.handleListTracks)
	get(router, "/api/playlists/tracks/{trackId}", s.handleGetTrack)

	return router
}

// get registers a GET route that also answers with one trailing slash.
func get(router *mux.Router, path string, handler http.HandlerFunc) {
	router.HandleFunc(path, handler).Methods(http.MethodGet)
	router.HandleFunc(path+"/", handler).Methods(http.MethodGet)
}

type errorObject struct {
	Status int    `json:"status"`
	Code   string `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type errorResponse struct {
	Errors []errorObject `json:"errors"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{Status: "ok"})
}

func handleRouteNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "RouteNotFound", "Route not found", "No route matches "+r.Method+" "+r.URL.Path)
}

func handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, http.StatusMethodNotAllowed, "MethodNotAllowed", "Method not allowed", "Method "+r.Method+" is not allowed on "+r.URL.Path)
}

func writeError(w http.ResponseWriter, status int, code, title, detail string) {
	writeJSON(w, status, errorResponse{
		Errors: []errorObject{{
			Status: status,
			Code:   code,
			Title:  title,
			Detail: detail,
		}},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
