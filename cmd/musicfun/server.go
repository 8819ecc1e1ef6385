package main

import (
	"net/http"

	"musicfun/internal/app/tracks"
	"musicfun/internal/catalog"
	"musicfun/internal/config"
	"musicfun/internal/http/middleware"
	"musicfun/internal/httpapi"
	"musicfun/internal/musicfun"
)

func newHTTPHandler(cfg *config.Config, curated *catalog.CuratedBase) http.Handler {
	upstream := musicfun.NewClient(cfg.Upstream.TracksURL, cfg.Upstream.Timeout)
	fetcher := catalog.NewFetcher(upstream, curated)
	trackSvc := tracks.New(fetcher)

	return chain(
		httpapi.New(trackSvc).Routes(),
		middleware.RequestLogging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)
}

// chain applies middlewares so that the first one listed runs first.
func chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
