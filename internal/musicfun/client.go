// Package musicfun is a client for the musicfun playlist tracks API.
package musicfun

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/imroc/req/v3"

	"musicfun/internal/catalog"
)

// ErrUnexpectedStatus is returned when upstream answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected upstream status")

// DefaultTimeout bounds one upstream call when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// Client fetches raw tracks from the musicfun API. It performs exactly one
// request per call and never retries.
type Client struct {
	tracksURL  string
	httpClient *req.Client
}

// NewClient creates a client for the given tracks endpoint.
func NewClient(tracksURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		tracksURL: tracksURL,
		httpClient: req.C().
			SetTimeout(timeout).
			SetUserAgent("musicfun-catalog/1.0").
			SetCommonHeader("Accept", "application/json"),
	}
}

// FetchTracks requests the tracks list and decodes it.
func (c *Client) FetchTracks(ctx context.Context) ([]catalog.RawTrack, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(c.tracksURL)
	if err != nil {
		return nil, fmt.Errorf("send tracks request: %w", err)
	}

	if !resp.IsSuccessState() {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := resp.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("read tracks response: %w", err)
	}

	raws, err := DecodeTracks(body)
	if err != nil {
		return nil, fmt.Errorf("decode tracks response: %w", err)
	}

	return raws, nil
}
