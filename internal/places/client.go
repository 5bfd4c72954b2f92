package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shambhvi2006/cafe-curator/internal/domain"
)

// DefaultBaseURL is the upstream Places API root.
const DefaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// maxErrorBodyBytes caps how much of an upstream error body is read back
// into an error message.
const maxErrorBodyBytes = 4 << 10

// ErrNoCredential is returned when no upstream API key is configured. The
// server keeps running without one; every search and photo request fails
// with a configuration error instead.
var ErrNoCredential = errors.New("places api key is not configured")

// UpstreamError is a non-OK answer from the Places provider. Status and
// Message are passed through to the caller so the user sees what the
// provider said (e.g. "REQUEST_DENIED: The provided API key is invalid").
type UpstreamError struct {
	Status  string
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return "upstream places error: " + e.Status
	}
	return "upstream places error: " + e.Status + ": " + e.Message
}

// Client talks to the upstream Places provider. The zero value is not usable;
// construct with NewClient. Client is safe for concurrent use.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	key            string
	photoProxyPath string
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests, custom
// transports).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL points the client at a different API root (tests, proxies).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// WithPhotoProxyPath sets the local route photo references are rewritten to,
// so clients never see (or need) the upstream photo URL.
func WithPhotoProxyPath(p string) ClientOption {
	return func(c *Client) { c.photoProxyPath = p }
}

// NewClient builds a Client with the given credential. An empty key is
// permitted; requests will then fail with ErrNoCredential.
func NewClient(key string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient:     &http.Client{Timeout: 10 * time.Second},
		baseURL:        DefaultBaseURL,
		key:            key,
		photoProxyPath: "/api/photo",
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Nearby runs an upstream nearby search and maps the results to domain
// places. An upstream ZERO_RESULTS answer is an empty slice, not an error.
func (c *Client) Nearby(ctx context.Context, lat, lng float64, placeType string, radius int) ([]domain.Place, error) {
	if c.key == "" {
		return nil, ErrNoCredential
	}

	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("radius", strconv.Itoa(radius))
	q.Set("type", placeType)
	q.Set("key", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/nearbysearch/json?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("places: build nearby request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places: nearby request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.Status}
	}

	var body nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("places: decode nearby response: %w", err)
	}

	switch body.Status {
	case statusOK:
		return c.mapResults(body.Results), nil
	case statusZeroResults:
		return []domain.Place{}, nil
	default:
		return nil, &UpstreamError{Status: body.Status, Message: body.ErrorMessage}
	}
}

// Photo streams a place photo. The caller owns the returned body and must
// close it. contentType is the upstream Content-Type header.
func (c *Client) Photo(ctx context.Context, ref string, maxWidth int) (body io.ReadCloser, contentType string, err error) {
	if c.key == "" {
		return nil, "", ErrNoCredential
	}

	q := url.Values{}
	q.Set("photo_reference", ref)
	q.Set("maxwidth", strconv.Itoa(maxWidth))
	q.Set("key", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/photo?"+q.Encode(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("places: build photo request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("places: photo request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		resp.Body.Close()
		return nil, "", &UpstreamError{Status: resp.Status, Message: string(msg)}
	}

	return resp.Body, resp.Header.Get("Content-Type"), nil
}

// mapResults converts upstream records to domain places. Photo references are
// rewritten to the local photo proxy route so the credential stays
// server-side.
func (c *Client) mapResults(results []placeResult) []domain.Place {
	out := make([]domain.Place, 0, len(results))
	for _, r := range results {
		p := domain.Place{
			ID:      r.PlaceID,
			Name:    r.Name,
			Rating:  r.Rating,
			Address: r.Vicinity,
		}
		if len(r.Photos) > 0 && r.Photos[0].PhotoReference != "" {
			p.PhotoURL = c.photoProxyPath + "?ref=" + url.QueryEscape(r.Photos[0].PhotoReference) + "&max=400"
		}
		out = append(out, p)
	}
	return out
}
