// Package geo abstracts the one-shot geolocation reading the controller
// falls back to when no fresh cached location exists. The production
// implementation asks an IP-geolocation HTTP endpoint; tests inject fakes.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shambhvi2006/cafe-curator/internal/domain"
)

// ErrUnavailable signals that no location reading could be obtained. Callers
// treat this as a terminal condition for the request; nothing is retried.
var ErrUnavailable = errors.New("geolocation unavailable")

// Provider supplies a single latitude/longitude reading. Implementations
// must honor ctx for cancellation and deadlines.
type Provider interface {
	Locate(ctx context.Context) (domain.Coordinates, error)
}

// DefaultEndpoint is the default IP-geolocation service.
const DefaultEndpoint = "http://ip-api.com/json"

// ipAPIResponse matches the ip-api.com JSON shape. Status is "success" or
// "fail"; lat/lon are zero on failure.
type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// HTTPProvider resolves the host's approximate location from an
// IP-geolocation endpoint. Safe for concurrent use.
type HTTPProvider struct {
	client   *http.Client
	endpoint string
}

// ProviderOption customizes an HTTPProvider.
type ProviderOption func(*HTTPProvider)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ProviderOption {
	return func(p *HTTPProvider) { p.client = hc }
}

// NewHTTPProvider builds a provider against the given endpoint; an empty
// endpoint falls back to DefaultEndpoint.
func NewHTTPProvider(endpoint string, opts ...ProviderOption) *HTTPProvider {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	p := &HTTPProvider{
		client:   &http.Client{Timeout: 5 * time.Second},
		endpoint: endpoint,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Locate performs one reading. Any failure (transport, non-2xx, provider
// "fail" status) maps to ErrUnavailable with the cause attached.
func (p *HTTPProvider) Locate(ctx context.Context) (domain.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Coordinates{}, fmt.Errorf("%w: endpoint returned %s", ErrUnavailable, resp.Status)
	}

	var body ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if body.Status != "" && body.Status != "success" {
		if body.Message != "" {
			return domain.Coordinates{}, fmt.Errorf("%w: %s", ErrUnavailable, body.Message)
		}
		return domain.Coordinates{}, ErrUnavailable
	}

	return domain.Coordinates{Lat: body.Lat, Lng: body.Lon}, nil
}

// StaticProvider always returns a fixed coordinate pair. Used when an
// operator pins the deployment to a known location instead of relying on
// IP geolocation.
type StaticProvider struct {
	Coords domain.Coordinates
}

// Locate returns the configured coordinates.
func (p StaticProvider) Locate(context.Context) (domain.Coordinates, error) {
	return p.Coords, nil
}
