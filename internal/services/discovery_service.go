// Package services – DiscoveryService
//
// This file implements the DiscoveryService, the application-facing entry
// point for location and nearby-search requests. It normalizes and validates
// inputs, applies the default place type, and delegates the actual cache,
// gate, and upstream work to the cache controller. Each upstream-facing call
// runs under a trace span so cache behavior is visible per request.
package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/shambhvi2006/cafe-curator/internal/domain"
	"github.com/shambhvi2006/cafe-curator/internal/places"
)

// DefaultPlaceType is used when a request does not specify a category.
const DefaultPlaceType = "cafe"

// Resolver is the controller contract required by DiscoveryService.
type Resolver interface {
	// ResolveLocation returns usable coordinates, from cache or the provider.
	ResolveLocation(ctx context.Context) (domain.Coordinates, error)
	// ResolveResults returns places for a coordinate bucket and type, from
	// cache or the upstream search. A non-positive radius means "use the
	// configured default".
	ResolveResults(ctx context.Context, lat, lng float64, placeType string, radius int) ([]domain.Place, error)
}

// DiscoveryService validates discovery requests and hands them to the
// controller. It holds no state beyond its collaborators and is safe for
// concurrent use.
type DiscoveryService struct {
	// Resolver is the cache & gate controller.
	Resolver Resolver
	// DefaultType overrides DefaultPlaceType when non-empty.
	DefaultType string
}

// NewDiscoveryService constructs a DiscoveryService around a resolver.
func NewDiscoveryService(r Resolver) *DiscoveryService {
	return &DiscoveryService{Resolver: r, DefaultType: DefaultPlaceType}
}

// Nearby returns places around (lat, lng) for the given category.
// The category is normalized (aliases, casing) and defaulted; coordinates
// outside the WGS84 ranges are rejected before anything is looked up. radius
// is in meters and passed through as-is; callers default and clamp it.
func (s *DiscoveryService) Nearby(ctx context.Context, lat, lng float64, placeType string, radius int) ([]domain.Place, error) {
	if !validCoordinates(lat, lng) {
		return nil, ErrInvalidCoordinates
	}

	typ := places.NormalizeType(placeType)
	if typ == "" {
		typ = s.defaultType()
	}

	tracer := otel.Tracer("cafe-curator/discovery")
	ctx, span := tracer.Start(ctx, "discovery.Nearby",
		trace.WithAttributes(
			attribute.String("place.type", typ),
			attribute.Float64("place.lat", lat),
			attribute.Float64("place.lng", lng),
			attribute.Int("place.radius", radius),
		))
	defer span.End()

	return s.Resolver.ResolveResults(ctx, lat, lng, typ, radius)
}

// Locate resolves the caller's coordinates through the controller (cached
// reading or a fresh one from the geolocation provider).
func (s *DiscoveryService) Locate(ctx context.Context) (domain.Coordinates, error) {
	tracer := otel.Tracer("cafe-curator/discovery")
	ctx, span := tracer.Start(ctx, "discovery.Locate")
	defer span.End()

	return s.Resolver.ResolveLocation(ctx)
}

func (s *DiscoveryService) defaultType() string {
	if s.DefaultType != "" {
		return s.DefaultType
	}
	return DefaultPlaceType
}

// validCoordinates checks the WGS84 ranges. The zero pair is rejected as
// well: it is overwhelmingly a "missing parameter" artifact rather than a
// genuine request for the Gulf of Guinea.
func validCoordinates(lat, lng float64) bool {
	if lat == 0 && lng == 0 {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
