// Discovery HTTP handlers.
//
// This file exposes REST endpoints for place discovery:
//   - GET /nearby     (cached nearby search, gated against upstream abuse)
//   - GET /location   (cached position of the server's vantage point)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. The cache controller behind the
// discovery service decides whether a request hits the upstream Places API.
package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shambhvi2006/cafe-curator/internal/cache"
	"github.com/shambhvi2006/cafe-curator/internal/domain"
	"github.com/shambhvi2006/cafe-curator/internal/geo"
	"github.com/shambhvi2006/cafe-curator/internal/places"
	"github.com/shambhvi2006/cafe-curator/internal/services"
	"github.com/shambhvi2006/cafe-curator/internal/utils"
)

// maxSearchRadius caps the per-request radius at the upstream API's limit.
const maxSearchRadius = 50000

//
// Service contracts (context-aware)
//

// DiscoveryService defines the discovery operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type DiscoveryService interface {
	// Nearby returns rating-sorted places of a type around a coordinate,
	// searching within radius meters (non-positive means the server default).
	Nearby(ctx context.Context, lat, lng float64, placeType string, radius int) ([]domain.Place, error)
	// Locate returns the current position, cached or freshly resolved.
	Locate(ctx context.Context) (domain.Coordinates, error)
}

// SavedService defines the saved-place registry operations.
type SavedService interface {
	// Save appends a place to a category unless already present.
	Save(ctx context.Context, category string, in services.SaveInput) (bool, error)
	// Remove deletes a place from a category; absent ids are a no-op.
	Remove(ctx context.Context, category, placeID string) error
	// List returns a category's saved places in insertion order.
	List(ctx context.Context, category string) ([]domain.SavedPlace, error)
}

// PreferenceService defines persisted UI preference operations.
type PreferenceService interface {
	Get(ctx context.Context) (services.Preferences, error)
	Update(ctx context.Context, in services.Preferences) (services.Preferences, error)
}

// PhotoService streams a place photo through the server-side credential.
type PhotoService interface {
	Photo(ctx context.Context, ref string, maxWidth int) (io.ReadCloser, string, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for discovery, photos, saved places, and
// preferences. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	discoverySvc DiscoveryService
	photoSvc     PhotoService
	savedSvc     SavedService
	prefSvc      PreferenceService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(discoverySvc DiscoveryService, photoSvc PhotoService, savedSvc SavedService, prefSvc PreferenceService) *Handlers {
	return &Handlers{
		discoverySvc: discoverySvc,
		photoSvc:     photoSvc,
		savedSvc:     savedSvc,
		prefSvc:      prefSvc,
	}
}

//
// DTOs
//

// NearbyResponse wraps a rating-sorted page of places.
type NearbyResponse struct {
	Results []domain.Place `json:"results"`
	Count   int            `json:"count"`
}

// LocationResponse reports the resolved coordinates.
type LocationResponse struct {
	Lat float64 `json:"lat" example:"52.3676"`
	Lng float64 `json:"lng" example:"4.9041"`
}

//
// Handlers
//

// Nearby godoc
// @ID          nearbySearch
// @Summary     Search nearby places
// @Description Returns places of a type around a coordinate, sorted by rating descending. Results are cached server-side; a search already in flight or issued too soon after the previous one is refused with 429.
// @Tags        Discovery
// @Produce     json
//
// @Param       lat     query  number   true   "Latitude"   example(52.3676)
// @Param       lng     query  number   true   "Longitude"  example(4.9041)
// @Param       type    query  string   false  "Place type (e.g. cafe, restaurant, bar)" default(cafe)
// @Param       radius  query  integer  false  "Search radius in meters" default(1500)
//
// @Success     200  {object}  handlers.NearbyResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid coordinates or type"
// @Failure     429  {object}  handlers.ErrorResponse  "Search gate refused the request"
// @Failure     500  {object}  handlers.ErrorResponse  "Missing credential or internal error"
// @Failure     502  {object}  handlers.ErrorResponse  "Places API failure"
// @Router      /nearby [get]
func (h *Handlers) Nearby(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "lat and lng must be decimal numbers")
		return
	}

	// Zero means "use the configured default radius".
	radius := utils.AtoiDefault(c.Query("radius"), 0)
	if radius < 0 {
		radius = 0
	}
	if radius > maxSearchRadius {
		radius = maxSearchRadius
	}

	items, err := h.discoverySvc.Nearby(c.Request.Context(), lat, lng, c.Query("type"), radius)
	if err != nil {
		h.failNearby(c, err)
		return
	}
	ok(c, http.StatusOK, NearbyResponse{Results: items, Count: len(items)})
}

// failNearby maps discovery errors onto the HTTP error taxonomy.
func (h *Handlers) failNearby(c *gin.Context, err error) {
	var upstream *places.UpstreamError
	switch {
	case errors.Is(err, services.ErrInvalidCoordinates):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "coordinates out of range")
	case errors.Is(err, cache.ErrRequestDropped):
		c.Header("Retry-After", "3")
		fail(c, http.StatusTooManyRequests, ErrCodeRequestDropped,
			"search already in progress or too soon after the last one")
	case errors.Is(err, places.ErrNoCredential):
		fail(c, http.StatusInternalServerError, ErrCodeConfig, "Places API key not configured")
	case errors.As(err, &upstream):
		fail(c, http.StatusBadGateway, ErrCodeUpstream, upstream.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "nearby search failed")
	}
}

// Location godoc
// @ID          resolveLocation
// @Summary     Resolve the current location
// @Description Returns the position used for searches, served from cache when fresh.
// @Tags        Discovery
// @Produce     json
//
// @Success     200  {object}  handlers.LocationResponse
// @Failure     503  {object}  handlers.ErrorResponse  "No position could be determined"
// @Router      /location [get]
func (h *Handlers) Location(c *gin.Context) {
	coords, err := h.discoverySvc.Locate(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, cache.ErrRequestDropped):
			c.Header("Retry-After", "3")
			fail(c, http.StatusTooManyRequests, ErrCodeRequestDropped, "location lookup already in progress")
		case errors.Is(err, cache.ErrLocationUnavailable), errors.Is(err, geo.ErrUnavailable):
			fail(c, http.StatusServiceUnavailable, ErrCodeLocationUnavailable, "location unavailable")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "location lookup failed")
		}
		return
	}
	ok(c, http.StatusOK, LocationResponse{Lat: coords.Lat, Lng: coords.Lng})
}
