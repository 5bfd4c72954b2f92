package cache

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shambhvi2006/cafe-curator/internal/domain"
	"github.com/shambhvi2006/cafe-curator/internal/repo"
)

// Defaults for the gate and cache windows. All are overridable via options.
const (
	// DefaultRequestGap is the minimum time between upstream searches.
	// Requests inside the gap are dropped, not queued.
	DefaultRequestGap = 2500 * time.Millisecond
	// DefaultWatchdogTimeout bounds how long the in-flight flag can stay set
	// when an upstream call hangs.
	DefaultWatchdogTimeout = 8 * time.Second
	// DefaultLocationTTL is how long a geolocation reading stays fresh.
	DefaultLocationTTL = 10 * time.Minute
	// DefaultResultTTL is how long a set of search results stays fresh.
	DefaultResultTTL = 5 * time.Minute
	// DefaultRadius is the nearby-search radius in meters.
	DefaultRadius = 1500
)

// Schema versions for the JSON shapes written to the key-value store.
// Bump when a stored shape changes; older rows are then treated as absent.
const (
	locationSchemaVersion = 1
	resultSchemaVersion   = 1
)

const locationKey = "location"

// Sentinel errors returned by the controller.
var (
	// ErrRequestDropped signals that the gate refused the request: either a
	// search is already in flight or the minimum gap has not elapsed. The
	// request is deliberately dropped, never queued.
	ErrRequestDropped = errors.New("request dropped by rate gate")

	// ErrLocationUnavailable signals that no cached location exists and the
	// geolocation provider failed or is not configured.
	ErrLocationUnavailable = errors.New("location unavailable")
)

// Searcher is the upstream nearby-search collaborator.
type Searcher interface {
	Nearby(ctx context.Context, lat, lng float64, placeType string, radius int) ([]domain.Place, error)
}

// Locator supplies a one-shot device/host location reading.
type Locator interface {
	Locate(ctx context.Context) (domain.Coordinates, error)
}

// locationEntry is the persisted shape of the last geolocation reading.
// Timestamp reflects read time, not request time.
type locationEntry struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp int64   `json:"timestamp"` // epoch millis
}

// resultEntry is the persisted shape of one bucket of search results,
// always sorted descending by rating before storage.
type resultEntry struct {
	Timestamp int64          `json:"timestamp"` // epoch millis
	Data      []domain.Place `json:"data"`
}

// Controller mediates every location and search request through cache lookups
// and the request gate before anything touches the network.
//
// The gate state (inFlight, lastRequestAt) is process-local and advisory; it
// is not a cross-replica lock. Two processes sharing the same store can
// interleave writes, which is an accepted limitation (last write wins, no
// version checks on cache rows).
//
// Controller is safe for concurrent use.
type Controller struct {
	store   repo.Store
	search  Searcher
	locator Locator

	clock      Clock
	startTimer TimerFunc

	gap         time.Duration
	watchdogTTL time.Duration
	locationTTL time.Duration
	resultTTL   time.Duration
	radius      int

	mu            sync.Mutex
	inFlight      bool
	lastRequestAt time.Time
	watchdog      Timer
}

// Option customizes a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock (tests).
func WithClock(c Clock) Option { return func(ctl *Controller) { ctl.clock = c } }

// WithTimerFunc replaces the watchdog timer factory (tests).
func WithTimerFunc(f TimerFunc) Option { return func(ctl *Controller) { ctl.startTimer = f } }

// WithRequestGap overrides the minimum gap between upstream searches.
func WithRequestGap(d time.Duration) Option { return func(ctl *Controller) { ctl.gap = d } }

// WithWatchdogTimeout overrides the in-flight safety timeout.
func WithWatchdogTimeout(d time.Duration) Option {
	return func(ctl *Controller) { ctl.watchdogTTL = d }
}

// WithLocationTTL overrides the location cache freshness window.
func WithLocationTTL(d time.Duration) Option { return func(ctl *Controller) { ctl.locationTTL = d } }

// WithResultTTL overrides the result cache freshness window.
func WithResultTTL(d time.Duration) Option { return func(ctl *Controller) { ctl.resultTTL = d } }

// WithRadius overrides the nearby-search radius in meters.
func WithRadius(r int) Option {
	return func(ctl *Controller) {
		if r > 0 {
			ctl.radius = r
		}
	}
}

// NewController builds a Controller over the given store and collaborators,
// applying defaults for the gate and TTL windows.
func NewController(store repo.Store, search Searcher, locator Locator, opts ...Option) *Controller {
	c := &Controller{
		store:       store,
		search:      search,
		locator:     locator,
		clock:       SystemClock{},
		startTimer:  StartTimer,
		gap:         DefaultRequestGap,
		watchdogTTL: DefaultWatchdogTimeout,
		locationTTL: DefaultLocationTTL,
		resultTTL:   DefaultResultTTL,
		radius:      DefaultRadius,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ResolveLocation returns usable coordinates for the caller.
//
// Order of checks:
//  1. Gate: if a search is in flight or the minimum gap has not elapsed,
//     the request is dropped (ErrRequestDropped).
//  2. Location cache: a reading younger than the location TTL is returned
//     without touching the provider.
//  3. Provider: a fresh reading is taken, cached with a read-time stamp,
//     and returned. Provider failure maps to ErrLocationUnavailable.
func (c *Controller) ResolveLocation(ctx context.Context) (domain.Coordinates, error) {
	if reason, open := c.gateOpen(); !open {
		gateDrops.WithLabelValues(reason).Inc()
		return domain.Coordinates{}, ErrRequestDropped
	}

	now := c.clock.Now()
	ent, ok, err := repo.GetJSON[locationEntry](ctx, c.store, locationKey, locationSchemaVersion)
	if err != nil {
		log.Warn().Err(err).Msg("location cache read failed")
	}
	if ok {
		if age := now.Sub(time.UnixMilli(ent.Timestamp)); age < c.locationTTL {
			cacheLookups.WithLabelValues("location", "hit").Inc()
			return domain.Coordinates{Lat: ent.Lat, Lng: ent.Lng}, nil
		}
		cacheLookups.WithLabelValues("location", "stale").Inc()
	} else {
		cacheLookups.WithLabelValues("location", "miss").Inc()
	}

	if c.locator == nil {
		return domain.Coordinates{}, ErrLocationUnavailable
	}
	coords, err := c.locator.Locate(ctx)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
	}

	// Stamp with read time, not request time.
	fresh := locationEntry{Lat: coords.Lat, Lng: coords.Lng, Timestamp: c.clock.Now().UnixMilli()}
	if err := repo.SetJSON(ctx, c.store, locationKey, locationSchemaVersion, fresh); err != nil {
		log.Warn().Err(err).Msg("location cache write failed")
	}
	return coords, nil
}

// ResolveResults returns the places for a (type, coordinate bucket) request.
//
// A fresh cache entry is returned immediately and bypasses the gate entirely:
// a cache hit never counts as a request. On a miss the gate is consulted; if
// it permits, the upstream search runs under the watchdog, results are sorted
// descending by rating (missing rating reads as 0), cached, and returned.
//
// radius is in meters; zero or negative falls back to the configured default.
// The radius does not participate in the cache key, so a fresh entry is
// served regardless of the radius it was fetched with.
//
// All failures are terminal for the request; nothing is retried.
func (c *Controller) ResolveResults(ctx context.Context, lat, lng float64, placeType string, radius int) ([]domain.Place, error) {
	key := Key(placeType, lat, lng)
	if radius <= 0 {
		radius = c.radius
	}

	now := c.clock.Now()
	ent, ok, err := repo.GetJSON[resultEntry](ctx, c.store, key, resultSchemaVersion)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("result cache read failed")
	}
	if ok {
		if age := now.Sub(time.UnixMilli(ent.Timestamp)); age < c.resultTTL {
			cacheLookups.WithLabelValues("results", "hit").Inc()
			return ent.Data, nil
		}
		cacheLookups.WithLabelValues("results", "stale").Inc()
	} else {
		cacheLookups.WithLabelValues("results", "miss").Inc()
	}

	if !c.acquireGate() {
		return nil, ErrRequestDropped
	}

	places, err := c.search.Nearby(ctx, lat, lng, placeType, radius)
	c.releaseGate()
	if err != nil {
		upstreamSearches.WithLabelValues("error").Inc()
		return nil, err
	}
	upstreamSearches.WithLabelValues("ok").Inc()

	sortByRating(places)

	// A late completion after the watchdog fired still lands here; the write
	// is last-write-wins by design of the store.
	fresh := resultEntry{Timestamp: c.clock.Now().UnixMilli(), Data: places}
	if err := repo.SetJSON(ctx, c.store, key, resultSchemaVersion, fresh); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("result cache write failed")
	}
	return places, nil
}

// gateOpen reports whether the gate currently permits a request, without
// acquiring it. reason is "in_flight" or "gap" when closed.
func (c *Controller) gateOpen() (reason string, open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight {
		return "in_flight", false
	}
	if !c.lastRequestAt.IsZero() && c.clock.Now().Sub(c.lastRequestAt) < c.gap {
		return "gap", false
	}
	return "", true
}

// acquireGate atomically checks the gate and, if open, marks a request in
// flight, stamps lastRequestAt, and arms the watchdog.
func (c *Controller) acquireGate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if c.inFlight {
		gateDrops.WithLabelValues("in_flight").Inc()
		return false
	}
	if !c.lastRequestAt.IsZero() && now.Sub(c.lastRequestAt) < c.gap {
		gateDrops.WithLabelValues("gap").Inc()
		return false
	}

	c.inFlight = true
	c.lastRequestAt = now
	c.watchdog = c.startTimer(c.watchdogTTL, c.forceRelease)
	return true
}

// releaseGate clears the in-flight flag on normal completion or error and
// disposes the watchdog handle.
func (c *Controller) releaseGate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watchdog != nil {
		c.watchdog.Stop()
		c.watchdog = nil
	}
	c.inFlight = false
}

// forceRelease is the watchdog callback: a hung upstream call must never
// leave the system permanently gated. The network call itself is not aborted;
// only the gating effect is unwound.
func (c *Controller) forceRelease() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.inFlight {
		return
	}
	c.inFlight = false
	c.watchdog = nil
	watchdogFires.Inc()
	log.Warn().Dur("timeout", c.watchdogTTL).Msg("watchdog cleared stuck in-flight request")
}

// sortByRating orders places descending by rating, missing ratings last.
// The sort is stable so equally rated places keep their upstream order.
func sortByRating(places []domain.Place) {
	sort.SliceStable(places, func(i, j int) bool {
		return places[i].RatingValue() > places[j].RatingValue()
	})
}
