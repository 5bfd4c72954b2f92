package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shambhvi2006/cafe-curator/internal/domain"
)

// ----- Fake resolver -----

type fakeResolver struct {
	// capture args
	lat, lng  float64
	placeType string
	radius    int

	places    []domain.Place
	placesErr error

	coords    domain.Coordinates
	coordsErr error

	locateCalls int
}

func (r *fakeResolver) ResolveLocation(ctx context.Context) (domain.Coordinates, error) {
	r.locateCalls++
	return r.coords, r.coordsErr
}

func (r *fakeResolver) ResolveResults(ctx context.Context, lat, lng float64, placeType string, radius int) ([]domain.Place, error) {
	r.lat, r.lng, r.placeType, r.radius = lat, lng, placeType, radius
	return r.places, r.placesErr
}

// ----- Tests -----

func TestNearby_NormalizesAndDefaultsType(t *testing.T) {
	r := &fakeResolver{places: []domain.Place{{ID: "p1"}}}
	s := NewDiscoveryService(r)

	if _, err := s.Nearby(context.Background(), 40, -74, "  COFFEE ", 0); err != nil {
		t.Fatalf("Nearby: %v", err)
	}
	if r.placeType != "cafe" {
		t.Fatalf("resolver got type %q; want %q", r.placeType, "cafe")
	}

	if _, err := s.Nearby(context.Background(), 40, -74, "", 0); err != nil {
		t.Fatalf("Nearby: %v", err)
	}
	if r.placeType != "cafe" {
		t.Fatalf("empty type should default to %q, got %q", "cafe", r.placeType)
	}
}

func TestNearby_PassesRadiusThrough(t *testing.T) {
	r := &fakeResolver{}
	s := NewDiscoveryService(r)

	if _, err := s.Nearby(context.Background(), 40, -74, "cafe", 250); err != nil {
		t.Fatalf("Nearby: %v", err)
	}
	if r.radius != 250 {
		t.Fatalf("resolver got radius %d; want 250", r.radius)
	}
}

func TestNearby_RejectsBadCoordinates(t *testing.T) {
	r := &fakeResolver{}
	s := NewDiscoveryService(r)

	cases := [][2]float64{
		{0, 0},
		{91, 0},
		{-91, 0},
		{10, 181},
		{10, -181},
	}
	for _, c := range cases {
		if _, err := s.Nearby(context.Background(), c[0], c[1], "cafe", 0); !errors.Is(err, ErrInvalidCoordinates) {
			t.Errorf("Nearby(%v, %v): err = %v; want ErrInvalidCoordinates", c[0], c[1], err)
		}
	}
}

func TestNearby_PropagatesResolverError(t *testing.T) {
	boom := errors.New("gate closed")
	r := &fakeResolver{placesErr: boom}
	s := NewDiscoveryService(r)

	if _, err := s.Nearby(context.Background(), 40, -74, "cafe", 0); !errors.Is(err, boom) {
		t.Fatalf("err = %v; want %v", err, boom)
	}
}

func TestLocate_Delegates(t *testing.T) {
	r := &fakeResolver{coords: domain.Coordinates{Lat: 1.5, Lng: 2.5}}
	s := NewDiscoveryService(r)

	got, err := s.Locate(context.Background())
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if got != r.coords {
		t.Fatalf("coords = %+v", got)
	}
	if r.locateCalls != 1 {
		t.Fatalf("locate calls = %d", r.locateCalls)
	}
}
