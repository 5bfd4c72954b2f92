package services

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// memStore is a minimal in-memory repo.Store.
type memStore struct {
	mu sync.Mutex
	m  map[string][]byte
}

func newMemStore() *memStore { return &memStore{m: map[string][]byte{}} }

func (s *memStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func TestPreferences_DefaultsWhenUnset(t *testing.T) {
	s := NewPreferenceService(newMemStore())

	got, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != DefaultPreferences() {
		t.Fatalf("got %+v; want defaults %+v", got, DefaultPreferences())
	}
}

func TestPreferences_UpdateRoundtrip(t *testing.T) {
	s := NewPreferenceService(newMemStore())
	ctx := context.Background()

	got, err := s.Update(ctx, Preferences{PlaceType: "Coffee", Theme: "dark"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.PlaceType != "cafe" {
		t.Fatalf("place type = %q; want normalized %q", got.PlaceType, "cafe")
	}
	if got.Theme != "dark" {
		t.Fatalf("theme = %q", got.Theme)
	}
	// Untouched field keeps its default.
	if got.ViewMode != "swipe" {
		t.Fatalf("view mode = %q; want %q", got.ViewMode, "swipe")
	}

	// A later partial update keeps earlier choices.
	got, err = s.Update(ctx, Preferences{ViewMode: "grid"})
	if err != nil {
		t.Fatalf("second Update: %v", err)
	}
	if got.PlaceType != "cafe" || got.Theme != "dark" || got.ViewMode != "grid" {
		t.Fatalf("merged preferences wrong: %+v", got)
	}

	stored, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored != got {
		t.Fatalf("stored %+v != returned %+v", stored, got)
	}
}

func TestPreferences_RejectsUnknownValues(t *testing.T) {
	s := NewPreferenceService(newMemStore())
	ctx := context.Background()

	if _, err := s.Update(ctx, Preferences{ViewMode: "carousel"}); !errors.Is(err, ErrInvalidPreference) {
		t.Fatalf("view mode: err = %v", err)
	}
	if _, err := s.Update(ctx, Preferences{Theme: "neon"}); !errors.Is(err, ErrInvalidPreference) {
		t.Fatalf("theme: err = %v", err)
	}
}
