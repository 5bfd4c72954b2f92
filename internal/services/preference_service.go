// Package services – PreferenceService
//
// This file implements persistence of the user's UI selections: the current
// place type, the view mode, and the theme. They live as one versioned JSON
// value in the key-value store, mirroring how the browser app kept them in
// local storage.
package services

import (
	"context"

	"github.com/shambhvi2006/cafe-curator/internal/places"
	"github.com/shambhvi2006/cafe-curator/internal/repo"
)

const (
	preferencesKey           = "preferences"
	preferencesSchemaVersion = 1
)

// Allowed preference values.
var (
	viewModes = map[string]struct{}{"swipe": {}, "grid": {}}
	themes    = map[string]struct{}{"light": {}, "dark": {}, "system": {}}
)

// Preferences are the persisted UI selections.
type Preferences struct {
	PlaceType string `json:"place_type"`
	ViewMode  string `json:"view_mode"`
	Theme     string `json:"theme"`
}

// DefaultPreferences returns the selections used before the user changes
// anything.
func DefaultPreferences() Preferences {
	return Preferences{PlaceType: DefaultPlaceType, ViewMode: "swipe", Theme: "system"}
}

// PreferenceService reads and writes Preferences through the key-value store.
type PreferenceService struct {
	Store repo.Store
}

// NewPreferenceService constructs a PreferenceService.
func NewPreferenceService(store repo.Store) *PreferenceService {
	return &PreferenceService{Store: store}
}

// Get returns the stored preferences, or the defaults when nothing has been
// stored yet (or the stored shape is from an older schema).
func (s *PreferenceService) Get(ctx context.Context) (Preferences, error) {
	p, ok, err := repo.GetJSON[Preferences](ctx, s.Store, preferencesKey, preferencesSchemaVersion)
	if err != nil {
		return Preferences{}, err
	}
	if !ok {
		return DefaultPreferences(), nil
	}
	return p, nil
}

// Update applies the non-empty fields of in on top of the current
// preferences, validates the result, persists it, and returns it.
func (s *PreferenceService) Update(ctx context.Context, in Preferences) (Preferences, error) {
	cur, err := s.Get(ctx)
	if err != nil {
		return Preferences{}, err
	}

	if in.PlaceType != "" {
		typ := places.NormalizeType(in.PlaceType)
		if typ == "" {
			return Preferences{}, ErrInvalidPreference
		}
		cur.PlaceType = typ
	}
	if in.ViewMode != "" {
		if _, ok := viewModes[in.ViewMode]; !ok {
			return Preferences{}, ErrInvalidPreference
		}
		cur.ViewMode = in.ViewMode
	}
	if in.Theme != "" {
		if _, ok := themes[in.Theme]; !ok {
			return Preferences{}, ErrInvalidPreference
		}
		cur.Theme = in.Theme
	}

	if err := repo.SetJSON(ctx, s.Store, preferencesKey, preferencesSchemaVersion, cur); err != nil {
		return Preferences{}, err
	}
	return cur, nil
}
