// Package services – SavedService
//
// This file implements the saved-place registry: a per-category list of
// places the user swiped right on. Duplicate detection is a linear scan of
// the category list before insert; a duplicate save is reported to the caller
// as "already saved" rather than as an error. Removal of a non-present id is
// a no-op.
package services

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/shambhvi2006/cafe-curator/internal/domain"
	"github.com/shambhvi2006/cafe-curator/internal/places"
)

// SavedRepo defines the repository contract required by SavedService.
type SavedRepo interface {
	// ListSaved returns all saved places in a category in insertion order.
	ListSaved(ctx context.Context, db *gorm.DB, category string) ([]domain.SavedPlace, error)
	// InsertSaved appends a new saved place to its category list.
	InsertSaved(ctx context.Context, db *gorm.DB, sp *domain.SavedPlace) error
	// DeleteSaved removes a place from a category, reporting affected rows.
	DeleteSaved(ctx context.Context, db *gorm.DB, category, placeID string) (int64, error)
}

// SaveInput is the subset of a fetched place worth keeping.
type SaveInput struct {
	PlaceID  string
	Name     string
	PhotoURL string
	Rating   *float64
}

// SavedService provides the per-category saved-place registry.
type SavedService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the saved-place repository used by this service.
	Repo SavedRepo
}

// NewSavedService constructs a SavedService.
func NewSavedService(db *gorm.DB, r SavedRepo) *SavedService {
	return &SavedService{DB: db, Repo: r}
}

// Save appends a place to a category list unless it is already there.
// created=false with a nil error means the place was already saved; this is
// communicated to the user but is not a failure.
func (s *SavedService) Save(ctx context.Context, category string, in SaveInput) (created bool, err error) {
	cat := places.NormalizeType(category)
	if cat == "" {
		return false, ErrInvalidCategory
	}
	if strings.TrimSpace(in.PlaceID) == "" || strings.TrimSpace(in.Name) == "" {
		return false, ErrInvalidPlace
	}

	existing, err := s.Repo.ListSaved(ctx, s.DB, cat)
	if err != nil {
		return false, err
	}
	for _, sp := range existing {
		if sp.PlaceID == in.PlaceID {
			return false, nil
		}
	}

	sp := &domain.SavedPlace{
		Category: cat,
		PlaceID:  in.PlaceID,
		Name:     strings.TrimSpace(in.Name),
		PhotoURL: in.PhotoURL,
		Rating:   in.Rating,
	}
	if err := s.Repo.InsertSaved(ctx, s.DB, sp); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes a place from a category list. Removing an id that is not
// present is a no-op.
func (s *SavedService) Remove(ctx context.Context, category, placeID string) error {
	cat := places.NormalizeType(category)
	if cat == "" {
		return ErrInvalidCategory
	}
	_, err := s.Repo.DeleteSaved(ctx, s.DB, cat, placeID)
	return err
}

// List returns the saved places of a category in insertion order.
func (s *SavedService) List(ctx context.Context, category string) ([]domain.SavedPlace, error) {
	cat := places.NormalizeType(category)
	if cat == "" {
		return nil, ErrInvalidCategory
	}
	return s.Repo.ListSaved(ctx, s.DB, cat)
}

// titleCaser renders category slugs as display labels.
var titleCaser = cases.Title(language.English)

// CategoryLabel converts a normalized category into a human-readable label,
// e.g. "book_store" becomes "Book Store".
func CategoryLabel(category string) string {
	return titleCaser.String(strings.ReplaceAll(category, "_", " "))
}
