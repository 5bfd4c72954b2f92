// Package repo implements the data persistence layer, backed by GORM. This
// file provides repository functions for per-category saved places.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition. Duplicate detection is a service-layer
// concern (linear scan of the category list before insert).
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shambhvi2006/cafe-curator/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across layers.
var ErrNotFound = gorm.ErrRecordNotFound

// ListSaved returns all saved places in a category in insertion order.
// It returns an empty slice when the category has no entries.
func ListSaved(ctx context.Context, db *gorm.DB, category string) ([]domain.SavedPlace, error) {
	var out []domain.SavedPlace
	err := db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at asc, rowid asc").
		Find(&out).Error
	return out, err
}

// InsertSaved appends a new saved place to its category list. The row ID is a
// generated UUID and CreatedAt is set to UTC.
func InsertSaved(ctx context.Context, db *gorm.DB, sp *domain.SavedPlace) error {
	sp.ID = uuid.NewString()
	sp.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(sp).Error
}

// DeleteSaved removes the entry for placeID from a category and reports how
// many rows were affected. Zero affected rows is not an error: removing a
// non-present id is a no-op.
func DeleteSaved(ctx context.Context, db *gorm.DB, category, placeID string) (int64, error) {
	res := db.WithContext(ctx).
		Where("category = ? AND place_id = ?", category, placeID).
		Delete(&domain.SavedPlace{})
	return res.RowsAffected, res.Error
}
