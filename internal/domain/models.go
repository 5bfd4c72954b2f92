// Package domain defines the persistence models and core value types for the
// place discovery service: fetched place records, per-category saved places,
// and the generic key-value rows that back the cache and preference stores.
// Persistent types are mapped with GORM.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Coordinates is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a single result returned by the upstream nearby search. Places are
// immutable once fetched; results from different queries are not deduplicated
// against each other.
//
// Rating is a pointer because the upstream provider omits it for unrated
// venues. Ordering logic treats a missing rating as 0.
type Place struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Rating   *float64 `json:"rating,omitempty"`
	Address  string   `json:"address,omitempty"`
	PhotoURL string   `json:"photo_url,omitempty"`
}

// RatingValue returns the place rating, or 0 when the upstream provider did
// not supply one.
func (p Place) RatingValue() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// SavedPlace is a place the user chose to keep, stored in a per-category list.
// Within one category no two rows share the same PlaceID; the service layer
// enforces this with a linear scan before insert.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Category: normalized place type (e.g. "cafe"); indexed for listing.
//   - PlaceID: upstream place identifier, unique within a category only.
//   - Name / PhotoURL / Rating: the subset of the fetched place worth keeping.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker.
type SavedPlace struct {
	ID        string         `json:"id"        gorm:"type:char(36);primaryKey"`
	Category  string         `json:"category"  gorm:"type:varchar(64);not null;index:idx_category_saves"`
	PlaceID   string         `json:"place_id"  gorm:"type:varchar(128);not null;index"`
	Name      string         `json:"name"      gorm:"type:varchar(255);not null"`
	PhotoURL  string         `json:"photo_url" gorm:"type:text"`
	Rating    *float64       `json:"rating,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"         gorm:"index"`
}

// TableName returns the database table name for SavedPlace.
func (SavedPlace) TableName() string { return "saved_places" }

// KVEntry is a single JSON-encoded value in the durable key-value store.
// It backs the location cache, the per-bucket result caches, and user
// preferences. Values carry their own schema version inside the JSON payload
// (see repo.GetJSON / repo.SetJSON), so the row itself stays schema-free.
type KVEntry struct {
	Key       string    `gorm:"type:varchar(255);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName returns the database table name for KVEntry.
func (KVEntry) TableName() string { return "kv_entries" }
