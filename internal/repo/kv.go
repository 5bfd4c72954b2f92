// Package repo implements the data persistence layer, backed by GORM. This
// file provides the durable key-value store used for the location cache, the
// per-bucket result caches, and user preferences, plus a typed JSON codec
// with explicit schema versions per stored shape.
//
// The raw store deals in opaque bytes; shapes and their versions live with
// the callers. A version mismatch on read is reported as "absent" rather than
// an error, so a deploy that bumps a shape simply repopulates the key instead
// of failing requests on stale rows.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shambhvi2006/cafe-curator/internal/domain"
)

// Store is the minimal key-value contract consumed by the cache controller
// and the preference service. Implementations must tolerate concurrent
// writers; the last write wins.
type Store interface {
	// Get returns the raw value for key, with ok=false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set writes (or overwrites) the value for key.
	Set(ctx context.Context, key string, value []byte) error
}

// KV is the SQLite-backed Store. Each key maps to one row in kv_entries;
// writes are single-row upserts, no transactions across keys.
type KV struct {
	DB *gorm.DB
}

// NewKV returns a Store over the given database handle.
func NewKV(db *gorm.DB) *KV { return &KV{DB: db} }

// Get fetches the value for key. A missing row is (nil, false, nil).
func (kv *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var ent domain.KVEntry
	err := kv.DB.WithContext(ctx).Where("key = ?", key).First(&ent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(ent.Value), true, nil
}

// Set upserts the value for key. Existing rows are overwritten in place;
// there is no eviction beyond overwrite-on-collision.
func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	ent := domain.KVEntry{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	return kv.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&ent).Error
}

// envelope wraps a stored shape with its schema version.
type envelope struct {
	Version int             `json:"v"`
	Data    json.RawMessage `json:"data"`
}

// GetJSON reads and decodes the value at key as a T written with the given
// schema version. Absent keys, version mismatches, and undecodable payloads
// all report ok=false; only store-level failures surface as errors.
func GetJSON[T any](ctx context.Context, s Store, key string, version int) (T, bool, error) {
	var zero T

	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Version != version {
		return zero, false, nil
	}
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return zero, false, nil
	}
	return out, true, nil
}

// SetJSON encodes value with its schema version and writes it at key.
func SetJSON[T any](ctx context.Context, s Store, key string, version int, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(envelope{Version: version, Data: data})
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}
