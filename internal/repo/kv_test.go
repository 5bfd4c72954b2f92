package repo

import (
	"context"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shambhvi2006/cafe-curator/internal/domain"
)

func newTestKV(t *testing.T) *KV {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:kv_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.KVEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// Isolate tests sharing the named in-memory database.
	db.Exec("DELETE FROM kv_entries")
	return NewKV(db)
}

func TestKV_GetMissingKey(t *testing.T) {
	kv := newTestKV(t)
	_, ok, err := kv.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for missing key")
	}
}

func TestKV_SetOverwrites(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	if err := kv.Set(ctx, "k", []byte("one")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set(ctx, "k", []byte("two")); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	val, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(val) != "two" {
		t.Fatalf("value = %q; want %q", val, "two")
	}
}

type shapeV1 struct {
	Name string `json:"name"`
	N    int    `json:"n"`
}

func TestGetSetJSON_Roundtrip(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	in := shapeV1{Name: "espresso", N: 3}
	if err := SetJSON(ctx, kv, "shape", 1, in); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	out, ok, err := GetJSON[shapeV1](ctx, kv, "shape", 1)
	if err != nil || !ok {
		t.Fatalf("GetJSON: ok=%v err=%v", ok, err)
	}
	if out != in {
		t.Fatalf("roundtrip mismatch: %+v != %+v", out, in)
	}
}

func TestGetJSON_VersionMismatchIsAbsent(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	if err := SetJSON(ctx, kv, "shape", 1, shapeV1{Name: "x"}); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	_, ok, err := GetJSON[shapeV1](ctx, kv, "shape", 2)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if ok {
		t.Fatal("version mismatch must read as absent")
	}
}

func TestGetJSON_MalformedPayloadIsAbsent(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	if err := kv.Set(ctx, "junk", []byte("not-json")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_, ok, err := GetJSON[shapeV1](ctx, kv, "junk", 1)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if ok {
		t.Fatal("malformed payload must read as absent")
	}
}
