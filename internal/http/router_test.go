package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shambhvi2006/cafe-curator/internal/config"
	"github.com/shambhvi2006/cafe-curator/internal/domain"
	"github.com/shambhvi2006/cafe-curator/internal/geo"
	"github.com/shambhvi2006/cafe-curator/internal/places"
	"github.com/shambhvi2006/cafe-curator/internal/repo"
)

func init() { gin.SetMode(gin.TestMode) }

// newTestDB opens a shared in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:router_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// newEngine builds a fully wired engine with no upstream credential and a
// pinned location.
func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	r := gin.New()
	client := places.NewClient("")
	locator := geo.StaticProvider{Coords: domain.Coordinates{Lat: 52.37, Lng: 4.89}}
	RegisterRoutes(r, newTestDB(t), client, locator, cfg)
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestRouter_Health(t *testing.T) {
	w := get(newEngine(t), "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestRouter_Metrics(t *testing.T) {
	w := get(newEngine(t), "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRouter_NoRouteEnvelope(t *testing.T) {
	w := get(newEngine(t), "/nope")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v (body %s)", err, w.Body.String())
	}
	if resp.Code != "not_found" {
		t.Fatalf("code = %q", resp.Code)
	}
}

func TestRouter_NoMethodEnvelope(t *testing.T) {
	r := newEngine(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/health", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRouter_CORSDefaultAllowAll(t *testing.T) {
	w := get(newEngine(t), "/health")
	if acao := w.Header().Get("Access-Control-Allow-Origin"); acao != "*" {
		t.Fatalf("ACAO = %q; want *", acao)
	}
}

func TestRouter_RequestIDHeader(t *testing.T) {
	w := get(newEngine(t), "/health")
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing X-Request-ID header")
	}
}

func TestRouter_NearbyWithoutCredential(t *testing.T) {
	// No PLACES_API_KEY configured: the proxy reports a config error.
	w := get(newEngine(t), "/api/nearby?lat=52.37&lng=4.89&type=cafe")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Code  string `json:"code"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != "config_error" || resp.Error == "" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestRouter_NearbyForwardsRadiusUpstream(t *testing.T) {
	var gotRadius string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRadius = r.URL.Query().Get("radius")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"place_id":"p1","name":"Ritual","rating":4.5}]}`))
	}))
	defer upstream.Close()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	r := gin.New()
	client := places.NewClient("k", places.WithBaseURL(upstream.URL))
	locator := geo.StaticProvider{Coords: domain.Coordinates{Lat: 52.37, Lng: 4.89}}
	RegisterRoutes(r, newTestDB(t), client, locator, cfg)

	w := get(r, "/api/nearby?lat=40.0001&lng=-73.9999&type=cafe&radius=50")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body = %s", w.Code, w.Body.String())
	}
	if gotRadius != "50" {
		t.Fatalf("upstream received radius=%s; want 50", gotRadius)
	}
	if !strings.Contains(w.Body.String(), `"results"`) {
		t.Fatalf("payload must use a results array: %s", w.Body.String())
	}
}

func TestRouter_LocationUsesStaticProvider(t *testing.T) {
	w := get(newEngine(t), "/api/location")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Lat != 52.37 || resp.Lng != 4.89 {
		t.Fatalf("coords = %+v", resp)
	}
}

func TestRouter_SavedRoundtrip(t *testing.T) {
	r := newEngine(t)

	// Save.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/saved/cafe",
		strings.NewReader(`{"place_id":"p1","name":"Ritual"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("save status = %d; body = %s", w.Code, w.Body.String())
	}

	// List.
	w = get(r, "/api/saved/cafe")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"p1"`) {
		t.Fatalf("saved place missing from list: %s", w.Body.String())
	}

	// Remove.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/saved/cafe/p1", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("remove status = %d", w.Code)
	}
}

func TestRouter_PreferencesRoundtrip(t *testing.T) {
	r := newEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/preferences",
		strings.NewReader(`{"theme":"dark"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d; body = %s", w.Code, w.Body.String())
	}

	w = get(r, "/api/preferences")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"theme":"dark"`) {
		t.Fatalf("preferences not persisted: %s", w.Body.String())
	}
}

func TestGroupWithPrefix(t *testing.T) {
	r := gin.New()
	if g := groupWithPrefix(r, ""); g.BasePath() != "/" {
		t.Fatalf("empty prefix base = %q", g.BasePath())
	}
	if g := groupWithPrefix(r, "/api"); g.BasePath() != "/api" {
		t.Fatalf("prefix base = %q", g.BasePath())
	}
}
