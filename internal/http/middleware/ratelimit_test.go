package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func limitedRouter(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(rl.Handler())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimiter_AllowsWithinBurstThenBlocks(t *testing.T) {
	// rps 0 means no refill: exactly burst requests succeed.
	rl := NewRateLimiter(0, 2, KeyByIP())
	r := limitedRouter(rl)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("first two requests should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request should be limited, got %v", codes)
	}
}

func TestRateLimiter_BlockedResponseShape(t *testing.T) {
	rl := NewRateLimiter(0, 1, KeyByIP())
	r := limitedRouter(rl)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "203.0.113.8:1234"
		r.ServeHTTP(w, req)
		if i == 1 {
			if w.Code != http.StatusTooManyRequests {
				t.Fatalf("status = %d", w.Code)
			}
			if w.Header().Get("Retry-After") != "1" {
				t.Fatalf("missing Retry-After header")
			}
		}
	}
}

func TestRateLimiter_SeparateKeysIndependent(t *testing.T) {
	rl := NewRateLimiter(0, 1, KeyByIP())
	r := limitedRouter(rl)

	for _, addr := range []string{"198.51.100.1:1", "198.51.100.2:1"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = addr
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("first request for %s should pass, got %d", addr, w.Code)
		}
	}
}

func TestNewRateLimiter_CoercesBurst(t *testing.T) {
	rl := NewRateLimiter(1, 0, KeyByIP())
	if rl.burst != 1 {
		t.Fatalf("burst = %d; want coerced to 1", rl.burst)
	}
}

func TestGetVisitor_EvictsIdleEntries(t *testing.T) {
	rl := NewRateLimiter(1, 1, KeyByIP())
	rl.ttl = 0 // everything idle immediately

	rl.getVisitor("a")
	rl.cleanupN = 4999 // next lookup triggers GC
	rl.getVisitor("b")

	rl.mu.Lock()
	_, aAlive := rl.visitors["a"]
	_, bAlive := rl.visitors["b"]
	rl.mu.Unlock()

	if aAlive {
		t.Fatal("idle visitor should have been evicted")
	}
	if !bAlive {
		t.Fatal("freshly created visitor must exist")
	}
}
