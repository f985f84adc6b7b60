package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := NewRateLimiter(testDB(t), 3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow("10.0.0.1")
		if err != nil {
			t.Fatalf("Allow #%d: %v", i+1, err)
		}
		if !allowed {
			t.Fatalf("request #%d should be allowed", i+1)
		}
	}

	allowed, err := limiter.Allow("10.0.0.1")
	if err != nil {
		t.Fatalf("Allow over limit: %v", err)
	}
	if allowed {
		t.Fatalf("request over the limit should be denied")
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	limiter := NewRateLimiter(testDB(t), 2, time.Minute)

	current := time.Unix(1700000000, 0)
	limiter.now = func() time.Time { return current }

	for i := 0; i < 2; i++ {
		if allowed, err := limiter.Allow("10.0.0.1"); err != nil || !allowed {
			t.Fatalf("request #%d: allowed=%v err=%v", i+1, allowed, err)
		}
	}
	if allowed, _ := limiter.Allow("10.0.0.1"); allowed {
		t.Fatalf("limit should be hit before the window expires")
	}

	current = current.Add(61 * time.Second)

	allowed, err := limiter.Allow("10.0.0.1")
	if err != nil {
		t.Fatalf("Allow after window: %v", err)
	}
	if !allowed {
		t.Fatalf("request after the window should be allowed again")
	}
}

func TestRateLimiter_IndependentClients(t *testing.T) {
	limiter := NewRateLimiter(testDB(t), 1, time.Minute)

	if allowed, _ := limiter.Allow("10.0.0.1"); !allowed {
		t.Fatalf("first client should be allowed")
	}
	if allowed, _ := limiter.Allow("10.0.0.1"); allowed {
		t.Fatalf("first client should be limited")
	}
	if allowed, _ := limiter.Allow("10.0.0.2"); !allowed {
		t.Fatalf("second client has its own budget")
	}
}
