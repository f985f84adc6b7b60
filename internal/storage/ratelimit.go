package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// RateLimiter enforces a fixed-window per-IP request limit backed by
// the request_limits table, so the limit survives server restarts.
type RateLimiter struct {
	db     *DB
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewRateLimiter creates a rate limiter allowing limit requests per
// window for each client IP.
func NewRateLimiter(db *DB, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		db:     db,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow records one request from ip and reports whether it is within
// the limit. The window resets once the last recorded request is
// older than the window.
func (r *RateLimiter) Allow(ip string) (bool, error) {
	current := r.now().Unix()

	var count int
	var last int64
	err := r.db.QueryRow(
		`SELECT request_count, last_request_time FROM request_limits WHERE ip_address = ?`,
		ip).Scan(&count, &last)

	switch {
	case err == sql.ErrNoRows:
		_, err = r.db.Exec(
			`INSERT INTO request_limits (ip_address, request_count, last_request_time) VALUES (?, 1, ?)`,
			ip, current)
		if err != nil {
			return false, fmt.Errorf("failed to record request: %w", err)
		}
		return true, nil

	case err != nil:
		return false, fmt.Errorf("failed to check request limit: %w", err)
	}

	if current-last > int64(r.window.Seconds()) {
		count = 0
	}

	if count >= r.limit {
		return false, nil
	}

	_, err = r.db.Exec(
		`UPDATE request_limits SET request_count = ?, last_request_time = ? WHERE ip_address = ?`,
		count+1, current, ip)
	if err != nil {
		return false, fmt.Errorf("failed to update request limit: %w", err)
	}

	return true, nil
}
