package web

import (
	"net"
	"net/http"
	"strings"

	"github.com/user/netsnap/internal/storage"
	"github.com/user/netsnap/internal/util"
)

// RateLimit rejects clients that exceed the per-IP request limit with
// 429. A limiter failure lets the request through; the report itself
// is best-effort and accounting must not take it down.
func RateLimit(limiter *storage.RateLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		allowed, err := limiter.Allow(ip)
		if err != nil {
			util.Error("rate limit check failed for %s: %v", ip, err)
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			util.Warn("rate limit exceeded for %s", ip)
			writeError(w, "request limit exceeded, please try again later", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CORS allows cross-origin requests from the configured origins only.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimRight(r.Header.Get("Origin"), "/")

		if origin != "" && originAllowed(origin, allowedOrigins) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "86400")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func originAllowed(origin string, allowed []string) bool {
	for _, o := range allowed {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
