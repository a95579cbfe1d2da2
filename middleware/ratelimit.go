// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	limit       rate.Limit
	burst       int
	trustProxy  bool
	onReject    func()
	mu          sync.Mutex
	limiters    map[string]*rate.Limiter
	lastCleanup time.Time
}

// NewRateLimiter allows perSecond requests per client with the given burst.
// Clients are told apart by connection address, or by forwarding headers
// when trustProxy is set. onReject may be nil.
func NewRateLimiter(perSecond float64, burst int, trustProxy bool, onReject func()) *RateLimiter {
	return &RateLimiter{
		limit:       rate.Limit(perSecond),
		burst:       burst,
		trustProxy:  trustProxy,
		onReject:    onReject,
		limiters:    make(map[string]*rate.Limiter),
		lastCleanup: time.Now(),
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Drop idle buckets every hour so the map cannot grow without bound
	if time.Since(rl.lastCleanup) > time.Hour {
		rl.limiters = make(map[string]*rate.Limiter)
		rl.lastCleanup = time.Now()
	}

	limiter, ok := rl.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[ip] = limiter
	}
	return limiter
}

// Middleware rejects requests over the limit with 429
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := GetClientIP(r, rl.trustProxy)
		if !rl.limiterFor(ip).Allow() {
			slog.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
			if rl.onReject != nil {
				rl.onReject()
			}
			w.Header().Set("Retry-After", "1")
			ErrorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}
