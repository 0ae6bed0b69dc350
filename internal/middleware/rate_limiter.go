package middleware

import (
	"sync"
	"time"
)

// RateLimiter implements a simple in-memory per-IP rate limiter for the
// admin API.
type RateLimiter struct {
	ipLimits map[string]*ipLimit
	mu       sync.Mutex

	maxRequests int
	window      time.Duration
}

type ipLimit struct {
	requests  int
	resetTime time.Time
}

// NewRateLimiter creates a new rate limiter allowing maxRequests per window.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		ipLimits:    make(map[string]*ipLimit),
		maxRequests: maxRequests,
		window:      window,
	}

	go rl.cleanup()

	return rl
}

// Allow checks if the IP is still within its limit and counts the request.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	limit, exists := rl.ipLimits[ip]
	if !exists || now.After(limit.resetTime) {
		rl.ipLimits[ip] = &ipLimit{
			requests:  1,
			resetTime: now.Add(rl.window),
		}
		return true
	}

	if limit.requests >= rl.maxRequests {
		return false
	}

	limit.requests++
	return true
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, limit := range rl.ipLimits {
			if now.After(limit.resetTime) {
				delete(rl.ipLimits, ip)
			}
		}
		rl.mu.Unlock()
	}
}
