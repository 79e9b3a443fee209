package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	adminLoginAttemptLimit  = 5
	adminLoginAttemptWindow = 15 * time.Minute
)

// attemptLimiter counts failures per key inside a sliding window.
type attemptLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	failures map[string][]time.Time
}

func newAttemptLimiter(limit int, window time.Duration) *attemptLimiter {
	return &attemptLimiter{
		limit:    limit,
		window:   window,
		failures: make(map[string][]time.Time),
	}
}

func (limiter *attemptLimiter) blocked(key string, now time.Time) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	return len(limiter.recentLocked(key, now)) >= limiter.limit
}

func (limiter *attemptLimiter) recordFailure(key string, now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	limiter.failures[key] = append(limiter.recentLocked(key, now), now)
}

func (limiter *attemptLimiter) reset(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.failures, key)
}

func (limiter *attemptLimiter) recentLocked(key string, now time.Time) []time.Time {
	threshold := now.Add(-limiter.window)
	recent := limiter.failures[key][:0]
	for _, at := range limiter.failures[key] {
		if at.After(threshold) {
			recent = append(recent, at)
		}
	}
	if len(recent) == 0 {
		delete(limiter.failures, key)
		return nil
	}
	limiter.failures[key] = recent
	return recent
}

func requestLimiterKey(c *fiber.Ctx) string {
	if key := strings.TrimSpace(c.IP()); key != "" {
		return key
	}
	return "unknown"
}
