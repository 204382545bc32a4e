// Package ratelimiter provides a fixed-window rate limiter for the auth
// endpoints, keyed by client address.
package ratelimiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Limiter counts requests per key in fixed windows and denies anything over
// the limit. It is safe for concurrent use.
type Limiter struct {
	limit    int
	interval time.Duration

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count int
	reset time.Time
}

// NewLimiter creates a limiter allowing limit requests per key per interval.
func NewLimiter(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
	}
}

// Allow reports whether a request for key fits in the current window.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.After(w.reset) {
		l.windows[key] = &window{count: 1, reset: now.Add(l.interval)}
		return true
	}

	w.count++
	return w.count <= l.limit
}

// Middleware returns a gin middleware that answers 429 once a client
// exceeds the limit.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
