// Package ratelimit provides a per-client token-bucket gin middleware built
// on golang.org/x/time/rate, the ecosystem's standard rate limiter (no
// alternative appears anywhere in the retrieved corpus).
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Limiter hands out one rate.Limiter per client IP, replenishing at the
// configured interval up to the configured burst.
type Limiter struct {
	mu        sync.Mutex
	buckets   map[string]*rate.Limiter
	replenish time.Duration
	burst     int
}

// New builds a Limiter. replenish is the interval between token refills;
// burst is the bucket capacity.
func New(replenish time.Duration, burst int) *Limiter {
	return &Limiter{
		buckets:   make(map[string]*rate.Limiter),
		replenish: replenish,
		burst:     burst,
	}
}

func (l *Limiter) bucketFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = rate.NewLimiter(rate.Every(l.replenish), l.burst)
		l.buckets[key] = b
	}
	return b
}

// Middleware returns a gin.HandlerFunc that rejects a request with 429 once
// the requesting client's bucket is exhausted.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := clientKey(c)
		if !l.bucketFor(key).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{
					"kind":    "rate_limited",
					"message": "too many requests",
				},
			})
			return
		}
		c.Next()
	}
}

func clientKey(c *gin.Context) string {
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
