package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitMessage is returned verbatim to every throttled request.
const RateLimitMessage = "Demasiadas peticiones desde esta IP, intente de nuevo más tarde"

// RateLimiter counts requests per client key over a fixed window. Counters
// live for the process lifetime; a key's window resets once it expires.
type RateLimiter struct {
	window time.Duration
	max    int
	now    func() time.Time

	mu      sync.Mutex
	clients map[string]*clientWindow
}

type clientWindow struct {
	start time.Time
	count int
}

// NewRateLimiter returns a limiter allowing max requests per key within each
// fixed window.
func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		window:  window,
		max:     max,
		now:     time.Now,
		clients: make(map[string]*clientWindow),
	}
}

// Allow records one request for key and reports whether it fits in the
// current window. The remaining count is informational for response headers.
func (l *RateLimiter) Allow(key string) (allowed bool, remaining int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	w, ok := l.clients[key]
	if !ok || now.Sub(w.start) >= l.window {
		w = &clientWindow{start: now}
		l.clients[key] = w
	}
	if w.count >= l.max {
		return false, 0
	}
	w.count++
	return true, l.max - w.count
}

// prune drops expired windows so the map only holds clients seen within the
// last window. Caller must hold mu.
func (l *RateLimiter) prune(now time.Time) {
	for key, w := range l.clients {
		if now.Sub(w.start) >= l.window {
			delete(l.clients, key)
		}
	}
}

// Middleware rejects over-limit requests with 429 and a fixed message,
// keyed by client IP.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := l.Allow(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "too_many_requests",
				"message": RateLimitMessage,
			})
			return
		}
		c.Next()
	}
}
