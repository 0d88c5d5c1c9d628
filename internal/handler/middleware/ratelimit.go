package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"mentor-availability/internal/handler/httperr"
	"mentor-availability/internal/pkg/clock"
	"mentor-availability/internal/pkg/config"
	"mentor-availability/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter throttles each mentor with its own token bucket. Mount it after
// RequireAuth so the mentor is known; requests without one are keyed by client IP.
type RateLimiter struct {
	mu        sync.Mutex
	clk       clock.Clock
	limiters  map[string]*trackedLimiter
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
}

type trackedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter returns nil when RATE_LIMIT_PER_MINUTE is 0, which disables limiting.
func NewRateLimiter(cfg config.Config, clk clock.Clock) *RateLimiter {
	if cfg.RateLimit.PerMinute <= 0 {
		return nil
	}
	burst := cfg.RateLimit.Burst
	if burst <= 0 {
		burst = cfg.RateLimit.PerMinute
	}
	interval := time.Minute / time.Duration(cfg.RateLimit.PerMinute)
	return &RateLimiter{
		clk:       clk,
		limiters:  make(map[string]*trackedLimiter),
		limit:     rate.Every(interval),
		burst:     burst,
		idle:      max(time.Duration(burst)*interval, time.Minute),
		lastSweep: clk.Now(),
	}
}

// allow spends one token for key. A bucket idle for longer than a full refill is
// indistinguishable from a new one, so such buckets are dropped on the next sweep.
func (r *RateLimiter) allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clk.Now()
	if now.Sub(r.lastSweep) >= r.idle {
		for k, t := range r.limiters {
			if now.Sub(t.lastSeen) >= r.idle {
				delete(r.limiters, k)
			}
		}
		r.lastSweep = now
	}

	t, ok := r.limiters[key]
	if !ok {
		t = &trackedLimiter{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.limiters[key] = t
	}
	t.lastSeen = now
	return t.limiter.AllowN(now, 1)
}

func (r *RateLimiter) tracked() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.limiters)
}

func (r *RateLimiter) PerMentor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r == nil {
			c.Next()
			return
		}
		key := c.ClientIP()
		if mentorID, ok := GetMentorID(c); ok {
			key = mentorID.String()
		}
		if !r.allow(key) {
			slog.Warn("rate limit exceeded", "key", key, "path", c.Request.URL.Path)
			httperr.AbortWithError(c, http.StatusTooManyRequests, errs.New("rate limit exceeded"), "Rate limit exceeded. Try again later.", nil)
			return
		}
		c.Next()
	}
}
