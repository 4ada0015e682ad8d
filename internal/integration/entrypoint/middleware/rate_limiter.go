package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
	// redisKeyPrefix namespaces the counters kept in Redis.
	redisKeyPrefix = "rl:login:"
)

// incrExpireScript increments a counter and starts its window on the first hit.
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// RateLimiter provides IP-based fixed-window rate limiting. Counters live in
// Redis when a client is configured and in process memory otherwise.
type RateLimiter struct {
	mu             sync.Mutex
	entries        map[string]*rateLimitEntry
	maxAttempts    int
	windowDuration time.Duration
	redis          *redis.Client
	now            func() time.Time
}

// NewRateLimiter creates a new in-memory rate limiter with default settings.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a new in-memory rate limiter with custom settings.
func NewRateLimiterWithConfig(maxAttempts int, windowDuration time.Duration) *RateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}
	return &RateLimiter{
		entries:        make(map[string]*rateLimitEntry),
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
		now:            time.Now,
	}
}

// NewRedisRateLimiter creates a rate limiter that shares its counters through
// Redis. A nil client yields an in-memory limiter.
func NewRedisRateLimiter(client *redis.Client, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	rl := NewRateLimiterWithConfig(maxAttempts, windowDuration)
	rl.redis = client
	return rl
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip rate limiting in E2E mode or test environment
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		// Get client IP
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		// Check rate limit
		allowed, remaining := rl.allow(c.Request.Context(), clientIP)
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.maxAttempts))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

// allow reports whether a request from key is within the limit and how many
// attempts remain in the current window. Redis failures fall back to memory.
func (rl *RateLimiter) allow(ctx context.Context, key string) (bool, int) {
	if rl.redis != nil {
		count, err := incrExpireScript.Run(ctx, rl.redis, []string{redisKeyPrefix + key}, rl.windowDuration.Milliseconds()).Int()
		if err == nil {
			return count <= rl.maxAttempts, max(rl.maxAttempts-count, 0)
		}
		slog.Warn("rate limiter redis unavailable, using memory counters", "error", err)
	}
	return rl.allowInMemory(key)
}

func (rl *RateLimiter) allowInMemory(key string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	entry, exists := rl.entries[key]
	if !exists || now.After(entry.resetTime) {
		// First request from this key or the window has expired
		rl.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(rl.windowDuration),
		}
		return true, rl.maxAttempts - 1
	}

	// Check if under the limit
	if entry.attempts < rl.maxAttempts {
		entry.attempts++
		return true, rl.maxAttempts - entry.attempts
	}

	// Rate limit exceeded
	return false, 0
}

// Reset clears the in-memory state (useful for testing).
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.entries = make(map[string]*rateLimitEntry)
}

// Cleanup removes expired in-memory entries (can be called periodically to free memory).
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, entry := range rl.entries {
		if now.After(entry.resetTime) {
			delete(rl.entries, key)
		}
	}
}

// StartCleanup runs Cleanup every window until ctx is done.
func (rl *RateLimiter) StartCleanup(ctx context.Context) {
	ticker := time.NewTicker(rl.windowDuration)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Cleanup()
			}
		}
	}()
}
