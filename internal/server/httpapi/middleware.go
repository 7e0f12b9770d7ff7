package httpapi

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const tokenKey = "accessToken"

// maxLimiters bounds the per-client limiter map; it is reset when exceeded.
const maxLimiters = 10000

// bearerToken requires "Authorization: Bearer <token>" and stores the token
// for handlers. Token validation happens in the services.
func bearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if len(header) <= len(common.BearerScheme) || !strings.EqualFold(header[:len(common.BearerScheme)], common.BearerScheme) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		c.Set(tokenKey, strings.TrimSpace(header[len(common.BearerScheme):]))
		c.Next()
	}
}

func token(c *gin.Context) string {
	return c.GetString(tokenKey)
}

func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if status >= http.StatusInternalServerError {
			s.logger.Error(c.Request.Context(), "request", args...)
		} else {
			s.logger.Debug(c.Request.Context(), "request", args...)
		}
	}
}

// limiterCache holds one token bucket per client key.
type limiterCache[K comparable] struct {
	limiters map[K]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

func newLimiterCache[K comparable](rps float64, burst int) *limiterCache[K] {
	return &limiterCache[K]{
		limiters: make(map[K]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

func (lc *limiterCache[K]) get(key K) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[key]
	lc.mu.RUnlock()

	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	if limiter, exists = lc.limiters[key]; exists {
		return limiter
	}

	if len(lc.limiters) >= maxLimiters {
		lc.limiters = make(map[K]*rate.Limiter)
	}

	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

// rateLimit throttles by client IP. A non-positive rate disables it.
func (s *HTTPServer) rateLimit(cache *limiterCache[string]) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache.rate <= 0 {
			c.Next()
			return
		}
		if !cache.get(c.ClientIP()).Allow() {
			s.logger.Warn(c.Request.Context(), "login rate limit exceeded", "client_ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
