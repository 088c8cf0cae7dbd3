package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Jim-flores/odontosys-bk/internal/apierror"
)

// rateEntry tracks request counts per IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	loginMap   = make(map[string]*rateEntry)
	loginMapMu sync.Mutex

	apiRateMap   = make(map[string]*rateEntry)
	apiRateMapMu sync.Mutex
)

func take(m map[string]*rateEntry, mu *sync.Mutex, ip string, limit int, window time.Duration) (bool, time.Time) {
	mu.Lock()
	entry, exists := m[ip]
	if !exists {
		entry = &rateEntry{}
		m[ip] = entry
	}
	mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.After(entry.windowEnd) {
		entry.count = 0
		entry.windowEnd = now.Add(window)
	}
	entry.count++
	return entry.count <= limit, entry.windowEnd
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, _ := take(loginMap, &loginMapMu, c.ClientIP(), 20, time.Minute)
		if !ok {
			renderError(c, &apierror.Error{
				Status:  429,
				Code:    "TOO_MANY_REQUESTS",
				Message: "Too many login attempts. Try again in a minute.",
			})
			return
		}
		c.Next()
	}
}

// RateLimiter is a general-purpose sliding-window limiter per IP.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, windowEnd := take(apiRateMap, &apiRateMapMu, c.ClientIP(), limit, window)
		if !ok {
			c.Header("Retry-After", windowEnd.Format(time.RFC1123))
			renderError(c, &apierror.Error{
				Status:  429,
				Code:    "TOO_MANY_REQUESTS",
				Message: "Too many requests. Try again shortly.",
			})
			return
		}
		c.Next()
	}
}

// Expired entries are purged periodically so IPs that never return do not
// accumulate forever.
const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0
		for _, bucket := range []struct {
			m  map[string]*rateEntry
			mu *sync.Mutex
		}{
			{loginMap, &loginMapMu},
			{apiRateMap, &apiRateMapMu},
		} {
			bucket.mu.Lock()
			for ip, entry := range bucket.m {
				entry.mu.Lock()
				if now.After(entry.windowEnd) {
					delete(bucket.m, ip)
					purged++
				}
				entry.mu.Unlock()
			}
			bucket.mu.Unlock()
		}
		if purged > 0 {
			log.Debug().Int("entries_purged", purged).Msg("rate limiter maps purged")
		}
	}
}
