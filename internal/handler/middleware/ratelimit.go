package middleware

import (
	"net/http"
	"sync"
	"time"

	"auction-engine/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// BidRateLimiter throttles bid submissions per client IP. Entries idle longer
// than limiterIdleTTL are pruned on access.
type BidRateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	rate      rate.Limit
	burst     int
	lastPrune time.Time
}

func NewBidRateLimiter(cfg config.AuctionConfig) *BidRateLimiter {
	return &BidRateLimiter{
		clients:   make(map[string]*clientLimiter),
		rate:      rate.Limit(cfg.BidRatePerSec),
		burst:     cfg.BidRateBurst,
		lastPrune: time.Now(),
	}
}

func (rl *BidRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many bids, slow down",
			})
			return
		}
		c.Next()
	}
}

func (rl *BidRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastPrune) > limiterIdleTTL {
		for k, cl := range rl.clients {
			if now.Sub(cl.lastSeen) > limiterIdleTTL {
				delete(rl.clients, k)
			}
		}
		rl.lastPrune = now
	}

	cl, ok := rl.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.Allow()
}
