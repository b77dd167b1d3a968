package mcp

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/quadra-cli/internal/core/domain"
)

// RateLimiter throttles tool and resource calls with a token bucket.
// Limits can be changed while calls are in flight.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	limits  domain.MCPSettings
}

// NewRateLimiter creates a limiter from MCP settings.
// A zero RateLimit disables limiting.
func NewRateLimiter(cfg domain.MCPSettings) *RateLimiter {
	limit, burst := bucket(cfg)
	return &RateLimiter{
		limiter: rate.NewLimiter(limit, burst),
		limits:  cfg,
	}
}

// SetLimits replaces the rate and burst.
func (r *RateLimiter) SetLimits(cfg domain.MCPSettings) {
	limit, burst := bucket(cfg)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.limiter.SetLimit(limit)
	r.limiter.SetBurst(burst)
	r.limits = cfg
}

// Limits returns the settings currently applied.
func (r *RateLimiter) Limits() domain.MCPSettings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limits
}

// Enabled reports whether calls are being throttled.
func (r *RateLimiter) Enabled() bool {
	return r.limiter.Limit() != rate.Inf
}

// Wait blocks until a call may proceed or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Allow reports whether a call may proceed immediately.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}

func bucket(cfg domain.MCPSettings) (rate.Limit, int) {
	if cfg.RateLimit <= 0 {
		return rate.Inf, 0
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return rate.Limit(cfg.RateLimit), burst
}
