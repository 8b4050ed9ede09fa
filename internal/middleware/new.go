package middleware

import (
	pkgLog "ai-daily-planner/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l       pkgLog.Logger
	limiter *ipRateLimiter
}

// New creates the middleware set. generateRatePerMin throttles the
// schedule-generation endpoint per client IP.
func New(l pkgLog.Logger, generateRatePerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newIPRateLimiter(generateRatePerMin),
	}
}
