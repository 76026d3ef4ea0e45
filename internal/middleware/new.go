package middleware

import (
	"context"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/log"
)

// SessionResolver turns a bearer token into the caller's scope.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (model.Scope, error)
}

type Middleware struct {
	l            log.Logger
	sessions     SessionResolver
	loginLimiter *rateLimiter
}

// Config is the dependency bag passed to New().
type Config struct {
	Sessions            SessionResolver
	LoginRatePerMinute  int
	RateLimiterCapacity int
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:            l,
		sessions:     cfg.Sessions,
		loginLimiter: newRateLimiter(cfg.LoginRatePerMinute, cfg.RateLimiterCapacity),
	}
}
