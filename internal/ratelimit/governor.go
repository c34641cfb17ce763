package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	svcErr "github.com/oggyb/matchcore/internal/errors"
	"github.com/oggyb/matchcore/internal/metrics"
)

// Counter is the external window store. cache.RedisCache implements it.
type Counter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
	ReserveWindow(ctx context.Context, key string, window time.Duration, limit int64) (int64, time.Duration, bool, error)
	ReleaseWindow(ctx context.Context, key string) (int64, error)
}

// Governor enforces Policies. It holds no mutable state of its own, so any
// number of instances can share one counter store.
type Governor struct {
	counter  Counter
	policies Policies
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewGovernor(counter Counter, policies Policies, logger *slog.Logger, m *metrics.Metrics) (*Governor, error) {
	if err := policies.Validate(); err != nil {
		return nil, err
	}
	return &Governor{counter: counter, policies: policies, logger: logger, metrics: m}, nil
}

// Key is the counter key for (class, scope). Exposed for tests and tooling.
func Key(class Class, scope string) string {
	return fmt.Sprintf("rl:%s:%s", class, scope)
}

// Check admits or rejects one event of class for scope.
//
// Behavior:
//   - Unknown classes are a programming error and return an error.
//   - For ordinary classes the window is incremented; the event is rejected once
//     the count exceeds Max.
//   - For CountsFailures classes a slot is reserved atomically and the event
//     is rejected once Max slots are taken. Callers hand the slot back with
//     Release when the attempt succeeds, so only failures stay counted.
//   - Counter store failures surface as retryable infrastructure errors, never
//     as a silent allow.
func (g *Governor) Check(ctx context.Context, class Class, scope string) error {
	pol, ok := g.policies[class]
	if !ok {
		return fmt.Errorf("unknown rate class %q", class)
	}
	key := Key(class, scope)

	var (
		count int64
		ttl   time.Duration
		err   error
	)
	if pol.CountsFailures {
		var admitted bool
		count, ttl, admitted, err = g.counter.ReserveWindow(ctx, key, pol.Window, pol.Max)
		if err == nil && admitted {
			return nil
		}
	} else {
		count, ttl, err = g.counter.IncrWindow(ctx, key, pol.Window)
		if err == nil && count <= pol.Max {
			return nil
		}
	}
	if err != nil {
		return svcErr.Infra("rate window "+string(class), err)
	}

	if ttl <= 0 {
		ttl = pol.Window
	}
	g.metrics.RateLimited(string(class))
	g.logger.Debug("rate limit exceeded", "class", class, "scope", scope, "count", count, "retry_after", ttl)
	return &svcErr.RateExceededError{Class: string(class), RetryAfter: ttl}
}

// Release hands back the slot Check reserved for a CountsFailures class once
// the attempt turned out not to be a failure. Other classes are untouched.
func (g *Governor) Release(ctx context.Context, class Class, scope string) error {
	pol, ok := g.policies[class]
	if !ok {
		return fmt.Errorf("unknown rate class %q", class)
	}
	if !pol.CountsFailures {
		return nil
	}
	if _, err := g.counter.ReleaseWindow(ctx, Key(class, scope)); err != nil {
		return svcErr.Infra("rate release "+string(class), err)
	}
	return nil
}

// Policy returns the configured row for class.
func (g *Governor) Policy(class Class) (Policy, bool) {
	p, ok := g.policies[class]
	return p, ok
}
