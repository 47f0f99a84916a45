// Package ratelimit adapts github.com/joeycumines/go-catrate's sliding
// window limiter into a simple per-node pacing model: a hops-per-second
// rate, where 0 means "unconstrained" and must never divide by zero.
package ratelimit

import (
	"context"
	"time"

	"github.com/joeycumines/go-catrate"
)

// Pacer throttles a single node task (ingress or egress) to at most rate
// hops per second. A Pacer built from rate <= 0 never throttles.
type Pacer struct {
	limiter  *catrate.Limiter
	category struct{} // single shared category: one Pacer per task, no partitioning needed
}

// NewPacer builds a Pacer enforcing the given hops-per-second rate. A rate
// of 0 (or negative, which is a configuration error elsewhere validated)
// disables pacing entirely rather than risk an integer-division-by-zero,
// guarding against that historical bug.
func NewPacer(rate int) *Pacer {
	if rate <= 0 {
		return &Pacer{}
	}
	return &Pacer{
		limiter: catrate.NewLimiter(map[time.Duration]int{
			time.Second: rate,
		}),
	}
}

// Wait blocks until the next hop is allowed under the configured rate, or
// until ctx is canceled. A nil-limiter Pacer (rate == 0) always returns
// immediately.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.limiter == nil {
		return nil
	}

	for {
		next, ok := p.limiter.Allow(p.category)
		if ok {
			return nil
		}

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
