package client

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// Pacer spaces outgoing storefront calls with a token bucket so rapid
// gestures cannot flood the server.
type Pacer struct {
	limiter *rate.Limiter
	calls   atomic.Int64
}

// NewPacer creates a pacer allowing perSecond calls with the given burst.
func NewPacer(perSecond float64, burst int) *Pacer {
	if burst < 1 {
		burst = 1
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wait blocks until a call is allowed or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	p.calls.Add(1)
	return nil
}

// Calls returns the number of calls let through so far.
func (p *Pacer) Calls() int64 {
	return p.calls.Load()
}
