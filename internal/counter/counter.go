// Package counter keeps the cart and wishlist badges in line with the
// storefront. Badges are never adjusted locally; every refresh reads the
// authoritative count and writes it verbatim.
package counter

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/donaldgifford/storefront-sync/internal/api/client"
	"github.com/donaldgifford/storefront-sync/internal/dom"
	"github.com/donaldgifford/storefront-sync/internal/metrics"
	"github.com/donaldgifford/storefront-sync/pkg/logger"
)

// Badge names used in logs and metrics.
const (
	BadgeCart     = "cart"
	BadgeWishlist = "wishlist"
)

const (
	defaultCartSelector     = "#cart-qty"
	defaultWishlistSelector = "#favorite-count"
)

// Source reads authoritative counts.
type Source interface {
	CartCount(ctx context.Context) (int, error)
	WishlistCount(ctx context.Context) (int, error)
}

// Runner runs work off the page loop and applies its continuation on it.
type Runner interface {
	Go(work func() func())
}

// Sync refreshes badge elements from a Source.
type Sync struct {
	doc          *dom.Document
	runner       Runner
	src          Source
	cartSel      string
	wishlistSel  string
	maxRetries   uint64
	retryInitial time.Duration
	log          *slog.Logger
}

// Option configures a Sync.
type Option func(*Sync)

// WithSelectors overrides the badge selectors. Empty values keep the default.
func WithSelectors(cart, wishlist string) Option {
	return func(s *Sync) {
		if cart != "" {
			s.cartSel = cart
		}
		if wishlist != "" {
			s.wishlistSel = wishlist
		}
	}
}

// WithRetry sets how often a read is retried after a transport failure and
// the first retry delay. Zero retries disables retrying.
func WithRetry(maxRetries uint64, initial time.Duration) Option {
	return func(s *Sync) {
		s.maxRetries = maxRetries
		s.retryInitial = initial
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sync) {
		s.log = logger.Component(l, "counter")
	}
}

// New creates a Sync writing into doc. Badge writes happen through runner.
func New(doc *dom.Document, runner Runner, src Source, opts ...Option) *Sync {
	s := &Sync{
		doc:          doc,
		runner:       runner,
		src:          src,
		cartSel:      defaultCartSelector,
		wishlistSel:  defaultWishlistSelector,
		maxRetries:   3,
		retryInitial: 200 * time.Millisecond,
		log:          logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RefreshCartCount reads the cart quantity and writes it into the cart badge.
// A failed read leaves the badge as it was.
func (s *Sync) RefreshCartCount(ctx context.Context) {
	s.refresh(ctx, BadgeCart, s.cartSel, s.src.CartCount)
}

// RefreshWishlistCount reads the wishlist size and writes it into the
// wishlist badge.
func (s *Sync) RefreshWishlistCount(ctx context.Context) {
	s.refresh(ctx, BadgeWishlist, s.wishlistSel, s.src.WishlistCount)
}

// RefreshAll refreshes both badges. The two reads are independent.
func (s *Sync) RefreshAll(ctx context.Context) {
	s.RefreshCartCount(ctx)
	s.RefreshWishlistCount(ctx)
}

func (s *Sync) refresh(
	ctx context.Context,
	badge, selector string,
	read func(context.Context) (int, error),
) {
	s.runner.Go(func() func() {
		n, err := s.readWithRetry(ctx, read)
		if err != nil {
			metrics.BadgeRefreshTotal.WithLabelValues(badge, outcomeFor(err)).Inc()
			s.log.Warn("badge refresh failed", "badge", badge, "error", err)
			return nil
		}
		return func() {
			if !s.doc.SetText(selector, strconv.Itoa(n)) {
				s.log.Debug("badge not on page", "badge", badge, "selector", selector)
				return
			}
			metrics.BadgeRefreshTotal.WithLabelValues(badge, metrics.OutcomeOK).Inc()
		}
	})
}

func (s *Sync) readWithRetry(ctx context.Context, read func(context.Context) (int, error)) (int, error) {
	var n int
	op := func() error {
		v, err := read(ctx)
		if err != nil {
			if errors.Is(err, client.ErrTransport) && ctx.Err() == nil {
				return err
			}
			return backoff.Permanent(err)
		}
		n = v
		return nil
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = s.retryInitial
	eb.MaxElapsedTime = 0
	b := backoff.WithContext(backoff.WithMaxRetries(eb, s.maxRetries), ctx)

	if err := backoff.Retry(op, b); err != nil {
		return 0, err
	}
	return n, nil
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, client.ErrMalformedResponse):
		return metrics.OutcomeMalformed
	case errors.Is(err, client.ErrTransport):
		return metrics.OutcomeTransportFailure
	default:
		return metrics.OutcomeAppFailure
	}
}
