package config

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/storefront-sync/internal/api/client"
	"github.com/donaldgifford/storefront-sync/internal/catalog"
	"github.com/donaldgifford/storefront-sync/internal/counter"
	"github.com/donaldgifford/storefront-sync/internal/notify"
)

// ClientOptions translates the storefront and client sections into
// client.New options. tp may be nil.
func (c *Config) ClientOptions(log *slog.Logger, tp trace.TracerProvider) []client.Option {
	opts := []client.Option{
		client.WithLogger(log),
		client.WithTimeout(c.Client.Timeout),
		client.WithEndpoints(c.Storefront.Endpoints),
		client.WithCSRF(c.Storefront.CSRFCookie, c.Storefront.CSRFHeader),
		client.WithRateLimit(c.Client.RateLimit.PerSecond, c.Client.RateLimit.Burst),
		client.WithBreaker(client.BreakerConfig{
			Name:         "storefront",
			MaxRequests:  c.Client.Breaker.MaxRequests,
			Interval:     c.Client.Breaker.Interval,
			Timeout:      c.Client.Breaker.Timeout,
			FailureRatio: c.Client.Breaker.FailureRatio,
			MinRequests:  c.Client.Breaker.MinRequests,
		}),
	}
	if c.Storefront.Cookies != "" {
		opts = append(opts, client.WithCookies(c.Storefront.Cookies))
	}
	if tp != nil {
		opts = append(opts, client.WithTracerProvider(tp))
	}
	return opts
}

// Session translates the toast, catalog and counter sections into a page
// session configuration.
func (c *Config) Session(log *slog.Logger) catalog.SessionConfig {
	return catalog.SessionConfig{
		Controller: []catalog.Option{
			catalog.WithSelectors(c.Catalog.Selectors),
			catalog.WithMessages(c.Catalog.Messages),
			catalog.WithDebounce(c.Catalog.Debounce),
			catalog.WithCurrency(c.Catalog.Currency),
			catalog.WithWishlistPath(c.Catalog.WishlistPath),
		},
		Toaster: []notify.ToasterOption{
			notify.WithContainer(c.Toast.Container),
			notify.WithDurations(c.Toast.Visible, c.Toast.Fade),
			notify.WithFadeClass(c.Toast.FadeClass),
		},
		Counter: []counter.Option{
			counter.WithRetry(c.Counter.MaxRetries, c.Counter.RetryDelay),
		},
		CartBadge:     c.Counter.CartBadge,
		WishlistBadge: c.Counter.WishlistBadge,
		Logger:        log,
	}
}
