// Package catalog is the storefront's interactive catalog controller. One
// Controller per page owns delegated listeners on the document root and
// drives filtering, pagination, cart, wishlist and newsletter widgets against
// the remote store, always rendering the server's answer rather than a local
// guess.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/net/html"

	"github.com/donaldgifford/storefront-sync/internal/api/client"
	"github.com/donaldgifford/storefront-sync/internal/dom"
	"github.com/donaldgifford/storefront-sync/internal/metrics"
	"github.com/donaldgifford/storefront-sync/internal/notify"
	"github.com/donaldgifford/storefront-sync/pkg/logger"
	domain "github.com/donaldgifford/storefront-sync/pkg/types"
)

const (
	// handlerKey identifies the controller's bindings on the document root.
	handlerKey = "catalog.controller"

	pendingAttr = "data-pending"

	defaultDebounce     = 300 * time.Millisecond
	defaultCurrency     = "BYN"
	defaultWishlistPath = "/favorite/"
)

// Remote is the subset of the storefront client the controller calls.
type Remote interface {
	AddToCart(ctx context.Context, productID string, quantity int) (*domain.CartAddResponse, error)
	RemoveFromCart(ctx context.Context, cartItemID string) (*domain.CartRemoveResponse, error)
	ToggleWishlist(ctx context.Context, productID string) (*domain.WishlistToggleResponse, error)
	Subscribe(ctx context.Context, email string) (*domain.SubscribeResponse, error)
	FilterCatalog(ctx context.Context, rawQuery string) (*domain.CatalogResponse, error)
}

// Badges refreshes the header counters from server truth.
type Badges interface {
	RefreshCartCount(ctx context.Context)
	RefreshWishlistCount(ctx context.Context)
}

// Runner is the page loop: Go runs work off-loop and applies its
// continuation on-loop, AfterFunc schedules a task on-loop.
type Runner interface {
	Go(work func() func())
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// Controller binds the page's interactive widgets. All methods except New
// must run on the page loop.
type Controller struct {
	doc      *dom.Document
	runner   Runner
	remote   Remote
	badges   Badges
	notifier notify.Notifier
	history  *dom.History
	sel      Selectors
	msgs     Messages
	debounce time.Duration
	currency string
	wishPath string
	log      *slog.Logger

	ctx      context.Context
	handlers map[string]dom.Handler

	seq          uint64
	cancelFilter context.CancelFunc
	stopDebounce func() bool
	debounceGen  uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithSelectors overrides widget selectors. Empty fields keep the default.
func WithSelectors(s Selectors) Option {
	return func(c *Controller) {
		c.sel = s.WithDefaults()
	}
}

// WithMessages overrides toast texts. Empty fields keep the default.
func WithMessages(m Messages) Option {
	return func(c *Controller) {
		c.msgs = m.WithDefaults()
	}
}

// WithDebounce sets how long filter input must be quiet before a request is
// issued. Zero sends every change immediately.
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.debounce = d
		}
	}
}

// WithCurrency sets the suffix rendered after cart totals.
func WithCurrency(code string) Option {
	return func(c *Controller) {
		c.currency = code
	}
}

// WithWishlistPath sets the path of the wishlist listing page.
func WithWishlistPath(p string) Option {
	return func(c *Controller) {
		if p != "" {
			c.wishPath = p
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.log = logger.Component(l, "catalog")
	}
}

// New creates a Controller for doc. Nothing is bound until Init.
func New(
	doc *dom.Document,
	runner Runner,
	remote Remote,
	badges Badges,
	notifier notify.Notifier,
	history *dom.History,
	opts ...Option,
) *Controller {
	c := &Controller{
		doc:      doc,
		runner:   runner,
		remote:   remote,
		badges:   badges,
		notifier: notifier,
		history:  history,
		sel:      DefaultSelectors(),
		msgs:     DefaultMessages(),
		debounce: defaultDebounce,
		currency: defaultCurrency,
		wishPath: defaultWishlistPath,
		log:      logger.Discard(),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.handlers = map[string]dom.Handler{
		dom.EventClick:  c.onClick,
		dom.EventSubmit: c.onSubmit,
		dom.EventInput:  c.onFieldEdit,
		dom.EventChange: c.onFieldEdit,
	}
	return c
}

// Init binds the delegated listeners, restores the filter form from the
// current address and refreshes both badges. Calling it again rebinds in
// place; it never adds listeners. ctx bounds every request the controller
// issues afterwards.
func (c *Controller) Init(ctx context.Context) {
	c.ctx = ctx
	c.bind()

	if q := ParseQuery(c.history.Location().RawQuery); !q.IsZero() {
		HydrateForm(c.doc.First(c.sel.FilterForm), q)
	}

	c.badges.RefreshCartCount(ctx)
	c.badges.RefreshWishlistCount(ctx)
}

// bind registers one listener per gesture type on the document root.
func (c *Controller) bind() {
	root := c.doc.Root()
	for typ, fn := range c.handlers {
		c.doc.On(root, typ, handlerKey, fn)
	}
}

// Query returns the canonical query for the current form state.
func (c *Controller) Query() FilterQuery {
	return CollectForm(c.doc.First(c.sel.FilterForm))
}

func (c *Controller) onClick(ev *dom.Event) {
	if btn := ev.Closest(c.sel.AddToCart); btn != nil {
		ev.PreventDefault()
		c.addToCart(btn)
		return
	}
	if btn := ev.Closest(c.sel.WishlistToggle); btn != nil {
		ev.PreventDefault()
		c.toggleWishlist(btn)
		return
	}
	if btn := ev.Closest(c.sel.RemoveFromCart); btn != nil {
		ev.PreventDefault()
		c.removeFromCart(btn)
		return
	}
	if ev.Closest(c.sel.ResetFilters) != nil {
		ev.PreventDefault()
		c.Reset()
		return
	}
	if link := ev.Closest(c.sel.PaginationLink); link != nil {
		ev.PreventDefault()
		href, _ := dom.Attr(link, "href")
		c.GoToPage(PageFromHref(href))
	}
}

func (c *Controller) onSubmit(ev *dom.Event) {
	if form := ev.Closest(c.sel.NewsletterForm); form != nil {
		ev.PreventDefault()
		c.subscribe(form)
		return
	}
	if ev.Closest(c.sel.FilterForm) != nil {
		ev.PreventDefault()
		c.cancelDebounce()
		c.requestFilter(c.Query())
	}
}

func (c *Controller) onFieldEdit(ev *dom.Event) {
	if ev.Closest(c.sel.FilterForm) == nil {
		return
	}
	c.scheduleFilter()
}

// scheduleFilter restarts the debounce window. The form is read when the
// window closes, so the request carries the latest values.
func (c *Controller) scheduleFilter() {
	c.cancelDebounce()
	if c.debounce == 0 {
		c.requestFilter(c.Query())
		return
	}
	gen := c.debounceGen
	c.stopDebounce = c.runner.AfterFunc(c.debounce, func() {
		// A timer that fired after being cancelled or re-armed is stale.
		if gen != c.debounceGen {
			return
		}
		c.stopDebounce = nil
		c.requestFilter(c.Query())
	})
}

// cancelDebounce stops the pending window and invalidates any timer task
// already queued on the loop.
func (c *Controller) cancelDebounce() {
	c.debounceGen++
	if c.stopDebounce != nil {
		c.stopDebounce()
		c.stopDebounce = nil
	}
}

// Reset clears the filter form and requests the unfiltered first page.
func (c *Controller) Reset() {
	c.cancelDebounce()
	ClearForm(c.doc.First(c.sel.FilterForm))
	c.requestFilter(FilterQuery{})
}

// GoToPage requests page while keeping the current filters.
func (c *Controller) GoToPage(page int) {
	c.cancelDebounce()
	c.requestFilter(c.Query().WithPage(page))
}

// requestFilter issues a catalog request for q. Only the latest issued
// request may touch the page; earlier ones are cancelled and their
// responses dropped.
func (c *Controller) requestFilter(q FilterQuery) {
	c.seq++
	seq := c.seq
	if c.cancelFilter != nil {
		c.cancelFilter()
	}
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelFilter = cancel

	raw := q.Encode()
	metrics.FilterRequestsTotal.Inc()
	c.log.Debug("filter request", "seq", seq, "query", raw)

	c.runner.Go(func() func() {
		resp, err := c.remote.FilterCatalog(ctx, raw)
		return func() {
			if seq != c.seq {
				metrics.FilterResponsesDiscardedTotal.Inc()
				c.log.Debug("discarding superseded filter response", "seq", seq, "latest", c.seq)
				return
			}
			cancel()
			c.cancelFilter = nil

			if err != nil {
				metrics.FilterFailuresTotal.Inc()
				c.log.Error("filtering products", "query", raw, "error", err)
				c.notifier.Notify(c.msgs.FilterFailed, notify.SeverityDanger)
				return
			}
			c.applyCatalog(resp, raw)
		}
	})
}

func (c *Controller) applyCatalog(resp *domain.CatalogResponse, raw string) {
	if !c.doc.SetInnerHTML(c.sel.ProductList, resp.ProductsHTML) {
		c.log.Debug("product list not on page", "selector", c.sel.ProductList)
	}
	if !c.doc.SetInnerHTML(c.sel.Pagination, resp.PaginationHTML) {
		c.log.Debug("pagination not on page", "selector", c.sel.Pagination)
	}
	c.bind()

	c.badges.RefreshCartCount(c.ctx)
	c.badges.RefreshWishlistCount(c.ctx)

	ref := c.history.Location().Path
	if raw != "" {
		ref += "?" + raw
	}
	if err := c.history.PushState(ref); err != nil {
		c.log.Warn("updating address", "ref", ref, "error", err)
	}
}

// claim marks btn busy. It reports false when a request for btn is already
// in flight.
func claim(btn *html.Node) bool {
	if dom.HasAttr(btn, pendingAttr) {
		return false
	}
	dom.SetAttr(btn, pendingAttr, "")
	return true
}

func release(btn *html.Node) {
	dom.RemoveAttr(btn, pendingAttr)
}

func (c *Controller) addToCart(btn *html.Node) {
	productID, _ := dom.Attr(btn, "data-product-id")
	if productID == "" || !claim(btn) {
		return
	}

	c.runner.Go(func() func() {
		resp, err := c.remote.AddToCart(c.ctx, productID, 1)
		return func() {
			release(btn)
			if err != nil {
				c.transportFailure("adding to cart", err, "product_id", productID)
				return
			}
			if !resp.Success {
				c.appFailure(resp.Error, c.msgs.CartAddFailed)
				return
			}
			c.notifier.Notify(c.msgs.CartAdded, notify.SeveritySuccess)
			c.badges.RefreshCartCount(c.ctx)
		}
	})
}

func (c *Controller) removeFromCart(btn *html.Node) {
	itemID, _ := dom.Attr(btn, "data-cart-item-id")
	if itemID == "" || !claim(btn) {
		return
	}
	row := dom.Select(btn).Closest(c.sel.CartRow)

	c.runner.Go(func() func() {
		resp, err := c.remote.RemoveFromCart(c.ctx, itemID)
		return func() {
			release(btn)
			if err != nil {
				c.transportFailure("removing from cart", err, "cart_item_id", itemID)
				return
			}
			if !resp.Success {
				c.appFailure(resp.Error, c.msgs.CartRemoveFailed)
				return
			}

			if row.Length() > 0 {
				c.doc.Remove(row.Nodes[0])
			}
			c.doc.SetText(c.sel.CartTotalPrice, fmt.Sprintf("%s %s", resp.TotalPrice.StringFixed(2), c.currency))
			c.doc.SetText(c.sel.CartTotalQty, fmt.Sprintf("%d", resp.TotalQuantity))
			c.badges.RefreshCartCount(c.ctx)
			c.notifier.Notify(c.msgs.CartRemoved, notify.SeveritySuccess)

			if c.doc.Count(c.sel.CartRow) == 0 {
				c.doc.SetInnerHTML(c.sel.CartContent, c.msgs.EmptyCart)
			}
		}
	})
}

func (c *Controller) toggleWishlist(btn *html.Node) {
	productID, _ := dom.Attr(btn, "data-product-id")
	if productID == "" || !claim(btn) {
		return
	}

	c.runner.Go(func() func() {
		resp, err := c.remote.ToggleWishlist(c.ctx, productID)
		return func() {
			release(btn)
			if err != nil {
				c.transportFailure("toggling wishlist", err, "product_id", productID)
				return
			}
			defer c.badges.RefreshWishlistCount(c.ctx)

			if !resp.Status.Valid() {
				c.appFailure(resp.Error, c.msgs.WishlistFailed)
				return
			}

			c.setWishlistIcon(btn, resp.Status)
			if resp.Status == domain.WishlistAdded {
				c.notifier.Notify(c.msgs.WishlistAdded, notify.SeveritySuccess)
				return
			}
			c.notifier.Notify(c.msgs.WishlistRemoved, notify.SeveritySuccess)
			if c.history.Location().Path == c.wishPath {
				c.dropWishlistCard(productID)
			}
		}
	})
}

// setWishlistIcon makes the icon show status whatever it showed before.
func (c *Controller) setWishlistIcon(btn *html.Node, status domain.WishlistStatus) {
	icon := dom.Select(btn).Find("i").First()
	if icon.Length() == 0 {
		return
	}
	if status == domain.WishlistAdded {
		icon.RemoveClass(c.sel.WishlistIconOff).AddClass(c.sel.WishlistIconOn)
		return
	}
	icon.RemoveClass(c.sel.WishlistIconOn).AddClass(c.sel.WishlistIconOff)
}

func (c *Controller) dropWishlistCard(productID string) {
	card := c.doc.ByID(c.sel.WishlistCard + productID)
	if card == nil {
		return
	}
	c.doc.Remove(card)
	if c.doc.Count(c.sel.WishlistProduct) == 0 {
		c.doc.SetInnerHTML(c.sel.WishlistContent, c.msgs.EmptyWishlist)
	}
}

func (c *Controller) subscribe(form *html.Node) {
	input := dom.Select(form).Find(c.sel.NewsletterEmail).First()
	if input.Length() == 0 {
		return
	}
	field := input.Nodes[0]
	email, _ := dom.Attr(field, "value")
	if !claim(form) {
		return
	}

	c.runner.Go(func() func() {
		resp, err := c.remote.Subscribe(c.ctx, email)
		return func() {
			release(form)
			if err != nil {
				c.transportFailure("subscribing", err)
				return
			}
			if !resp.Success {
				c.appFailure(resp.Error, c.msgs.SubscribeFailed)
				return
			}
			dom.SetAttr(field, "value", "")
			c.notifier.Notify(c.msgs.Subscribed, notify.SeveritySuccess)
		}
	})
}

func (c *Controller) transportFailure(op string, err error, attrs ...any) {
	args := append([]any{"error", err}, attrs...)
	if errors.Is(err, context.Canceled) {
		c.log.Debug(op+" cancelled", args...)
		return
	}
	c.log.Error(op, args...)
	c.notifier.Notify(c.msgs.Unreachable, notify.SeverityDanger)
}

func (c *Controller) appFailure(serverMsg, fallback string) {
	text := fallback
	if serverMsg != "" {
		text = serverMsg
	}
	c.notifier.Notify(text, notify.SeverityDanger)
}

var _ Remote = (*client.Client)(nil)
