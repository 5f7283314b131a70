package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/donaldgifford/storefront-sync/internal/api/client"
	"github.com/donaldgifford/storefront-sync/internal/counter"
	"github.com/donaldgifford/storefront-sync/internal/dom"
	"github.com/donaldgifford/storefront-sync/internal/loop"
	"github.com/donaldgifford/storefront-sync/internal/notify"
	"github.com/donaldgifford/storefront-sync/pkg/logger"
)

// ErrNoTarget is returned by gestures whose selector matches nothing.
var ErrNoTarget = errors.New("no element matches")

// SessionConfig assembles the pieces of a page session.
type SessionConfig struct {
	Controller    []Option
	Toaster       []notify.ToasterOption
	Counter       []counter.Option
	CartBadge     string
	WishlistBadge string
	Logger        *slog.Logger
}

// Session is one loaded page with its loop, toaster, badges and controller
// wired together. Its methods are safe to call from any goroutine; each
// gesture runs on the page loop and returns once the page has settled.
type Session struct {
	loop     *loop.Loop
	doc      *dom.Document
	history  *dom.History
	toaster  *notify.Toaster
	recorder *notify.Recorder
	badges   *counter.Sync
	ctrl     *Controller
	cartSel  string
	wishSel  string
	cancel   context.CancelFunc
	done     chan struct{}
	log      *slog.Logger
}

// Open loads path from the storefront and starts a session on it. The
// session lives until ctx is done or Close is called.
func Open(ctx context.Context, c *client.Client, path string, cfg SessionConfig) (*Session, error) {
	page, err := c.LoadPage(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	loc, err := c.Resolve(path)
	if err != nil {
		return nil, err
	}
	return Attach(ctx, page, loc, c, c, cfg)
}

// Attach starts a session on already fetched page markup located at loc.
func Attach(
	ctx context.Context,
	page string,
	loc *url.URL,
	remote Remote,
	counts counter.Source,
	cfg SessionConfig,
) (*Session, error) {
	doc, err := dom.ParseString(page)
	if err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}
	cartSel := cfg.CartBadge
	if cartSel == "" {
		cartSel = "#cart-qty"
	}
	wishSel := cfg.WishlistBadge
	if wishSel == "" {
		wishSel = "#favorite-count"
	}

	runCtx, cancel := context.WithCancel(ctx)
	lp := loop.New(loop.WithLogger(log))

	recorder := &notify.Recorder{}
	toaster := notify.NewToaster(doc, lp.Detached(),
		append([]notify.ToasterOption{notify.WithLogger(log)}, cfg.Toaster...)...)
	notifier := notify.Multi{toaster, recorder, notify.NewLogNotifier(log)}

	badges := counter.New(doc, lp, counts,
		append([]counter.Option{
			counter.WithLogger(log),
			counter.WithSelectors(cartSel, wishSel),
		}, cfg.Counter...)...)

	history := dom.NewHistory(loc)
	ctrl := New(doc, lp, remote, badges, notifier, history,
		append([]Option{WithLogger(log)}, cfg.Controller...)...)

	s := &Session{
		loop:     lp,
		doc:      doc,
		history:  history,
		toaster:  toaster,
		recorder: recorder,
		badges:   badges,
		ctrl:     ctrl,
		cartSel:  cartSel,
		wishSel:  wishSel,
		cancel:   cancel,
		done:     make(chan struct{}),
		log:      logger.Component(log, "session"),
	}
	go func() {
		defer close(s.done)
		_ = lp.Run(runCtx)
	}()

	if err := s.do(ctx, func() error {
		ctrl.Init(runCtx)
		return nil
	}); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Close stops the session loop and waits for it to exit.
func (s *Session) Close() {
	s.cancel()
	<-s.done
}

// Settle blocks until no request, queued task or pending debounce remains.
func (s *Session) Settle(ctx context.Context) error {
	return s.loop.Wait(ctx)
}

// do runs fn on the loop, then waits for the page to settle.
func (s *Session) do(ctx context.Context, fn func() error) error {
	var err error
	if derr := s.loop.Do(ctx, func() { err = fn() }); derr != nil {
		return derr
	}
	if err != nil {
		return err
	}
	return s.Settle(ctx)
}

func (s *Session) dispatch(typ, selector string) error {
	n := s.doc.First(selector)
	if n == nil {
		return fmt.Errorf("%w %q", ErrNoTarget, selector)
	}
	s.doc.Dispatch(dom.NewEvent(typ, n))
	return nil
}

// Click dispatches a click on the first element matching selector.
func (s *Session) Click(ctx context.Context, selector string) error {
	return s.do(ctx, func() error {
		return s.dispatch(dom.EventClick, selector)
	})
}

// Submit dispatches a submit on the first element matching selector.
func (s *Session) Submit(ctx context.Context, selector string) error {
	return s.do(ctx, func() error {
		return s.dispatch(dom.EventSubmit, selector)
	})
}

// SetField types value into the field called name and fires input and
// change events on it.
func (s *Session) SetField(ctx context.Context, name, value string) error {
	return s.do(ctx, func() error {
		n := SetFieldValue(s.doc.Root(), name, value)
		if n == nil {
			return fmt.Errorf("%w field %q", ErrNoTarget, name)
		}
		s.doc.Dispatch(dom.NewEvent(dom.EventInput, n))
		s.doc.Dispatch(dom.NewEvent(dom.EventChange, n))
		return nil
	})
}

// SetChecked checks or unchecks the box called name with the given value
// and fires a change event on it.
func (s *Session) SetChecked(ctx context.Context, name, value string, on bool) error {
	return s.do(ctx, func() error {
		n := SetFieldChecked(s.doc.Root(), name, value, on)
		if n == nil {
			return fmt.Errorf("%w checkbox %s=%s", ErrNoTarget, name, value)
		}
		s.doc.Dispatch(dom.NewEvent(dom.EventChange, n))
		return nil
	})
}

// Reset clears the filters as the reset control would.
func (s *Session) Reset(ctx context.Context) error {
	return s.do(ctx, func() error {
		s.ctrl.Reset()
		return nil
	})
}

// GoToPage requests a listing page keeping the current filters.
func (s *Session) GoToPage(ctx context.Context, page int) error {
	return s.do(ctx, func() error {
		s.ctrl.GoToPage(page)
		return nil
	})
}

// Refresh re-reads both badges.
func (s *Session) Refresh(ctx context.Context) error {
	return s.do(ctx, func() error {
		s.badges.RefreshAll(ctx)
		return nil
	})
}

// RefreshAll lets a Session be driven by counter.Scheduler. Ticks do not
// wait for the page to settle.
func (s *Session) RefreshAll(ctx context.Context) {
	s.loop.Post(func() { s.badges.RefreshAll(ctx) })
}

// Messages returns and forgets the notifications raised since the last call.
func (s *Session) Messages() []notify.Message {
	return s.recorder.Drain()
}

// HTML renders the current document.
func (s *Session) HTML(ctx context.Context) (string, error) {
	var out string
	err := s.loop.Do(ctx, func() {
		var rerr error
		out, rerr = s.doc.HTML()
		if rerr != nil {
			s.log.Warn("rendering document", "error", rerr)
		}
	})
	return out, err
}

// ProductCard is one product as rendered in the listing.
type ProductCard struct {
	ID         string
	Name       string
	Price      string
	InWishlist bool
}

// PageLink is one pagination link.
type PageLink struct {
	Label   string
	Page    int
	Current bool
}

// CartRow is one line of the cart page.
type CartRow struct {
	ItemID string
	Name   string
	Total  string
}

// Snapshot is what the page currently shows.
type Snapshot struct {
	URL           string
	Query         string
	CartCount     string
	WishlistCount string
	Products      []ProductCard
	Pages         []PageLink
	CartRows      []CartRow
	CartTotal     string
	CartQuantity  string
	EmptyState    bool
	Toasts        []string
	CapturedAt    time.Time
}

// Snapshot reads the current page state.
func (s *Session) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snap *Snapshot
	err := s.loop.Do(ctx, func() {
		snap = s.snapshot()
	})
	return snap, err
}

func (s *Session) snapshot() *Snapshot {
	sel := s.ctrl.sel
	loc := s.history.Location()

	snap := &Snapshot{
		URL:        loc.String(),
		Query:      s.ctrl.Query().Encode(),
		CapturedAt: time.Now(),
	}
	snap.CartCount, _ = s.doc.Text(s.cartSel)
	snap.WishlistCount, _ = s.doc.Text(s.wishSel)
	snap.CartTotal, _ = s.doc.Text(sel.CartTotalPrice)
	snap.CartQuantity, _ = s.doc.Text(sel.CartTotalQty)
	snap.EmptyState = s.doc.Exists(".empty-state")

	s.doc.Find(sel.WishlistProduct).Each(func(_ int, card *goquery.Selection) {
		id, ok := card.Find("[data-product-id]").First().Attr("data-product-id")
		if !ok {
			id, _ = card.Attr("data-product-id")
		}
		snap.Products = append(snap.Products, ProductCard{
			ID:         id,
			Name:       strings.TrimSpace(card.Find(".product-name").First().Text()),
			Price:      strings.TrimSpace(card.Find(".product-price").First().Text()),
			InWishlist: card.Find(sel.WishlistToggle + " i").HasClass(sel.WishlistIconOn),
		})
	})

	s.doc.Find(sel.PaginationLink).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		snap.Pages = append(snap.Pages, PageLink{
			Label:   strings.TrimSpace(a.Text()),
			Page:    PageFromHref(href),
			Current: a.HasClass("active") || a.ParentFiltered(".active").Length() > 0,
		})
	})

	s.doc.Find(sel.CartRow).Each(func(_ int, row *goquery.Selection) {
		id, _ := row.Find(sel.RemoveFromCart).First().Attr("data-cart-item-id")
		snap.CartRows = append(snap.CartRows, CartRow{
			ItemID: id,
			Name:   strings.TrimSpace(row.Find(".product-name").First().Text()),
			Total:  strings.TrimSpace(row.Find(".line-total").First().Text()),
		})
	})

	for _, id := range s.toaster.Active() {
		if n := s.doc.First(`[data-toast-id="` + id + `"]`); n != nil {
			snap.Toasts = append(snap.Toasts, strings.TrimSpace(dom.Select(n).Text()))
		}
	}
	return snap
}

// CurrentPage returns the page number of the current address.
func (s *Snapshot) CurrentPage() int {
	return PageFromHref(s.URL)
}
