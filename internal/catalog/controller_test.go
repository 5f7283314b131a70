package catalog_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront-sync/internal/api/client"
	"github.com/donaldgifford/storefront-sync/internal/catalog"
	"github.com/donaldgifford/storefront-sync/internal/catalog/mocks"
	"github.com/donaldgifford/storefront-sync/internal/dom"
	"github.com/donaldgifford/storefront-sync/internal/loop"
	"github.com/donaldgifford/storefront-sync/internal/metrics"
	"github.com/donaldgifford/storefront-sync/internal/notify"
	domain "github.com/donaldgifford/storefront-sync/pkg/types"
)

const listingPage = `<html><body>
<span id="cart-qty">0</span><span id="favorite-count">0</span>
<div id="toast-container"></div>
<form id="filter-form">
  <input type="checkbox" name="category" value="1">
  <input type="checkbox" name="category" value="2">
  <input type="checkbox" name="brand" value="7">
  <input type="number" name="min_price" value="">
  <input type="number" name="max_price" value="">
  <input type="search" name="q" value="">
  <button type="button" id="reset-filters">Reset</button>
</form>
<div id="product-list">
  <div class="product" id="card-1">
    <span class="product-name">Alpha</span>
    <a href="#" class="add-to-cart-btn" data-product-id="1">Add</a>
    <a href="#" class="add-to-wishlist" data-product-id="1"><i class="fa fa-heart-o"></i></a>
  </div>
</div>
<div id="pagination"><a href="?page=1" class="active">1</a><a href="?page=2">2</a></div>
<div class="newsletter"><form><input type="email" name="email" value=""><button>Go</button></form></div>
</body></html>`

const cartPage = `<html><body>
<span id="cart-qty">3</span>
<div id="toast-container"></div>
<div class="content-cart">
  <div class="cart-item-row" id="row-11">
    <span class="product-name">Alpha</span>
    <a href="#" class="remove-from-cart-btn" data-cart-item-id="11">x</a>
  </div>
  <div class="cart-item-row" id="row-12">
    <span class="product-name">Beta</span>
    <a href="#" class="remove-from-cart-btn" data-cart-item-id="12">x</a>
  </div>
  <p>Total: <span id="cart-total-price">29.97 BYN</span> (<span id="cart-total-quantity">3</span>)</p>
</div>
</body></html>`

const wishlistPage = `<html><body>
<span id="favorite-count">2</span>
<div id="toast-container"></div>
<div class="content-cards">
  <div class="product" id="favorite-product-1">
    <a href="#" class="add-to-wishlist" data-product-id="1"><i class="fa fa-heart"></i></a>
  </div>
  <div class="product" id="favorite-product-2">
    <a href="#" class="add-to-wishlist" data-product-id="2"><i class="fa fa-heart"></i></a>
  </div>
</div>
</body></html>`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeBadges struct {
	cart     atomic.Int32
	wishlist atomic.Int32
}

func (f *fakeBadges) RefreshCartCount(context.Context)     { f.cart.Add(1) }
func (f *fakeBadges) RefreshWishlistCount(context.Context) { f.wishlist.Add(1) }

type harness struct {
	t      *testing.T
	doc    *dom.Document
	lp     *loop.Loop
	remote *mocks.MockRemote
	badges *fakeBadges
	rec    *notify.Recorder
	hist   *dom.History
	ctrl   *catalog.Controller
}

func newHarness(t *testing.T, page, path string, opts ...catalog.Option) *harness {
	t.Helper()

	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	loc, err := url.Parse("http://shop.test" + path)
	require.NoError(t, err)

	lp := loop.New()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = lp.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	h := &harness{
		t:      t,
		doc:    doc,
		lp:     lp,
		remote: mocks.NewMockRemote(t),
		badges: &fakeBadges{},
		rec:    &notify.Recorder{},
		hist:   dom.NewHistory(loc),
	}
	opts = append([]catalog.Option{catalog.WithDebounce(0), catalog.WithLogger(quietLogger())}, opts...)
	h.ctrl = catalog.New(doc, lp, h.remote, h.badges, h.rec, h.hist, opts...)
	h.do(func() { h.ctrl.Init(ctx) })
	return h
}

func (h *harness) do(fn func()) {
	h.t.Helper()
	require.NoError(h.t, h.lp.Do(context.Background(), fn))
}

func (h *harness) settle() {
	h.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(h.t, h.lp.Wait(ctx))
}

func (h *harness) dispatch(typ, selector string) {
	h.t.Helper()
	var found bool
	h.do(func() {
		n := h.doc.First(selector)
		if n == nil {
			return
		}
		found = true
		h.doc.Dispatch(dom.NewEvent(typ, n))
	})
	require.True(h.t, found, "no element for %q", selector)
}

func (h *harness) click(selector string) {
	h.t.Helper()
	h.dispatch(dom.EventClick, selector)
}

func (h *harness) check(name, value string, on bool) {
	h.t.Helper()
	h.do(func() {
		n := catalog.SetFieldChecked(h.doc.Root(), name, value, on)
		if n != nil {
			h.doc.Dispatch(dom.NewEvent(dom.EventChange, n))
		}
	})
}

func (h *harness) text(selector string) string {
	h.t.Helper()
	var s string
	h.do(func() { s, _ = h.doc.Text(selector) })
	return s
}

func (h *harness) count(selector string) int {
	h.t.Helper()
	var n int
	h.do(func() { n = h.doc.Count(selector) })
	return n
}

func (h *harness) location() string {
	h.t.Helper()
	var s string
	h.do(func() { s = h.hist.Location().RequestURI() })
	return s
}

func (h *harness) messages() []notify.Message {
	return h.rec.Messages()
}

func (h *harness) hasClass(selector, class string) bool {
	h.t.Helper()
	var ok bool
	h.do(func() { ok = h.doc.Find(selector).HasClass(class) })
	return ok
}

func catalogResponse(ids ...string) *domain.CatalogResponse {
	var products string
	for _, id := range ids {
		products += fmt.Sprintf(`<div class="product" id="card-%[1]s">`+
			`<span class="product-name">P%[1]s</span>`+
			`<a href="#" class="add-to-cart-btn" data-product-id="%[1]s">Add</a>`+
			`<a href="#" class="add-to-wishlist" data-product-id="%[1]s"><i class="fa fa-heart-o"></i></a>`+
			`</div>`, id)
	}
	return &domain.CatalogResponse{
		ProductsHTML:   products,
		PaginationHTML: `<a href="?page=1" class="active">1</a><a href="?page=2">2</a><a href="?page=3">3</a>`,
	}
}

func TestInit_BindsOncePerGestureType(t *testing.T) {
	t.Parallel()

	h := newHarness(t, listingPage, "/products/")
	for range 3 {
		h.do(func() { h.ctrl.Init(context.Background()) })
	}

	h.do(func() {
		for _, typ := range []string{dom.EventClick, dom.EventSubmit, dom.EventInput, dom.EventChange} {
			assert.Equal(t, 1, h.doc.ListenerCount(typ), typ)
		}
	})
	assert.Equal(t, int32(4), h.badges.cart.Load())
	assert.Equal(t, int32(4), h.badges.wishlist.Load())
}

func TestInit_HydratesFormFromAddress(t *testing.T) {
	t.Parallel()

	h := newHarness(t, listingPage, "/products/?category=2&q=desk+lamp&page=3")

	var q catalog.FilterQuery
	h.do(func() { q = h.ctrl.Query() })
	assert.Equal(t, "category=2&q=desk+lamp", q.Encode())
}

func TestFilter_SuccessReplacesRegionsAndSyncsAddress(t *testing.T) {
	t.Parallel()

	h := newHarness(t, listingPage, "/products/")
	h.remote.EXPECT().FilterCatalog(mock.Anything, "category=1").
		Return(catalogResponse("4", "5"), nil).Once()

	h.check("category", "1", true)
	h.settle()

	assert.Equal(t, 2, h.count("#product-list .product"))
	assert.Equal(t, 3, h.count("#pagination a"))
	assert.Equal(t, "/products/?category=1", h.location())
	assert.Equal(t, int32(2), h.badges.cart.Load(), "init plus post-render refresh")
	assert.Equal(t, int32(2), h.badges.wishlist.Load())
}

func TestFilter_LastIssuedRequestWins(t *testing.T) {
	t.Parallel()

	h := newHarness(t, listingPage, "/products/")
	discarded := testutil.ToFloat64(metrics.FilterResponsesDiscardedTotal)

	gate := make(chan struct{})
	h.remote.EXPECT().FilterCatalog(mock.Anything, "category=1").
		RunAndReturn(func(context.Context, string) (*domain.CatalogResponse, error) {
			<-gate
			return catalogResponse("1"), nil
		}).Once()
	h.remote.EXPECT().FilterCatalog(mock.Anything, "category=1&category=2").
		Return(catalogResponse("2", "3"), nil).Once()

	h.check("category", "1", true)
	h.check("category", "2", true)

	assert.Eventually(t, func() bool {
		return h.location() == "/products/?category=1&category=2"
	}, 5*time.Second, time.Millisecond)

	close(gate)
	h.settle()

	assert.Equal(t, "/products/?category=1&category=2", h.location())
	assert.Equal(t, 2, h.count("#product-list .product"))
	assert.Equal(t, 1, h.count("#card-2"))
	assert.Equal(t, 0, h.count("#card-1"))
	assert.GreaterOrEqual(t, testutil.ToFloat64(metrics.FilterResponsesDiscardedTotal)-discarded, 1.0)
	assert.Empty(t, h.messages(), "superseded requests raise no toast")
}

func TestFilter_DebounceCoalescesRapidEdits(t *testing.T) {
	t.Parallel()

	h := newHarness(t, listingPage, "/products/", catalog.WithDebounce(20*time.Millisecond))
	h.remote.EXPECT().FilterCatalog(mock.Anything, "category=1&brand=7&min_price=100").
		Return(catalogResponse("9"), nil).Once()

	h.do(func() {
		for _, f := range []struct{ name, value string }{{"category", "1"}, {"brand", "7"}} {
			n := catalog.SetFieldChecked(h.doc.Root(), f.name, f.value, true)
			h.doc.Dispatch(dom.NewEvent(dom.EventChange, n))
		}
		n := catalog.SetFieldValue(h.doc.Root(), "min_price", "100")
		h.doc.Dispatch(dom.NewEvent(dom.EventInput, n))
	})
	h.settle()

	assert.Equal(t, "/products/?category=1&brand=7&min_price=100", h.location())
}

func TestFilter_FailureLeavesPageUntouched(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{name: "transport", err: fmt.Errorf("%w: connection refused", client.ErrTransport)},
		{name: "malformed", err: fmt.Errorf("%w: not json", client.ErrMalformedResponse)},
		{name: "error status", err: &client.StatusError{StatusCode: 500, Path: "/products/ajax/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, listingPage, "/products/")
			h.remote.EXPECT().FilterCatalog(mock.Anything, "brand=7").Return(nil, tt.err).Once()

			h.check("brand", "7", true)
			h.settle()

			assert.Equal(t, 1, h.count("#card-1"))
			assert.Equal(t, 2, h.count("#pagination a"))
			assert.Equal(t, "/products/", h.location())

			msgs := h.messages()
			require.Len(t, msgs, 1)
			assert.Equal(t, notify.SeverityDanger, msgs[0].Severity)
			assert.Equal(t, catalog.DefaultMessages().FilterFailed, msgs[0].Text)
		})
	}
}

// manualRunner runs work and continuations inline and holds timers until
// the test fires them.
type manualRunner struct {
	timers []*manualTimer
}

type manualTimer struct {
	fn      func()
	fired   bool
	stopped bool
}

func (r *manualRunner) Go(work func() func()) {
	if cont := work(); cont != nil {
		cont()
	}
}

func (r *manualRunner) AfterFunc(_ time.Duration, fn func()) func() bool {
	tm := &manualTimer{fn: fn}
	r.timers = append(r.timers, tm)
	return func() bool {
		if tm.fired || tm.stopped {
			return false
		}
		tm.stopped = true
		return true
	}
}

func TestFilter_StaleDebounceTaskIsDropped(t *testing.T) {
	t.Parallel()

	doc, err := dom.ParseString(listingPage)
	require.NoError(t, err)
	loc, err := url.Parse("http://shop.test/products/")
	require.NoError(t, err)
	hist := dom.NewHistory(loc)
	remote := mocks.NewMockRemote(t)
	runner := &manualRunner{}

	ctrl := catalog.New(doc, runner, remote, &fakeBadges{}, &notify.Recorder{}, hist,
		catalog.WithDebounce(time.Second), catalog.WithLogger(quietLogger()))
	ctrl.Init(context.Background())

	edit := func(name, value string) {
		n := catalog.SetFieldChecked(doc.Root(), name, value, true)
		require.NotNil(t, n)
		doc.Dispatch(dom.NewEvent(dom.EventChange, n))
	}

	edit("category", "1")
	require.Len(t, runner.timers, 1)
	first := runner.timers[0]
	// The window closes, but its task is queued behind the next edit.
	first.fired = true

	edit("brand", "7")
	require.Len(t, runner.timers, 2)

	// Issues nothing: the mock fails on any unexpected call.
	first.fn()

	remote.EXPECT().FilterCatalog(mock.Anything, "category=1&brand=7&page=2").
		Return(catalogResponse("4"), nil).Once()
	ctrl.GoToPage(2)

	assert.True(t, runner.timers[1].stopped, "the live window is still cancellable")
	assert.Equal(t, "/products/?category=1&brand=7&page=2", hist.Location().RequestURI())
}

func TestReset_RequestsNoPageAndNoFields(t *testing.T) {
	t.Parallel()

	h := newHarness(t, listingPage, "/products/?category=2&page=2")
	h.remote.EXPECT().FilterCatalog(mock.Anything, "").
		Return(catalogResponse("1", "2", "3"), nil).Once()

	h.do(func() {
		catalog.SetFieldValue(h.doc.Root(), "q", "chair")
	})
	h.click("#reset-filters")
	h.settle()

	var q catalog.FilterQuery
	h.do(func() { q = h.ctrl.Query() })
	assert.True(t, q.IsZero())
	assert.Equal(t, "/products/", h.location())
}

func TestPagination_KeepsFiltersAndOmitsFirstPage(t *testing.T) {
	t.Parallel()

	h := newHarness(t, listingPage, "/products/?category=2")
	h.remote.EXPECT().FilterCatalog(mock.Anything, "category=2&page=2").
		Return(catalogResponse("4"), nil).Once()
	h.remote.EXPECT().FilterCatalog(mock.Anything, "category=2").
		Return(catalogResponse("1"), nil).Once()

	h.click(`#pagination a[href="?page=2"]`)
	h.settle()
	assert.Equal(t, "/products/?category=2&page=2", h.location())

	h.click(`#pagination a[href="?page=1"]`)
	h.settle()
	assert.Equal(t, "/products/?category=2", h.location())
}

func TestDelegation_SurvivesRepeatedReplacement(t *testing.T) {
	t.Parallel()

	h := newHarness(t, listingPage, "/products/")
	h.remote.EXPECT().FilterCatalog(mock.Anything, mock.Anything).
		Return(catalogResponse("99"), nil).Times(5)
	h.remote.EXPECT().AddToCart(mock.Anything, "99", 1).
		Return(&domain.CartAddResponse{Success: true}, nil).Once()

	for i := range 5 {
		h.check("brand", "7", i%2 == 0)
		h.settle()
	}
	h.do(func() {
		assert.Equal(t, 1, h.doc.ListenerCount(dom.EventClick))
	})

	h.click(`.add-to-cart-btn[data-product-id="99"]`)
	h.settle()

	msgs := h.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, catalog.DefaultMessages().CartAdded, msgs[0].Text)
}

func TestAddToCart(t *testing.T) {
	t.Parallel()

	defaults := catalog.DefaultMessages()
	tests := []struct {
		name         string
		resp         *domain.CartAddResponse
		err          error
		wantText     string
		wantSeverity notify.Severity
		wantRefresh  int32
	}{
		{
			name:         "success refreshes badge",
			resp:         &domain.CartAddResponse{Success: true},
			wantText:     defaults.CartAdded,
			wantSeverity: notify.SeveritySuccess,
			wantRefresh:  2,
		},
		{
			name:         "server message",
			resp:         &domain.CartAddResponse{Error: "Out of stock"},
			wantText:     "Out of stock",
			wantSeverity: notify.SeverityDanger,
			wantRefresh:  1,
		},
		{
			name:         "default failure",
			resp:         &domain.CartAddResponse{},
			wantText:     defaults.CartAddFailed,
			wantSeverity: notify.SeverityDanger,
			wantRefresh:  1,
		},
		{
			name:         "transport failure",
			err:          client.ErrTransport,
			wantText:     defaults.Unreachable,
			wantSeverity: notify.SeverityDanger,
			wantRefresh:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, listingPage, "/products/")
			h.remote.EXPECT().AddToCart(mock.Anything, "1", 1).Return(tt.resp, tt.err).Once()

			h.click(".add-to-cart-btn")
			h.settle()

			msgs := h.messages()
			require.Len(t, msgs, 1)
			assert.Equal(t, tt.wantText, msgs[0].Text)
			assert.Equal(t, tt.wantSeverity, msgs[0].Severity)
			assert.Equal(t, tt.wantRefresh, h.badges.cart.Load())
			assert.Equal(t, "0", h.text("#cart-qty"), "never incremented locally")
		})
	}
}

func TestAddToCart_IgnoresClicksWhilePending(t *testing.T) {
	t.Parallel()

	h := newHarness(t, listingPage, "/products/")
	gate := make(chan struct{})
	h.remote.EXPECT().AddToCart(mock.Anything, "1", 1).
		RunAndReturn(func(context.Context, string, int) (*domain.CartAddResponse, error) {
			<-gate
			return &domain.CartAddResponse{Success: true}, nil
		}).Once()

	h.click(".add-to-cart-btn")
	h.click(".add-to-cart-btn")
	assert.Equal(t, 1, h.count(".add-to-cart-btn[data-pending]"))

	close(gate)
	h.settle()
	assert.Equal(t, 0, h.count(".add-to-cart-btn[data-pending]"))
}

func TestAddToCart_ControlWithoutProductID(t *testing.T) {
	t.Parallel()

	h := newHarness(t, `<html><body><a class="add-to-cart-btn">Add</a></body></html>`, "/")
	h.click(".add-to-cart-btn")
	h.settle()

	assert.Empty(t, h.messages())
}

func TestRemoveFromCart_RendersServerTotals(t *testing.T) {
	t.Parallel()

	h := newHarness(t, cartPage, "/cart/")
	h.remote.EXPECT().RemoveFromCart(mock.Anything, "11").Return(&domain.CartRemoveResponse{
		Success:       true,
		TotalPrice:    decimal.RequireFromString("19.98"),
		TotalQuantity: 2,
	}, nil).Once()

	h.click(`.remove-from-cart-btn[data-cart-item-id="11"]`)
	h.settle()

	assert.Equal(t, "19.98 BYN", h.text("#cart-total-price"))
	assert.Equal(t, "2", h.text("#cart-total-quantity"))
	assert.Equal(t, 1, h.count(".cart-item-row"))
	assert.Equal(t, 1, h.count("#row-12"))
	assert.Equal(t, int32(2), h.badges.cart.Load())
}

func TestRemoveFromCart_LastRowShowsEmptyState(t *testing.T) {
	t.Parallel()

	h := newHarness(t, cartPage, "/cart/", catalog.WithCurrency("EUR"))
	h.remote.EXPECT().RemoveFromCart(mock.Anything, "11").Return(&domain.CartRemoveResponse{
		Success: true, TotalPrice: decimal.RequireFromString("9.99"), TotalQuantity: 1,
	}, nil).Once()
	h.remote.EXPECT().RemoveFromCart(mock.Anything, "12").Return(&domain.CartRemoveResponse{
		Success: true, TotalPrice: decimal.Zero, TotalQuantity: 0,
	}, nil).Once()

	h.click(`.remove-from-cart-btn[data-cart-item-id="11"]`)
	h.settle()
	assert.Equal(t, "9.99 EUR", h.text("#cart-total-price"))

	h.click(`.remove-from-cart-btn[data-cart-item-id="12"]`)
	h.settle()

	assert.Equal(t, 0, h.count(".cart-item-row"))
	assert.Equal(t, 0, h.count("#cart-total-price"))
	assert.Equal(t, 0, h.count("#cart-total-quantity"))
	assert.Equal(t, 1, h.count(".content-cart .empty-state"))
}

func TestRemoveFromCart_FailureKeepsRow(t *testing.T) {
	t.Parallel()

	h := newHarness(t, cartPage, "/cart/")
	h.remote.EXPECT().RemoveFromCart(mock.Anything, "12").
		Return(&domain.CartRemoveResponse{Success: false}, nil).Once()

	h.click(`.remove-from-cart-btn[data-cart-item-id="12"]`)
	h.settle()

	assert.Equal(t, 2, h.count(".cart-item-row"))
	assert.Equal(t, "29.97 BYN", h.text("#cart-total-price"))
	msgs := h.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, catalog.DefaultMessages().CartRemoveFailed, msgs[0].Text)
}

func TestWishlist_IconFollowsEachServerStatus(t *testing.T) {
	t.Parallel()

	h := newHarness(t, listingPage, "/products/")
	h.remote.EXPECT().ToggleWishlist(mock.Anything, "1").
		Return(&domain.WishlistToggleResponse{Status: domain.WishlistAdded}, nil).Once()
	h.remote.EXPECT().ToggleWishlist(mock.Anything, "1").
		Return(&domain.WishlistToggleResponse{Status: domain.WishlistRemoved}, nil).Once()

	h.click(".add-to-wishlist")
	h.settle()
	assert.True(t, h.hasClass(".add-to-wishlist i", "fa-heart"))
	assert.False(t, h.hasClass(".add-to-wishlist i", "fa-heart-o"))

	h.click(".add-to-wishlist")
	h.settle()
	assert.True(t, h.hasClass(".add-to-wishlist i", "fa-heart-o"))
	assert.False(t, h.hasClass(".add-to-wishlist i", "fa-heart"))

	assert.Equal(t, int32(3), h.badges.wishlist.Load())
	msgs := h.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, catalog.DefaultMessages().WishlistAdded, msgs[0].Text)
	assert.Equal(t, catalog.DefaultMessages().WishlistRemoved, msgs[1].Text)
}

func TestWishlist_StatusOverridesStaleIcon(t *testing.T) {
	t.Parallel()

	page := `<html><body><a class="add-to-wishlist" data-product-id="5"><i class="fa fa-heart"></i></a></body></html>`
	h := newHarness(t, page, "/products/")
	h.remote.EXPECT().ToggleWishlist(mock.Anything, "5").
		Return(&domain.WishlistToggleResponse{Status: domain.WishlistAdded}, nil).Once()

	h.click(".add-to-wishlist")
	h.settle()

	assert.True(t, h.hasClass(".add-to-wishlist i", "fa-heart"))
	assert.False(t, h.hasClass(".add-to-wishlist i", "fa-heart-o"))
}

func TestWishlist_UnknownStatusIsFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t, listingPage, "/products/")
	h.remote.EXPECT().ToggleWishlist(mock.Anything, "1").
		Return(&domain.WishlistToggleResponse{Error: "Login required"}, nil).Once()

	h.click(".add-to-wishlist")
	h.settle()

	assert.True(t, h.hasClass(".add-to-wishlist i", "fa-heart-o"))
	msgs := h.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "Login required", msgs[0].Text)
	assert.Equal(t, notify.SeverityDanger, msgs[0].Severity)
}

func TestWishlist_RemovedOnWishlistPageDropsCards(t *testing.T) {
	t.Parallel()

	h := newHarness(t, wishlistPage, "/favorite/")
	h.remote.EXPECT().ToggleWishlist(mock.Anything, "1").
		Return(&domain.WishlistToggleResponse{Status: domain.WishlistRemoved}, nil).Once()
	h.remote.EXPECT().ToggleWishlist(mock.Anything, "2").
		Return(&domain.WishlistToggleResponse{Status: domain.WishlistRemoved}, nil).Once()

	h.click(`.add-to-wishlist[data-product-id="1"]`)
	h.settle()
	assert.Equal(t, 0, h.count("#favorite-product-1"))
	assert.Equal(t, 1, h.count(".product"))
	assert.Equal(t, 0, h.count(".empty-state"))

	h.click(`.add-to-wishlist[data-product-id="2"]`)
	h.settle()
	assert.Equal(t, 0, h.count(".product"))
	assert.Equal(t, 1, h.count(".content-cards .empty-state"))
}

func TestWishlist_AddedOnWishlistPageKeepsCard(t *testing.T) {
	t.Parallel()

	h := newHarness(t, wishlistPage, "/favorite/")
	h.remote.EXPECT().ToggleWishlist(mock.Anything, "2").
		Return(&domain.WishlistToggleResponse{Status: domain.WishlistAdded}, nil).Once()

	h.click(`.add-to-wishlist[data-product-id="2"]`)
	h.settle()

	assert.Equal(t, 1, h.count("#favorite-product-2"))
	assert.Equal(t, 2, h.count(".product"))
}

func TestWishlist_RemovedOffWishlistPageKeepsCard(t *testing.T) {
	t.Parallel()

	h := newHarness(t, wishlistPage, "/products/")
	h.remote.EXPECT().ToggleWishlist(mock.Anything, "1").
		Return(&domain.WishlistToggleResponse{Status: domain.WishlistRemoved}, nil).Once()

	h.click(`.add-to-wishlist[data-product-id="1"]`)
	h.settle()

	assert.Equal(t, 1, h.count("#favorite-product-1"))
}

func TestSubscribe(t *testing.T) {
	t.Parallel()

	defaults := catalog.DefaultMessages()
	tests := []struct {
		name      string
		resp      *domain.SubscribeResponse
		err       error
		wantText  string
		wantValue string
	}{
		{
			name:      "success clears field",
			resp:      &domain.SubscribeResponse{Success: true},
			wantText:  defaults.Subscribed,
			wantValue: "",
		},
		{
			name:      "server error kept",
			resp:      &domain.SubscribeResponse{Error: "Already subscribed"},
			wantText:  "Already subscribed",
			wantValue: "me@example.com",
		},
		{
			name:      "fallback text",
			resp:      &domain.SubscribeResponse{},
			wantText:  defaults.SubscribeFailed,
			wantValue: "me@example.com",
		},
		{
			name:      "transport",
			err:       client.ErrTransport,
			wantText:  defaults.Unreachable,
			wantValue: "me@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, listingPage, "/products/")
			h.remote.EXPECT().Subscribe(mock.Anything, "me@example.com").Return(tt.resp, tt.err).Once()

			h.do(func() { catalog.SetFieldValue(h.doc.Root(), "email", "me@example.com") })
			h.dispatch(dom.EventSubmit, ".newsletter form")
			h.settle()

			msgs := h.messages()
			require.Len(t, msgs, 1)
			assert.Equal(t, tt.wantText, msgs[0].Text)

			var value string
			h.do(func() {
				value, _ = dom.Attr(h.doc.First(`input[type="email"]`), "value")
			})
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestSubscribe_IgnoresSubmitsWhilePending(t *testing.T) {
	t.Parallel()

	h := newHarness(t, listingPage, "/products/")
	gate := make(chan struct{})
	h.remote.EXPECT().Subscribe(mock.Anything, "me@example.com").
		RunAndReturn(func(context.Context, string) (*domain.SubscribeResponse, error) {
			<-gate
			return &domain.SubscribeResponse{Success: true}, nil
		}).Once()

	h.do(func() { catalog.SetFieldValue(h.doc.Root(), "email", "me@example.com") })
	h.dispatch(dom.EventSubmit, ".newsletter form")
	h.dispatch(dom.EventSubmit, ".newsletter form")
	assert.Equal(t, 1, h.count(".newsletter form[data-pending]"))

	close(gate)
	h.settle()

	assert.Equal(t, 0, h.count(".newsletter form[data-pending]"))
	msgs := h.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, catalog.DefaultMessages().Subscribed, msgs[0].Text)
}

func TestSubmitFilterFormRequestsImmediately(t *testing.T) {
	t.Parallel()

	h := newHarness(t, listingPage, "/products/", catalog.WithDebounce(time.Hour))
	h.remote.EXPECT().FilterCatalog(mock.Anything, "q=lamp").
		Return(catalogResponse("3"), nil).Once()

	h.do(func() { catalog.SetFieldValue(h.doc.Root(), "q", "lamp") })
	h.dispatch(dom.EventSubmit, "#filter-form")
	h.settle()

	assert.Equal(t, "/products/?q=lamp", h.location())
}

func TestMissingRegionsAreNoOps(t *testing.T) {
	t.Parallel()

	page := `<html><body><form id="filter-form"><input type="checkbox" name="c" value="1"></form></body></html>`
	h := newHarness(t, page, "/products/")
	h.remote.EXPECT().FilterCatalog(mock.Anything, "c=1").
		Return(catalogResponse("1"), nil).Once()

	h.check("c", "1", true)
	h.settle()

	assert.Equal(t, "/products/?c=1", h.location())
}
