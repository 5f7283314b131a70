package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront-sync/internal/api"
	"github.com/donaldgifford/storefront-sync/internal/api/client"
	"github.com/donaldgifford/storefront-sync/internal/catalog"
	"github.com/donaldgifford/storefront-sync/internal/notify"
	"github.com/donaldgifford/storefront-sync/internal/storefront"
	"github.com/donaldgifford/storefront-sync/pkg/logger"
)

func newStorefront(t *testing.T) (*httptest.Server, *storefront.Store) {
	t.Helper()

	store := storefront.New()
	renderer, err := storefront.NewRenderer("")
	require.NoError(t, err)

	srv := httptest.NewServer(api.NewServer(store, renderer, logger.Discard(), "test").Echo())
	t.Cleanup(srv.Close)
	return srv, store
}

func newClient(t *testing.T, baseURL string) *client.Client {
	t.Helper()

	c, err := client.New(baseURL, client.WithTimeout(5*time.Second))
	require.NoError(t, err)
	return c
}

func open(t *testing.T, c *client.Client, path string) *catalog.Session {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	s, err := catalog.Open(ctx, c, path, catalog.SessionConfig{
		Controller: []catalog.Option{catalog.WithDebounce(0)},
		Logger:     logger.Discard(),
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func texts(msgs []notify.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Text)
	}
	return out
}

func TestStorefront_ShoppingFlow(t *testing.T) {
	t.Parallel()

	srv, _ := newStorefront(t)
	c := newClient(t, srv.URL)
	ctx := context.Background()
	msgs := catalog.DefaultMessages()

	listing := open(t, c, "/products/")
	_, ok := c.CSRFToken()
	require.True(t, ok, "page load should issue the anti-forgery cookie")

	snap, err := listing.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0", snap.CartCount)
	assert.Equal(t, "0", snap.WishlistCount)
	assert.Len(t, snap.Products, 3)
	assert.Len(t, snap.Pages, 3)

	require.NoError(t, listing.SetChecked(ctx, "category", "3", true))
	snap, err = listing.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/products/?category=3", snap.URL)
	require.Len(t, snap.Products, 3)
	assert.Equal(t, "Acme Buds", snap.Products[0].Name)
	assert.Equal(t, "9.99 BYN", snap.Products[0].Price)
	assert.Len(t, snap.Pages, 1)

	require.NoError(t, listing.Click(ctx, `.add-to-cart-btn[data-product-id="1"]`))
	require.NoError(t, listing.Click(ctx, `.add-to-cart-btn[data-product-id="1"]`))
	require.NoError(t, listing.Click(ctx, `.add-to-cart-btn[data-product-id="3"]`))
	require.NoError(t, listing.Click(ctx, `.add-to-wishlist[data-product-id="2"]`))

	snap, err = listing.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "3", snap.CartCount)
	assert.Equal(t, "1", snap.WishlistCount)
	assert.True(t, snap.Products[1].InWishlist)
	assert.Equal(t,
		[]string{msgs.CartAdded, msgs.CartAdded, msgs.CartAdded, msgs.WishlistAdded},
		texts(listing.Messages()),
	)

	cart := open(t, c, "/cart/")
	snap, err = cart.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.CartRows, 2)
	assert.Equal(t, "149.48 BYN", snap.CartTotal)
	assert.Equal(t, "3", snap.CartQuantity)

	require.NoError(t, cart.Click(ctx, `.remove-from-cart-btn[data-cart-item-id="2"]`))
	snap, err = cart.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.CartRows, 1)
	assert.Equal(t, catalog.CartRow{ItemID: "1", Name: "Acme Buds", Total: "19.98 BYN"}, snap.CartRows[0])
	assert.Equal(t, "19.98 BYN", snap.CartTotal)
	assert.Equal(t, "2", snap.CartQuantity)
	assert.Equal(t, "2", snap.CartCount)
	assert.Equal(t, []string{msgs.CartRemoved}, texts(cart.Messages()))
}

func TestStorefront_WishlistPageDropsCard(t *testing.T) {
	t.Parallel()

	srv, store := newStorefront(t)
	c := newClient(t, srv.URL)
	ctx := context.Background()

	listing := open(t, c, "/products/")
	require.NoError(t, listing.Click(ctx, `.add-to-wishlist[data-product-id="1"]`))
	assert.Equal(t, []string{"Acme Buds"}, wishlistNames(store))

	favorites := open(t, c, "/favorite/")
	snap, err := favorites.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "1", snap.WishlistCount)

	require.NoError(t, favorites.Click(ctx, `.add-to-wishlist[data-product-id="1"]`))
	snap, err = favorites.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Products)
	assert.True(t, snap.EmptyState)
	assert.Equal(t, "0", snap.WishlistCount)
	assert.Empty(t, wishlistNames(store))
}

func wishlistNames(store *storefront.Store) []string {
	var names []string
	for _, sess := range store.Sessions() {
		for _, p := range store.Wishlist(sess) {
			names = append(names, p.Name)
		}
	}
	return names
}

func TestStorefront_Newsletter(t *testing.T) {
	t.Parallel()

	srv, store := newStorefront(t)
	c := newClient(t, srv.URL)
	ctx := context.Background()
	msgs := catalog.DefaultMessages()

	s := open(t, c, "/products/")

	require.NoError(t, s.SetField(ctx, "email", "shopper@example.com"))
	require.NoError(t, s.Submit(ctx, ".newsletter form"))
	require.NoError(t, s.SetField(ctx, "email", "shopper@example.com"))
	require.NoError(t, s.Submit(ctx, ".newsletter form"))
	require.NoError(t, s.SetField(ctx, "email", "nope"))
	require.NoError(t, s.Submit(ctx, ".newsletter form"))

	assert.Equal(t,
		[]string{msgs.Subscribed, "You are already subscribed", "Enter a valid email address"},
		texts(s.Messages()),
	)
	assert.Equal(t, []string{"shopper@example.com"}, store.Subscribers())
}

func TestStorefront_RejectsMissingCSRFToken(t *testing.T) {
	t.Parallel()

	srv, store := newStorefront(t)

	resp, err := http.Post(srv.URL+"/cart/add/", "application/json",
		strings.NewReader(`{"product_id":"1","quantity":1}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, store.Sessions())
}

func TestStorefront_Probes(t *testing.T) {
	t.Parallel()

	srv, _ := newStorefront(t)

	for _, path := range []string{"/healthz", "/readyz", "/metrics", "/openapi.json", "/swagger/swagger.json", "/swagger/index.html"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
