package storefront

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer("")
	require.NoError(t, err)
	return r
}

func TestRenderer_Money(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)
	assert.Equal(t, "19.98 BYN", r.Money(decimal.RequireFromString("19.98")))
	assert.Equal(t, "259.00 BYN", r.Money(decimal.RequireFromString("259")))

	eur, err := NewRenderer("EUR")
	require.NoError(t, err)
	assert.Equal(t, "0.50 EUR", eur.Money(decimal.RequireFromString("0.5")))
}

func TestRenderer_Fragments(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)
	s := New(WithPageSize(2))
	f := Filter{Brands: []string{"1"}, Page: "2"}
	l := s.Filter(f)

	resp, err := r.Fragments(&l, &f, map[string]bool{"6": true})
	require.NoError(t, err)

	assert.Contains(t, resp.ProductsHTML, `id="product-6"`)
	assert.Contains(t, resp.ProductsHTML, "849.15 BYN")
	assert.Contains(t, resp.ProductsHTML, `class="fa fa-heart"`)
	assert.NotContains(t, resp.ProductsHTML, `id="product-1"`)
	assert.Contains(t, resp.PaginationHTML, `href="?brand=1&amp;page=1"`)
	assert.Contains(t, resp.PaginationHTML, `href="?brand=1&amp;page=2" class="active">2</a>`)
}

func TestRenderer_FragmentsEmpty(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)
	f := Filter{Search: "toaster"}
	l := New().Filter(f)

	resp, err := r.Fragments(&l, &f, nil)
	require.NoError(t, err)
	assert.Contains(t, resp.ProductsHTML, `class="empty-state"`)
	assert.Contains(t, resp.PaginationHTML, `class="active">1</a>`)
}

func TestRenderer_Pages(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)
	s := New()
	require.NoError(t, s.AddToCart("sess", "1", 1))
	_, err := s.ToggleWishlist("sess", "4")
	require.NoError(t, err)

	hdr := Header{CartCount: s.CartCount("sess"), WishlistCount: s.WishlistCount("sess")}

	var buf bytes.Buffer
	f := Filter{Categories: []string{"2"}}
	require.NoError(t, r.RenderProducts(&buf, &ProductsPage{
		Header:     hdr,
		Categories: s.Categories(),
		Brands:     s.Brands(),
		Filter:     f,
		Listing:    s.Filter(f),
		Wished:     s.WishlistIDs("sess"),
	}))
	page := buf.String()
	assert.Contains(t, page, "<title>Catalog | TechShop</title>")
	assert.Contains(t, page, `<span id="cart-qty">1</span>`)
	assert.Contains(t, page, `<span id="favorite-count">1</span>`)
	assert.Contains(t, page, `value="2" checked`)
	assert.Contains(t, page, "Acme Phone S")

	buf.Reset()
	require.NoError(t, r.RenderCart(&buf, hdr, s.Cart("sess")))
	assert.Contains(t, buf.String(), `<span id="cart-total-price">9.99 BYN</span>`)
	assert.Contains(t, buf.String(), `data-cart-item-id="1"`)

	buf.Reset()
	require.NoError(t, r.RenderCart(&buf, Header{}, CartSummary{Total: decimal.Zero}))
	assert.Contains(t, buf.String(), "Your cart is empty.")

	buf.Reset()
	require.NoError(t, r.RenderWishlist(&buf, hdr, s.Wishlist("sess")))
	assert.Contains(t, buf.String(), `id="favorite-product-4"`)
}
