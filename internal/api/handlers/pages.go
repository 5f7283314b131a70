package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/storefront-sync/internal/storefront"
	domain "github.com/donaldgifford/storefront-sync/pkg/types"
)

// PageStore is the state the HTML pages read.
type PageStore interface {
	CatalogStore
	Categories() []domain.Category
	Brands() []domain.Brand
	Cart(session string) storefront.CartSummary
	CartCount(session string) int
	Wishlist(session string) []domain.Product
	WishlistCount(session string) int
}

// PageRenderer renders the storefront pages.
type PageRenderer interface {
	RenderProducts(w io.Writer, p *storefront.ProductsPage) error
	RenderCart(w io.Writer, h storefront.Header, cart storefront.CartSummary) error
	RenderWishlist(w io.Writer, h storefront.Header, products []domain.Product) error
}

// PageHandler serves the storefront's HTML pages.
type PageHandler struct {
	store    PageStore
	renderer PageRenderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(s PageStore, r PageRenderer) *PageHandler {
	return &PageHandler{store: s, renderer: r}
}

func (h *PageHandler) header(session string) storefront.Header {
	return storefront.Header{
		CartCount:     h.store.CartCount(session),
		WishlistCount: h.store.WishlistCount(session),
	}
}

func html(c echo.Context, render func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("rendering %s: %w", c.Path(), err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// Products renders the filterable listing page.
func (h *PageHandler) Products(c echo.Context) error {
	session := storefront.SessionFromContext(c.Request().Context())
	f := storefront.ParseFilter(c.QueryParams())
	page := &storefront.ProductsPage{
		Header:     h.header(session),
		Categories: h.store.Categories(),
		Brands:     h.store.Brands(),
		Filter:     f,
		Listing:    h.store.Filter(f),
		Wished:     h.store.WishlistIDs(session),
	}
	return html(c, func(w io.Writer) error { return h.renderer.RenderProducts(w, page) })
}

// Cart renders the cart page.
func (h *PageHandler) Cart(c echo.Context) error {
	session := storefront.SessionFromContext(c.Request().Context())
	cart := h.store.Cart(session)
	hdr := h.header(session)
	return html(c, func(w io.Writer) error { return h.renderer.RenderCart(w, hdr, cart) })
}

// Wishlist renders the favorites page.
func (h *PageHandler) Wishlist(c echo.Context) error {
	session := storefront.SessionFromContext(c.Request().Context())
	products := h.store.Wishlist(session)
	hdr := h.header(session)
	return html(c, func(w io.Writer) error { return h.renderer.RenderWishlist(w, hdr, products) })
}

// Home redirects to the listing page.
func (*PageHandler) Home(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/products/")
}

// RegisterPageRoutes mounts the HTML pages on the echo router.
func RegisterPageRoutes(e *echo.Echo, h *PageHandler) {
	e.GET("/", h.Home)
	e.GET("/products/", h.Products)
	e.GET("/cart/", h.Cart)
	e.GET("/favorite/", h.Wishlist)
}
