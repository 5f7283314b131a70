package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront-sync/internal/api/handlers"
	"github.com/donaldgifford/storefront-sync/internal/storefront"
)

func newPageServer(t *testing.T, s *storefront.Store) *echo.Echo {
	t.Helper()

	r, err := storefront.NewRenderer("")
	require.NoError(t, err)

	e := echo.New()
	handlers.RegisterPageRoutes(e, handlers.NewPageHandler(s, r))
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPageHandler_Products(t *testing.T) {
	t.Parallel()

	s := storefront.New()
	require.NoError(t, s.AddToCart("", "1", 2))

	rec := get(newPageServer(t, s), "/products/?brand=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, `id="filter-form"`)
	assert.Contains(t, body, `id="product-list"`)
	assert.Contains(t, body, "Globex Headphones")
	assert.NotContains(t, body, "Acme Buds")
	assert.Contains(t, body, `<span id="cart-qty">2</span>`)
}

func TestPageHandler_Cart(t *testing.T) {
	t.Parallel()

	s := storefront.New()
	require.NoError(t, s.AddToCart("", "1", 3))

	rec := get(newPageServer(t, s), "/cart/")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `id="cart-item-1"`)
	assert.Contains(t, body, "29.97 BYN")
}

func TestPageHandler_Wishlist(t *testing.T) {
	t.Parallel()

	s := storefront.New()
	_, err := s.ToggleWishlist("", "5")
	require.NoError(t, err)

	rec := get(newPageServer(t, s), "/favorite/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="favorite-product-5"`)
	assert.Contains(t, rec.Body.String(), "Globex Phone Pro")
}

func TestPageHandler_Home(t *testing.T) {
	t.Parallel()

	rec := get(newPageServer(t, storefront.New()), "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/products/", rec.Header().Get(echo.HeaderLocation))
}
