package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/storefront-sync/internal/storefront"
	domain "github.com/donaldgifford/storefront-sync/pkg/types"
)

// CatalogStore lists filtered products.
type CatalogStore interface {
	Filter(f storefront.Filter) storefront.Listing
	WishlistIDs(session string) map[string]bool
}

// FragmentRenderer renders listing fragments.
type FragmentRenderer interface {
	Fragments(l *storefront.Listing, f *storefront.Filter, wished map[string]bool) (*domain.CatalogResponse, error)
}

// CatalogHandler serves the filtered catalog endpoint.
type CatalogHandler struct {
	store    CatalogStore
	renderer FragmentRenderer
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(s CatalogStore, r FragmentRenderer) *CatalogHandler {
	return &CatalogHandler{store: s, renderer: r}
}

// CatalogInput carries the raw listing query. Filter keys repeat
// (category=1&category=2), so the query is read whole.
type CatalogInput struct {
	values url.Values
}

// Resolve captures the request query.
func (in *CatalogInput) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	in.values = u.Query()
	return nil
}

// CatalogOutput is the rendered listing.
type CatalogOutput struct {
	Body domain.CatalogResponse
}

// List renders the product list and pagination for the query.
func (h *CatalogHandler) List(ctx context.Context, in *CatalogInput) (*CatalogOutput, error) {
	f := storefront.ParseFilter(in.values)
	listing := h.store.Filter(f)
	wished := h.store.WishlistIDs(storefront.SessionFromContext(ctx))

	resp, err := h.renderer.Fragments(&listing, &f, wished)
	if err != nil {
		return nil, huma.Error500InternalServerError("rendering catalog: " + err.Error())
	}
	return &CatalogOutput{Body: *resp}, nil
}

// RegisterCatalogRoutes registers the filtered catalog endpoint with the
// Huma API.
func RegisterCatalogRoutes(api huma.API, h *CatalogHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "catalog-list",
		Method:      http.MethodGet,
		Path:        "/products/ajax/",
		Summary:     "Filtered catalog",
		Description: "Returns the product list and pagination markup for the given " +
			"category, brand, min_price, max_price, q, and page parameters.",
		Tags: []string{"catalog"},
	}, h.List)
}
