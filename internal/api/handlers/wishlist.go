package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/storefront-sync/internal/storefront"
	domain "github.com/donaldgifford/storefront-sync/pkg/types"
)

// WishlistStore is the wishlist state the favorite endpoints operate on.
type WishlistStore interface {
	ToggleWishlist(session, productID string) (domain.WishlistStatus, error)
	WishlistCount(session string) int
}

// WishlistHandler serves the favorite endpoints.
type WishlistHandler struct {
	store WishlistStore
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(s WishlistStore) *WishlistHandler {
	return &WishlistHandler{store: s}
}

// WishlistToggleInput is the request body for toggling a favorite.
type WishlistToggleInput struct {
	Body struct {
		ProductID string `json:"product_id" minLength:"1" doc:"Product to toggle" example:"4"`
	}
}

// WishlistToggleOutput reports the product's new wishlist status.
type WishlistToggleOutput struct {
	Status int
	Body   domain.WishlistToggleResponse
}

// Toggle adds the product to the wishlist or removes it.
func (h *WishlistHandler) Toggle(ctx context.Context, in *WishlistToggleInput) (*WishlistToggleOutput, error) {
	out := &WishlistToggleOutput{Status: http.StatusOK}

	status, err := h.store.ToggleWishlist(storefront.SessionFromContext(ctx), in.Body.ProductID)
	switch {
	case errors.Is(err, storefront.ErrProductNotFound):
		out.Status = http.StatusNotFound
		out.Body.Error = "Product not found"
	case err != nil:
		return nil, huma.Error500InternalServerError("toggling wishlist: " + err.Error())
	default:
		out.Body.Status = status
	}
	return out, nil
}

// Count returns the number of products on the session's wishlist.
func (h *WishlistHandler) Count(ctx context.Context, _ *struct{}) (*CountOutput, error) {
	out := &CountOutput{}
	out.Body.Count = h.store.WishlistCount(storefront.SessionFromContext(ctx))
	return out, nil
}

// RegisterWishlistRoutes registers the favorite endpoints with the Huma API.
func RegisterWishlistRoutes(api huma.API, h *WishlistHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "wishlist-toggle",
		Method:      http.MethodPost,
		Path:        "/favorite/toggle/",
		Summary:     "Toggle a favorite",
		Description: "Adds the product to the shopper's wishlist, or removes it when present, and reports which happened.",
		Tags:        []string{"wishlist"},
		Errors:      []int{http.StatusNotFound},
	}, h.Toggle)

	huma.Register(api, huma.Operation{
		OperationID: "wishlist-count",
		Method:      http.MethodGet,
		Path:        "/favorite/count/",
		Summary:     "Wishlist count",
		Description: "Returns the number of products on the shopper's wishlist.",
		Tags:        []string{"wishlist"},
	}, h.Count)
}
