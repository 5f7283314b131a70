package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/storefront-sync/internal/storefront"
	domain "github.com/donaldgifford/storefront-sync/pkg/types"
)

// CartStore is the cart state the cart endpoints operate on.
type CartStore interface {
	AddToCart(session, productID string, quantity int) error
	RemoveFromCart(session, itemID string) (storefront.CartSummary, error)
	CartCount(session string) int
}

// CartHandler serves the cart endpoints.
type CartHandler struct {
	store CartStore
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(s CartStore) *CartHandler {
	return &CartHandler{store: s}
}

// CartAddInput is the request body for adding to the cart.
type CartAddInput struct {
	Body struct {
		ProductID string `json:"product_id"         minLength:"1" doc:"Product to add"                          example:"4"`
		Quantity  int    `json:"quantity,omitempty"               doc:"Units to add; values below 1 add one" example:"1"`
	}
}

// CartAddOutput reports whether the product was added.
type CartAddOutput struct {
	Status int
	Body   domain.CartAddResponse
}

// Add puts a product in the session's cart.
func (h *CartHandler) Add(ctx context.Context, in *CartAddInput) (*CartAddOutput, error) {
	session := storefront.SessionFromContext(ctx)
	out := &CartAddOutput{Status: http.StatusOK}

	err := h.store.AddToCart(session, in.Body.ProductID, in.Body.Quantity)
	switch {
	case errors.Is(err, storefront.ErrProductNotFound):
		out.Status = http.StatusNotFound
		out.Body.Error = "Product not found"
	case err != nil:
		return nil, huma.Error500InternalServerError("adding to cart: " + err.Error())
	default:
		out.Body.Success = true
	}
	return out, nil
}

// CartRemoveInput is the request body for removing a cart line.
type CartRemoveInput struct {
	Body struct {
		CartItemID string `json:"cart_item_id" minLength:"1" doc:"Cart line to remove" example:"12"`
	}
}

// CartRemoveOutput carries the cart totals after a removal.
type CartRemoveOutput struct {
	Status int
	Body   domain.CartRemoveResponse
}

// Remove deletes a line from the session's cart.
func (h *CartHandler) Remove(ctx context.Context, in *CartRemoveInput) (*CartRemoveOutput, error) {
	session := storefront.SessionFromContext(ctx)
	out := &CartRemoveOutput{Status: http.StatusOK}

	sum, err := h.store.RemoveFromCart(session, in.Body.CartItemID)
	switch {
	case errors.Is(err, storefront.ErrCartItemNotFound):
		out.Status = http.StatusNotFound
		out.Body.Error = "Item not found"
	case err != nil:
		return nil, huma.Error500InternalServerError("removing from cart: " + err.Error())
	default:
		out.Body.Success = true
		out.Body.TotalPrice = sum.Total
		out.Body.TotalQuantity = sum.Quantity
	}
	return out, nil
}

// CountOutput is the response body of the count endpoints.
type CountOutput struct {
	Body domain.CountResponse
}

// Count returns the number of units in the session's cart.
func (h *CartHandler) Count(ctx context.Context, _ *struct{}) (*CountOutput, error) {
	out := &CountOutput{}
	out.Body.Count = h.store.CartCount(storefront.SessionFromContext(ctx))
	return out, nil
}

// RegisterCartRoutes registers the cart endpoints with the Huma API.
func RegisterCartRoutes(api huma.API, h *CartHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "cart-add",
		Method:      http.MethodPost,
		Path:        "/cart/add/",
		Summary:     "Add to cart",
		Description: "Adds units of a product to the shopper's cart, merging with an existing line.",
		Tags:        []string{"cart"},
		Errors:      []int{http.StatusNotFound},
	}, h.Add)

	huma.Register(api, huma.Operation{
		OperationID: "cart-remove",
		Method:      http.MethodPost,
		Path:        "/cart/remove/",
		Summary:     "Remove a cart line",
		Description: "Deletes a cart line and returns the remaining total price and quantity.",
		Tags:        []string{"cart"},
		Errors:      []int{http.StatusNotFound},
	}, h.Remove)

	huma.Register(api, huma.Operation{
		OperationID: "cart-count",
		Method:      http.MethodGet,
		Path:        "/cart/count/",
		Summary:     "Cart item count",
		Description: "Returns the total number of units in the shopper's cart.",
		Tags:        []string{"cart"},
	}, h.Count)
}
