package client

import (
	"context"

	domain "github.com/donaldgifford/storefront-sync/pkg/types"
)

// AddToCart adds quantity units of a product to the cart.
func (c *Client) AddToCart(
	ctx context.Context,
	productID string,
	quantity int,
) (*domain.CartAddResponse, error) {
	var resp domain.CartAddResponse
	req := domain.CartAddRequest{ProductID: productID, Quantity: quantity}
	if err := c.PerformAction(ctx, c.endpoints.CartAdd, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RemoveFromCart removes a cart line and returns the new cart totals.
func (c *Client) RemoveFromCart(
	ctx context.Context,
	cartItemID string,
) (*domain.CartRemoveResponse, error) {
	var resp domain.CartRemoveResponse
	req := domain.CartRemoveRequest{CartItemID: cartItemID}
	if err := c.PerformAction(ctx, c.endpoints.CartRemove, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ToggleWishlist flips a product's wishlist membership and returns the
// resulting status.
func (c *Client) ToggleWishlist(
	ctx context.Context,
	productID string,
) (*domain.WishlistToggleResponse, error) {
	var resp domain.WishlistToggleResponse
	req := domain.WishlistToggleRequest{ProductID: productID}
	if err := c.PerformAction(ctx, c.endpoints.WishlistToggle, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Subscribe registers an email for the newsletter.
func (c *Client) Subscribe(ctx context.Context, email string) (*domain.SubscribeResponse, error) {
	var resp domain.SubscribeResponse
	if err := c.PerformAction(ctx, c.endpoints.Subscribe, domain.SubscribeRequest{Email: email}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CartCount returns the total quantity in the cart.
func (c *Client) CartCount(ctx context.Context) (int, error) {
	var resp domain.CountResponse
	if err := c.Fetch(ctx, c.endpoints.CartCount, "", &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// WishlistCount returns the number of wishlist entries.
func (c *Client) WishlistCount(ctx context.Context) (int, error) {
	var resp domain.CountResponse
	if err := c.Fetch(ctx, c.endpoints.WishlistCount, "", &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// FilterCatalog fetches the listing fragments for an encoded filter query.
func (c *Client) FilterCatalog(ctx context.Context, rawQuery string) (*domain.CatalogResponse, error) {
	var resp domain.CatalogResponse
	if err := c.Fetch(ctx, c.endpoints.Catalog, rawQuery, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
