// Package domain defines the wire and state types shared by the storefront
// client, the interaction controller and the reference storefront server.
package domain

import (
	"github.com/shopspring/decimal"
)

// WishlistStatus is the authoritative outcome of a wishlist toggle.
type WishlistStatus string

// Wishlist status constants. The server reports exactly one of these.
const (
	WishlistAdded   WishlistStatus = "added"
	WishlistRemoved WishlistStatus = "removed"
)

// Valid reports whether s is one of the two statuses the protocol allows.
func (s WishlistStatus) Valid() bool {
	return s == WishlistAdded || s == WishlistRemoved
}

// CartAddRequest is the body of a cart add call.
type CartAddRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartAddResponse is the reply to a cart add call.
type CartAddResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// CartRemoveRequest is the body of a cart remove call.
type CartRemoveRequest struct {
	CartItemID string `json:"cart_item_id"`
}

// CartRemoveResponse carries the authoritative cart totals after a removal.
// TotalPrice accepts both JSON numbers and strings.
type CartRemoveResponse struct {
	Success       bool            `json:"success"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	TotalQuantity int             `json:"total_quantity"`
	Error         string          `json:"error,omitempty"`
}

// CountResponse is the reply of the cart and wishlist count endpoints.
type CountResponse struct {
	Count int `json:"count"`
}

// WishlistToggleRequest is the body of a wishlist toggle call.
type WishlistToggleRequest struct {
	ProductID string `json:"product_id"`
}

// WishlistToggleResponse is the reply to a wishlist toggle call.
type WishlistToggleResponse struct {
	Status WishlistStatus `json:"status,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// SubscribeRequest is the body of a newsletter subscription call.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// SubscribeResponse is the reply to a newsletter subscription call.
type SubscribeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// CatalogResponse holds the server-rendered fragments for a filtered listing.
type CatalogResponse struct {
	ProductsHTML   string `json:"products_html"`
	PaginationHTML string `json:"pagination_html"`
}

// Category groups products on the storefront.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Brand is a product manufacturer.
type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Product is a catalog entry as rendered on product cards.
type Product struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Slug       string          `json:"slug"`
	CategoryID string          `json:"category_id"`
	BrandID    string          `json:"brand_id"`
	Price      decimal.Decimal `json:"price"`
	Discount   int             `json:"discount"`
	Color      string          `json:"color,omitempty"`
}

// FinalPrice returns the price after the percentage discount.
func (p *Product) FinalPrice() decimal.Decimal {
	if p.Discount <= 0 {
		return p.Price
	}
	factor := decimal.NewFromInt(int64(100 - p.Discount)).Div(decimal.NewFromInt(100))
	return p.Price.Mul(factor).Round(2)
}

// CartLine is one row of a shopper's cart.
type CartLine struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Total returns the line total at the product's final price.
func (l *CartLine) Total() decimal.Decimal {
	return l.Product.FinalPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}
