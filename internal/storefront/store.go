// Package storefront implements an in-memory reference storefront: a small
// catalog, per-session carts and wishlists, and a newsletter subscriber list.
// It backs the mock server the CLI can run and the end-to-end tests.
package storefront

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/storefront-sync/pkg/types"
)

// Store errors.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrAlreadySubscribed = errors.New("already subscribed")
	ErrEmptyCatalog      = errors.New("catalog is empty")
)

// DefaultPageSize is the number of products per listing page.
const DefaultPageSize = 3

// CartSummary is a session's cart with its totals.
type CartSummary struct {
	Lines    []domain.CartLine
	Total    decimal.Decimal
	Quantity int
}

// Store holds storefront state. It is safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	categories  []domain.Category
	brands      []domain.Brand
	products    []domain.Product
	carts       map[string][]domain.CartLine
	wishlists   map[string][]string
	subscribers map[string]time.Time
	nextLine    int
	pageSize    int
	nowFunc     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithPageSize sets the listing page size.
func WithPageSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithCatalog replaces the seeded catalog. Products are listed in the
// order given.
func WithCatalog(categories []domain.Category, brands []domain.Brand, products []domain.Product) Option {
	return func(s *Store) {
		s.categories = categories
		s.brands = brands
		s.products = products
	}
}

// WithNowFunc sets the clock used to stamp subscriptions.
func WithNowFunc(f func() time.Time) Option {
	return func(s *Store) {
		s.nowFunc = f
	}
}

// New creates a Store seeded with the demo catalog.
func New(opts ...Option) *Store {
	categories, brands, products := SeedCatalog()
	s := &Store{
		categories:  categories,
		brands:      brands,
		products:    products,
		carts:       make(map[string][]domain.CartLine),
		wishlists:   make(map[string][]string),
		subscribers: make(map[string]time.Time),
		pageSize:    DefaultPageSize,
		nowFunc:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping reports whether the catalog is loaded.
func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.products) == 0 {
		return ErrEmptyCatalog
	}
	return nil
}

// Categories returns the catalog categories.
func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

// Brands returns the catalog brands.
func (s *Store) Brands() []domain.Brand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.brands)
}

// Product looks a product up by ID.
func (s *Store) Product(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.product(id)
}

func (s *Store) product(id string) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Filter returns the listing page matching f.
func (s *Store) Filter(f Filter) Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []domain.Product
	for _, p := range s.products {
		if f.Matches(&p) {
			matched = append(matched, p)
		}
	}
	return paginate(matched, f.Page, s.pageSize)
}

// AddToCart adds quantity units of a product to the session's cart. A
// quantity below one adds a single unit. Adding a product already in the
// cart increases its line.
func (s *Store) AddToCart(session, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.product(productID)
	if !ok {
		return ErrProductNotFound
	}
	if quantity <= 0 {
		quantity = 1
	}

	lines := s.carts[session]
	for i := range lines {
		if lines[i].Product.ID == productID {
			lines[i].Quantity += quantity
			return nil
		}
	}
	s.nextLine++
	s.carts[session] = append(lines, domain.CartLine{
		ID:       strconv.Itoa(s.nextLine),
		Product:  p,
		Quantity: quantity,
	})
	return nil
}

// RemoveFromCart deletes a cart line and returns the remaining cart.
func (s *Store) RemoveFromCart(session, itemID string) (CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[session]
	i := slices.IndexFunc(lines, func(l domain.CartLine) bool { return l.ID == itemID })
	if i < 0 {
		return CartSummary{}, ErrCartItemNotFound
	}
	s.carts[session] = slices.Delete(lines, i, i+1)
	return summarize(s.carts[session]), nil
}

// Cart returns the session's cart.
func (s *Store) Cart(session string) CartSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return summarize(s.carts[session])
}

// CartCount returns the number of units in the session's cart.
func (s *Store) CartCount(session string) int {
	return s.Cart(session).Quantity
}

func summarize(lines []domain.CartLine) CartSummary {
	sum := CartSummary{Lines: slices.Clone(lines), Total: decimal.Zero}
	for i := range lines {
		sum.Total = sum.Total.Add(lines[i].Total())
		sum.Quantity += lines[i].Quantity
	}
	return sum
}

// ToggleWishlist adds the product to the session's wishlist, or removes it
// when already present, and reports which happened.
func (s *Store) ToggleWishlist(session, productID string) (domain.WishlistStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.product(productID); !ok {
		return "", ErrProductNotFound
	}
	ids := s.wishlists[session]
	if i := slices.Index(ids, productID); i >= 0 {
		s.wishlists[session] = slices.Delete(ids, i, i+1)
		return domain.WishlistRemoved, nil
	}
	s.wishlists[session] = append(ids, productID)
	return domain.WishlistAdded, nil
}

// Wishlist returns the products on the session's wishlist in the order
// they were added.
func (s *Store) Wishlist(session string) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Product
	for _, id := range s.wishlists[session] {
		if p, ok := s.product(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// WishlistIDs returns the set of product IDs on the session's wishlist.
func (s *Store) WishlistIDs(session string) map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := make(map[string]bool, len(s.wishlists[session]))
	for _, id := range s.wishlists[session] {
		set[id] = true
	}
	return set
}

// WishlistCount returns the number of products on the session's wishlist.
func (s *Store) WishlistCount(session string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.wishlists[session])
}

// Sessions returns the sessions holding a cart or wishlist, sorted.
func (s *Store) Sessions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	for id, lines := range s.carts {
		if len(lines) > 0 {
			seen[id] = true
		}
	}
	for id, ids := range s.wishlists {
		if len(ids) > 0 {
			seen[id] = true
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Subscribe records a newsletter subscription. Addresses compare
// case-insensitively.
func (s *Store) Subscribe(email string) error {
	key := strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subscribers[key]; ok {
		return ErrAlreadySubscribed
	}
	s.subscribers[key] = s.nowFunc()
	return nil
}

// Subscribers returns the subscribed addresses in sorted order.
func (s *Store) Subscribers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.subscribers))
	for email := range s.subscribers {
		out = append(out, email)
	}
	slices.Sort(out)
	return out
}
