package catalog

// Selectors locates the widgets the controller drives. Empty fields take
// their default.
type Selectors struct {
	FilterForm     string `yaml:"filter_form"`
	ResetFilters   string `yaml:"reset_filters"`
	ProductList    string `yaml:"product_list"`
	Pagination     string `yaml:"pagination"`
	PaginationLink string `yaml:"pagination_link"`

	AddToCart      string `yaml:"add_to_cart"`
	RemoveFromCart string `yaml:"remove_from_cart"`
	CartRow        string `yaml:"cart_row"`
	CartTotalPrice string `yaml:"cart_total_price"`
	CartTotalQty   string `yaml:"cart_total_quantity"`
	CartContent    string `yaml:"cart_content"`

	WishlistToggle  string `yaml:"wishlist_toggle"`
	WishlistCard    string `yaml:"wishlist_card"`
	WishlistProduct string `yaml:"wishlist_product"`
	WishlistContent string `yaml:"wishlist_content"`
	WishlistIconOn  string `yaml:"wishlist_icon_on"`
	WishlistIconOff string `yaml:"wishlist_icon_off"`

	NewsletterForm  string `yaml:"newsletter_form"`
	NewsletterEmail string `yaml:"newsletter_email"`
}

// DefaultSelectors returns the storefront's standard markup hooks.
func DefaultSelectors() Selectors {
	return Selectors{
		FilterForm:     "#filter-form",
		ResetFilters:   "#reset-filters",
		ProductList:    "#product-list",
		Pagination:     "#pagination",
		PaginationLink: "#pagination a[href]",

		AddToCart:      ".add-to-cart-btn",
		RemoveFromCart: ".remove-from-cart-btn",
		CartRow:        ".cart-item-row",
		CartTotalPrice: "#cart-total-price",
		CartTotalQty:   "#cart-total-quantity",
		CartContent:    ".content-cart",

		WishlistToggle:  ".add-to-wishlist",
		WishlistCard:    "favorite-product-",
		WishlistProduct: ".product",
		WishlistContent: ".content-cards",
		WishlistIconOn:  "fa-heart",
		WishlistIconOff: "fa-heart-o",

		NewsletterForm:  ".newsletter form",
		NewsletterEmail: `input[type="email"]`,
	}
}

// WithDefaults fills the empty fields of s from DefaultSelectors.
func (s Selectors) WithDefaults() Selectors {
	d := DefaultSelectors()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&s.FilterForm, d.FilterForm)
	fill(&s.ResetFilters, d.ResetFilters)
	fill(&s.ProductList, d.ProductList)
	fill(&s.Pagination, d.Pagination)
	fill(&s.PaginationLink, d.PaginationLink)
	fill(&s.AddToCart, d.AddToCart)
	fill(&s.RemoveFromCart, d.RemoveFromCart)
	fill(&s.CartRow, d.CartRow)
	fill(&s.CartTotalPrice, d.CartTotalPrice)
	fill(&s.CartTotalQty, d.CartTotalQty)
	fill(&s.CartContent, d.CartContent)
	fill(&s.WishlistToggle, d.WishlistToggle)
	fill(&s.WishlistCard, d.WishlistCard)
	fill(&s.WishlistProduct, d.WishlistProduct)
	fill(&s.WishlistContent, d.WishlistContent)
	fill(&s.WishlistIconOn, d.WishlistIconOn)
	fill(&s.WishlistIconOff, d.WishlistIconOff)
	fill(&s.NewsletterForm, d.NewsletterForm)
	fill(&s.NewsletterEmail, d.NewsletterEmail)
	return s
}

// Messages holds the toast texts and empty-state blocks.
type Messages struct {
	Unreachable      string `yaml:"unreachable"`
	CartAdded        string `yaml:"cart_added"`
	CartAddFailed    string `yaml:"cart_add_failed"`
	CartRemoved      string `yaml:"cart_removed"`
	CartRemoveFailed string `yaml:"cart_remove_failed"`
	WishlistAdded    string `yaml:"wishlist_added"`
	WishlistRemoved  string `yaml:"wishlist_removed"`
	WishlistFailed   string `yaml:"wishlist_failed"`
	Subscribed       string `yaml:"subscribed"`
	SubscribeFailed  string `yaml:"subscribe_failed"`
	FilterFailed     string `yaml:"filter_failed"`
	EmptyCart        string `yaml:"empty_cart"`
	EmptyWishlist    string `yaml:"empty_wishlist"`
}

// DefaultMessages returns the default texts.
func DefaultMessages() Messages {
	return Messages{
		Unreachable:      "Could not reach the store. Please try again.",
		CartAdded:        "Added to cart!",
		CartAddFailed:    "Could not add the item to the cart.",
		CartRemoved:      "Removed from cart.",
		CartRemoveFailed: "Could not remove the item from the cart.",
		WishlistAdded:    "Added to favorites!",
		WishlistRemoved:  "Removed from favorites.",
		WishlistFailed:   "Could not update favorites.",
		Subscribed:       "Thanks for subscribing!",
		SubscribeFailed:  "Subscription failed.",
		FilterFailed:     "Could not filter products.",
		EmptyCart: `<div class="text-center empty-state" style="padding: 8px 0;">` +
			`<h4 class="text-muted">Your cart is empty.</h4></div>`,
		EmptyWishlist: `<div class="text-center empty-state" style="padding: 76px 0">` +
			`<h4 class="text-muted">You have no favorite products yet.</h4></div>`,
	}
}

// WithDefaults fills the empty fields of m from DefaultMessages.
func (m Messages) WithDefaults() Messages {
	d := DefaultMessages()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&m.Unreachable, d.Unreachable)
	fill(&m.CartAdded, d.CartAdded)
	fill(&m.CartAddFailed, d.CartAddFailed)
	fill(&m.CartRemoved, d.CartRemoved)
	fill(&m.CartRemoveFailed, d.CartRemoveFailed)
	fill(&m.WishlistAdded, d.WishlistAdded)
	fill(&m.WishlistRemoved, d.WishlistRemoved)
	fill(&m.WishlistFailed, d.WishlistFailed)
	fill(&m.Subscribed, d.Subscribed)
	fill(&m.SubscribeFailed, d.SubscribeFailed)
	fill(&m.FilterFailed, d.FilterFailed)
	fill(&m.EmptyCart, d.EmptyCart)
	fill(&m.EmptyWishlist, d.EmptyWishlist)
	return m
}
