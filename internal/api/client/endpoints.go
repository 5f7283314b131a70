package client

// Endpoints holds the storefront paths the client calls.
type Endpoints struct {
	CartAdd        string `yaml:"cart_add"`
	CartRemove     string `yaml:"cart_remove"`
	CartCount      string `yaml:"cart_count"`
	WishlistToggle string `yaml:"wishlist_toggle"`
	WishlistCount  string `yaml:"wishlist_count"`
	Subscribe      string `yaml:"subscribe"`
	Catalog        string `yaml:"catalog"`
}

// DefaultEndpoints returns the storefront's standard paths.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		CartAdd:        "/cart/add/",
		CartRemove:     "/cart/remove/",
		CartCount:      "/cart/count/",
		WishlistToggle: "/favorite/toggle/",
		WishlistCount:  "/favorite/count/",
		Subscribe:      "/newsletters/subscribe/",
		Catalog:        "/products/ajax/",
	}
}

func (e Endpoints) withDefaults() Endpoints {
	d := DefaultEndpoints()
	if e.CartAdd == "" {
		e.CartAdd = d.CartAdd
	}
	if e.CartRemove == "" {
		e.CartRemove = d.CartRemove
	}
	if e.CartCount == "" {
		e.CartCount = d.CartCount
	}
	if e.WishlistToggle == "" {
		e.WishlistToggle = d.WishlistToggle
	}
	if e.WishlistCount == "" {
		e.WishlistCount = d.WishlistCount
	}
	if e.Subscribe == "" {
		e.Subscribe = d.Subscribe
	}
	if e.Catalog == "" {
		e.Catalog = d.Catalog
	}
	return e
}
