package storefront

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/storefront-sync/pkg/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// DefaultCurrency is appended to rendered prices.
const DefaultCurrency = "BYN"

// Renderer renders storefront pages and the listing fragments.
type Renderer struct {
	tmpl     *template.Template
	currency string
}

// NewRenderer parses the embedded templates.
func NewRenderer(currency string) (*Renderer, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, currency: currency}, nil
}

// Money formats an amount with two decimals and the currency code.
func (r *Renderer) Money(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + r.currency
}

// Header is the per-session state shown on every page.
type Header struct {
	Title         string
	CartCount     int
	WishlistCount int
}

type productView struct {
	ID       string
	Name     string
	Price    string
	Discount int
	Wished   bool
}

type pageView struct {
	Number  int
	Href    string
	Current bool
}

type optionView struct {
	ID      string
	Name    string
	Checked bool
}

type lineView struct {
	ID       string
	Name     string
	Quantity int
	Total    string
}

func (r *Renderer) products(ps []domain.Product, wished map[string]bool) []productView {
	out := make([]productView, 0, len(ps))
	for i := range ps {
		out = append(out, productView{
			ID:       ps[i].ID,
			Name:     ps[i].Name,
			Price:    r.Money(ps[i].FinalPrice()),
			Discount: ps[i].Discount,
			Wished:   wished[ps[i].ID],
		})
	}
	return out
}

func pages(l *Listing, f *Filter) []pageView {
	base := f.Values()
	out := make([]pageView, 0, l.NumPages)
	for _, n := range l.PageNumbers() {
		v := maps.Clone(base)
		v.Set("page", strconv.Itoa(n))
		out = append(out, pageView{
			Number:  n,
			Href:    "?" + v.Encode(),
			Current: n == l.Number,
		})
	}
	return out
}

// Fragments renders the product list and pagination markup for a listing,
// as returned by the filtered catalog endpoint.
func (r *Renderer) Fragments(l *Listing, f *Filter, wished map[string]bool) (*domain.CatalogResponse, error) {
	var products, pagination bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&products, "product_list", r.products(l.Products, wished)); err != nil {
		return nil, fmt.Errorf("rendering product list: %w", err)
	}
	if err := r.tmpl.ExecuteTemplate(&pagination, "pagination", pages(l, f)); err != nil {
		return nil, fmt.Errorf("rendering pagination: %w", err)
	}
	return &domain.CatalogResponse{
		ProductsHTML:   products.String(),
		PaginationHTML: pagination.String(),
	}, nil
}

// ProductsPage is the data behind the listing page.
type ProductsPage struct {
	Header     Header
	Categories []domain.Category
	Brands     []domain.Brand
	Filter     Filter
	Listing    Listing
	Wished     map[string]bool
}

// RenderProducts writes the listing page.
func (r *Renderer) RenderProducts(w io.Writer, p *ProductsPage) error {
	data := struct {
		Header     Header
		Categories []optionView
		Brands     []optionView
		MinPrice   string
		MaxPrice   string
		Search     string
		Products   []productView
		Pages      []pageView
	}{
		Header:   p.Header,
		Search:   p.Filter.Search,
		Products: r.products(p.Listing.Products, p.Wished),
		Pages:    pages(&p.Listing, &p.Filter),
	}
	for _, c := range p.Categories {
		data.Categories = append(data.Categories, optionView{c.ID, c.Name, slices.Contains(p.Filter.Categories, c.ID)})
	}
	for _, b := range p.Brands {
		data.Brands = append(data.Brands, optionView{b.ID, b.Name, slices.Contains(p.Filter.Brands, b.ID)})
	}
	if p.Filter.MinPrice.Valid {
		data.MinPrice = p.Filter.MinPrice.Decimal.String()
	}
	if p.Filter.MaxPrice.Valid {
		data.MaxPrice = p.Filter.MaxPrice.Decimal.String()
	}
	if data.Header.Title == "" {
		data.Header.Title = "Catalog"
	}
	return r.tmpl.ExecuteTemplate(w, "products", data)
}

// RenderCart writes the cart page.
func (r *Renderer) RenderCart(w io.Writer, h Header, cart CartSummary) error {
	data := struct {
		Header   Header
		Lines    []lineView
		Total    string
		Quantity int
	}{
		Header:   h,
		Total:    r.Money(cart.Total),
		Quantity: cart.Quantity,
	}
	for i := range cart.Lines {
		l := &cart.Lines[i]
		data.Lines = append(data.Lines, lineView{
			ID:       l.ID,
			Name:     l.Product.Name,
			Quantity: l.Quantity,
			Total:    r.Money(l.Total()),
		})
	}
	if data.Header.Title == "" {
		data.Header.Title = "Cart"
	}
	return r.tmpl.ExecuteTemplate(w, "cart", data)
}

// RenderWishlist writes the favorites page.
func (r *Renderer) RenderWishlist(w io.Writer, h Header, products []domain.Product) error {
	data := struct {
		Header   Header
		Products []productView
	}{
		Header:   h,
		Products: r.products(products, nil),
	}
	if data.Header.Title == "" {
		data.Header.Title = "Favorites"
	}
	return r.tmpl.ExecuteTemplate(w, "favorites", data)
}
