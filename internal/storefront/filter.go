package storefront

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/storefront-sync/pkg/types"
)

// Filter narrows the product listing. Empty fields do not constrain it.
type Filter struct {
	Categories []string
	Brands     []string
	MinPrice   decimal.NullDecimal
	MaxPrice   decimal.NullDecimal
	Search     string
	Page       string // raw page parameter; see paginate
}

// ParseFilter reads a Filter from listing query parameters. Unparsable
// prices are ignored.
func ParseFilter(v url.Values) Filter {
	return Filter{
		Categories: nonEmpty(v["category"]),
		Brands:     nonEmpty(v["brand"]),
		MinPrice:   parsePrice(v.Get("min_price")),
		MaxPrice:   parsePrice(v.Get("max_price")),
		Search:     strings.TrimSpace(v.Get("q")),
		Page:       v.Get("page"),
	}
}

// Matches reports whether p passes every constraint of f. Prices compare
// against the list price.
func (f *Filter) Matches(p *domain.Product) bool {
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.CategoryID) {
		return false
	}
	if len(f.Brands) > 0 && !slices.Contains(f.Brands, p.BrandID) {
		return false
	}
	if f.MinPrice.Valid && p.Price.LessThan(f.MinPrice.Decimal) {
		return false
	}
	if f.MaxPrice.Valid && p.Price.GreaterThan(f.MaxPrice.Decimal) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// Values encodes f back into query parameters, without the page.
func (f *Filter) Values() url.Values {
	v := url.Values{}
	for _, c := range f.Categories {
		v.Add("category", c)
	}
	for _, b := range f.Brands {
		v.Add("brand", b)
	}
	if f.MinPrice.Valid {
		v.Set("min_price", f.MinPrice.Decimal.String())
	}
	if f.MaxPrice.Valid {
		v.Set("max_price", f.MaxPrice.Decimal.String())
	}
	if f.Search != "" {
		v.Set("q", f.Search)
	}
	return v
}

func parsePrice(raw string) decimal.NullDecimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Listing is one page of filtered products.
type Listing struct {
	Products []domain.Product
	Number   int // 1-based
	NumPages int
	Total    int
}

// HasPrev reports whether a previous page exists.
func (l *Listing) HasPrev() bool { return l.Number > 1 }

// HasNext reports whether a following page exists.
func (l *Listing) HasNext() bool { return l.Number < l.NumPages }

// PageNumbers returns 1..NumPages.
func (l *Listing) PageNumbers() []int {
	out := make([]int, l.NumPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// paginate slices products into pages of size. A page that is not an
// integer yields the first page; one outside the range yields the last.
// There is always at least one page.
func paginate(products []domain.Product, rawPage string, size int) Listing {
	total := len(products)
	numPages := max(1, (total+size-1)/size)

	page, err := strconv.Atoi(strings.TrimSpace(rawPage))
	switch {
	case err != nil:
		page = 1
	case page < 1 || page > numPages:
		page = numPages
	}

	start := min((page-1)*size, total)
	end := min(start+size, total)
	return Listing{
		Products: products[start:end],
		Number:   page,
		NumPages: numPages,
		Total:    total,
	}
}
