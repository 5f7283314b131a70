package storefront

import (
	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/storefront-sync/pkg/types"
)

// SeedCatalog returns the demo catalog, newest product first.
func SeedCatalog() ([]domain.Category, []domain.Brand, []domain.Product) {
	categories := []domain.Category{
		{ID: "1", Name: "Laptops", Slug: "laptops"},
		{ID: "2", Name: "Phones", Slug: "phones"},
		{ID: "3", Name: "Audio", Slug: "audio"},
	}
	brands := []domain.Brand{
		{ID: "1", Name: "Acme", Slug: "acme"},
		{ID: "2", Name: "Globex", Slug: "globex"},
		{ID: "3", Name: "Initech", Slug: "initech"},
	}
	products := []domain.Product{
		product("1", "Acme Buds", "3", "1", "9.99", 0),
		product("2", "Globex Headphones", "3", "2", "59.00", 10),
		product("3", "Initech Soundbar", "3", "3", "129.50", 0),
		product("4", "Acme Phone S", "2", "1", "349.00", 5),
		product("5", "Globex Phone Pro", "2", "2", "899.99", 0),
		product("6", "Acme Book Air", "1", "1", "999.00", 15),
		product("7", "Initech Workstation", "1", "3", "1899.00", 0),
		product("8", "Globex Book 14", "1", "2", "749.90", 0),
	}
	return categories, brands, products
}

func product(id, name, category, brand, price string, discount int) domain.Product {
	return domain.Product{
		ID:         id,
		Name:       name,
		Slug:       slugify(name),
		CategoryID: category,
		BrandID:    brand,
		Price:      decimal.RequireFromString(price),
		Discount:   discount,
	}
}

func slugify(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ':
			out = append(out, '-')
		}
	}
	return string(out)
}
