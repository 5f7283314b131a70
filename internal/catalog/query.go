package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// PageParam is the query parameter carrying the requested page.
const PageParam = "page"

// Pair is one non-empty form field.
type Pair struct {
	Name  string
	Value string
}

// FilterQuery is the canonical form of a catalog filter: the non-empty form
// fields in document order, plus the requested page. Page values of 1 or
// less mean "no explicit page" and are never encoded.
type FilterQuery struct {
	Pairs []Pair
	Page  int
}

// Add appends a field, dropping empty values.
func (q *FilterQuery) Add(name, value string) {
	if name == "" || value == "" {
		return
	}
	q.Pairs = append(q.Pairs, Pair{Name: name, Value: value})
}

// Values returns every value recorded for name.
func (q FilterQuery) Values(name string) []string {
	var out []string
	for _, p := range q.Pairs {
		if p.Name == name {
			out = append(out, p.Value)
		}
	}
	return out
}

// Has reports whether the pair name=value is present.
func (q FilterQuery) Has(name, value string) bool {
	for _, p := range q.Pairs {
		if p.Name == name && p.Value == value {
			return true
		}
	}
	return false
}

// WithPage returns a copy of q targeting page.
func (q FilterQuery) WithPage(page int) FilterQuery {
	out := FilterQuery{Pairs: append([]Pair(nil), q.Pairs...), Page: page}
	return out
}

// IsZero reports whether q selects the unfiltered first page.
func (q FilterQuery) IsZero() bool {
	return len(q.Pairs) == 0 && q.Page <= 1
}

// Encode renders q as a query string. Field order is preserved and the page,
// if any, comes last, so equal queries always encode identically.
func (q FilterQuery) Encode() string {
	var b strings.Builder
	for _, p := range q.Pairs {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	if q.Page > 1 {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(PageParam)
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(q.Page))
	}
	return b.String()
}

// String implements fmt.Stringer.
func (q FilterQuery) String() string {
	return q.Encode()
}

// ParseQuery reads a query string, with or without the leading "?", back
// into canonical form. Empty values are dropped and an unparsable page is
// treated as no page.
func ParseQuery(raw string) FilterQuery {
	raw = strings.TrimPrefix(raw, "?")

	var q FilterQuery
	for part := range strings.SplitSeq(raw, "&") {
		if part == "" {
			continue
		}
		name, value, _ := strings.Cut(part, "=")
		name = unescape(name)
		value = unescape(value)
		if name == PageParam {
			if n, err := strconv.Atoi(value); err == nil && n > 1 {
				q.Page = n
			}
			continue
		}
		q.Add(name, value)
	}
	return q
}

// PageFromHref extracts the page number from a pagination link. Links with
// no usable page point at the first page.
func PageFromHref(href string) int {
	u, err := url.Parse(href)
	if err != nil {
		return 1
	}
	n, err := strconv.Atoi(u.Query().Get(PageParam))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func unescape(s string) string {
	v, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return v
}
