package dom

import (
	"fmt"
	"net/url"
)

// History is the session history of a page. PushState changes the visible
// address without reloading the document.
type History struct {
	entries []*url.URL
	index   int
}

// NewHistory starts a history at the page's initial address.
func NewHistory(initial *url.URL) *History {
	u := *initial
	return &History{entries: []*url.URL{&u}}
}

// Location returns a copy of the current address.
func (h *History) Location() *url.URL {
	u := *h.entries[h.index]
	return &u
}

// PushState records ref (resolved against the current address) as a new
// entry and drops any forward entries.
func (h *History) PushState(ref string) error {
	u, err := h.resolve(ref)
	if err != nil {
		return err
	}
	h.entries = append(h.entries[:h.index+1], u)
	h.index++
	return nil
}

// ReplaceState overwrites the current entry.
func (h *History) ReplaceState(ref string) error {
	u, err := h.resolve(ref)
	if err != nil {
		return err
	}
	h.entries[h.index] = u
	return nil
}

// Back moves one entry back. It reports false at the first entry.
func (h *History) Back() bool {
	if h.index == 0 {
		return false
	}
	h.index--
	return true
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) resolve(ref string) (*url.URL, error) {
	rel, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("parsing history entry %q: %w", ref, err)
	}
	return h.entries[h.index].ResolveReference(rel), nil
}
