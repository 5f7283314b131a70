// Package dom holds the page model the interaction layer mutates: a parsed
// HTML document, the listener registry used for delegated event handling, and
// the session history that stands in for the address bar.
//
// A Document is not safe for concurrent use. Every call must come from the
// page's loop goroutine.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a mutable HTML document plus its event listeners.
type Document struct {
	doc       *goquery.Document
	listeners map[*html.Node][]binding
}

// Parse reads a full HTML page.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &Document{
		doc:       doc,
		listeners: make(map[*html.Node][]binding),
	}, nil
}

// ParseString is Parse for an in-memory page.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Root returns the document node. It is never replaced, which makes it the
// anchor for delegated listeners.
func (d *Document) Root() *html.Node {
	return d.doc.Nodes[0]
}

// Find returns every element matching selector.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// First returns the first element matching selector, or nil.
func (d *Document) First(selector string) *html.Node {
	sel := d.doc.Find(selector)
	if sel.Length() == 0 {
		return nil
	}
	return sel.Nodes[0]
}

// Exists reports whether selector matches anything.
func (d *Document) Exists(selector string) bool {
	return d.doc.Find(selector).Length() > 0
}

// Count returns the number of elements matching selector.
func (d *Document) Count(selector string) int {
	return d.doc.Find(selector).Length()
}

// ByID returns the element with the given id attribute, or nil.
func (d *Document) ByID(id string) *html.Node {
	sel := d.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id
	})
	if sel.Length() == 0 {
		return nil
	}
	return sel.Nodes[0]
}

// Select wraps a node in a selection so goquery traversal and manipulation
// can be applied to it.
func Select(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}

// Attached reports whether n is still part of the document tree.
func (d *Document) Attached(n *html.Node) bool {
	root := d.Root()
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == root {
			return true
		}
	}
	return false
}

// Text returns the trimmed text of the first match.
func (d *Document) Text(selector string) (string, bool) {
	n := d.First(selector)
	if n == nil {
		return "", false
	}
	return strings.TrimSpace(Select(n).Text()), true
}

// SetText replaces the text content of the first match. A missing target is
// a no-op and reports false.
func (d *Document) SetText(selector, text string) bool {
	n := d.First(selector)
	if n == nil {
		return false
	}
	d.pruneSubtree(n, false)
	Select(n).SetText(text)
	return true
}

// SetInnerHTML swaps the children of the first match for the parsed
// fragment. Listeners bound to the discarded children are dropped with them.
func (d *Document) SetInnerHTML(selector, fragment string) bool {
	n := d.First(selector)
	if n == nil {
		return false
	}
	d.pruneSubtree(n, false)
	Select(n).SetHtml(fragment)
	return true
}

// AppendHTML parses fragment and appends it to n, returning the new element
// nodes.
func (d *Document) AppendHTML(n *html.Node, fragment string) []*html.Node {
	before := n.LastChild
	Select(n).AppendHtml(fragment)

	var added []*html.Node
	start := n.FirstChild
	if before != nil {
		start = before.NextSibling
	}
	for c := start; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			added = append(added, c)
		}
	}
	return added
}

// Remove detaches n and its listeners from the document. Detaching a node
// that is already gone is a no-op.
func (d *Document) Remove(n *html.Node) bool {
	if n == nil || n.Parent == nil {
		return false
	}
	d.pruneSubtree(n, true)
	n.Parent.RemoveChild(n)
	return true
}

// HTML renders the whole document.
func (d *Document) HTML() (string, error) {
	var b strings.Builder
	if err := html.Render(&b, d.Root()); err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}
	return b.String(), nil
}

// Attr returns the attribute value of n.
func Attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets (or adds) an attribute on n.
func SetAttr(n *html.Node, name, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr deletes an attribute from n.
func RemoveAttr(n *html.Node, name string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != name {
			kept = append(kept, a)
		}
	}
	n.Attr = kept
}

// HasAttr reports whether n carries the attribute.
func HasAttr(n *html.Node, name string) bool {
	_, ok := Attr(n, name)
	return ok
}

// pruneSubtree drops listeners registered below n (and on n itself when
// self is set).
func (d *Document) pruneSubtree(n *html.Node, self bool) {
	if len(d.listeners) == 0 {
		return
	}
	for node := range d.listeners {
		if node == n && !self {
			continue
		}
		if isDescendant(node, n) {
			delete(d.listeners, node)
		}
	}
}

func isDescendant(n, ancestor *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}
