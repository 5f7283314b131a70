package catalog

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/donaldgifford/storefront-sync/internal/dom"
)

const fieldSelector = "input, select, textarea"

// skippedInputs never contribute to a serialized form.
var skippedInputs = map[string]bool{
	"submit": true,
	"button": true,
	"reset":  true,
	"image":  true,
	"file":   true,
}

func inputType(n *html.Node) string {
	t, _ := dom.Attr(n, "type")
	if t == "" {
		return "text"
	}
	return strings.ToLower(t)
}

func isCheckable(n *html.Node) bool {
	t := inputType(n)
	return t == "checkbox" || t == "radio"
}

// CollectForm serializes the fields of form in document order, keeping only
// non-empty values. A "page" field sets the query page instead of a pair.
func CollectForm(form *html.Node) FilterQuery {
	var q FilterQuery
	if form == nil {
		return q
	}

	dom.Select(form).Find(fieldSelector).Each(func(_ int, s *goquery.Selection) {
		n := s.Nodes[0]
		name, _ := dom.Attr(n, "name")
		if name == "" || dom.HasAttr(n, "disabled") {
			return
		}
		for _, v := range fieldValues(n) {
			if name == PageParam {
				if p, err := strconv.Atoi(v); err == nil && p > 1 {
					q.Page = p
				}
				continue
			}
			q.Add(name, v)
		}
	})
	return q
}

func fieldValues(n *html.Node) []string {
	switch n.Data {
	case "input":
		t := inputType(n)
		if skippedInputs[t] {
			return nil
		}
		if isCheckable(n) {
			if !dom.HasAttr(n, "checked") {
				return nil
			}
			v, ok := dom.Attr(n, "value")
			if !ok {
				v = "on"
			}
			return []string{v}
		}
		v, _ := dom.Attr(n, "value")
		return []string{v}
	case "select":
		return selectedOptions(n)
	case "textarea":
		return []string{dom.Select(n).Text()}
	}
	return nil
}

func selectedOptions(n *html.Node) []string {
	opts := dom.Select(n).Find("option")
	var out []string
	opts.Each(func(_ int, s *goquery.Selection) {
		if dom.HasAttr(s.Nodes[0], "selected") {
			out = append(out, optionValue(s))
		}
	})
	if len(out) == 0 && !dom.HasAttr(n, "multiple") && opts.Length() > 0 {
		out = append(out, optionValue(opts.First()))
	}
	return out
}

func optionValue(s *goquery.Selection) string {
	if v, ok := s.Attr("value"); ok {
		return v
	}
	return strings.TrimSpace(s.Text())
}

// ClearForm resets every user-editable field of form: boxes are unchecked,
// typed values emptied and selections dropped. Hidden fields other than
// "page" are left alone.
func ClearForm(form *html.Node) {
	if form == nil {
		return
	}
	dom.Select(form).Find(fieldSelector).Each(func(_ int, s *goquery.Selection) {
		n := s.Nodes[0]
		switch n.Data {
		case "input":
			t := inputType(n)
			switch {
			case skippedInputs[t]:
			case isCheckable(n):
				dom.RemoveAttr(n, "checked")
			case t == "hidden":
				if name, _ := dom.Attr(n, "name"); name == PageParam {
					dom.SetAttr(n, "value", "")
				}
			default:
				dom.SetAttr(n, "value", "")
			}
		case "select":
			s.Find("option").Each(func(_ int, o *goquery.Selection) {
				dom.RemoveAttr(o.Nodes[0], "selected")
			})
		case "textarea":
			s.SetText("")
		}
	})
}

// HydrateForm makes the fields named in q reflect it, so a reloaded URL
// shows the filters that produced the listing. Fields q does not mention
// keep their rendered state.
func HydrateForm(form *html.Node, q FilterQuery) {
	if form == nil {
		return
	}
	named := make(map[string]bool, len(q.Pairs))
	for _, p := range q.Pairs {
		named[p.Name] = true
	}

	dom.Select(form).Find(fieldSelector).Each(func(_ int, s *goquery.Selection) {
		n := s.Nodes[0]
		name, _ := dom.Attr(n, "name")
		if !named[name] {
			return
		}
		switch n.Data {
		case "input":
			if skippedInputs[inputType(n)] {
				return
			}
			if isCheckable(n) {
				v, ok := dom.Attr(n, "value")
				if !ok {
					v = "on"
				}
				setChecked(n, q.Has(name, v))
				return
			}
			dom.SetAttr(n, "value", q.Values(name)[0])
		case "select":
			s.Find("option").Each(func(_ int, o *goquery.Selection) {
				setSelected(o.Nodes[0], q.Has(name, optionValue(o)))
			})
		case "textarea":
			s.SetText(q.Values(name)[0])
		}
	})
}

// SetFieldValue sets the value of the first field called name inside root.
// It returns the field, or nil when there is none.
func SetFieldValue(root *html.Node, name, value string) *html.Node {
	n := findField(root, name, "")
	if n == nil {
		return nil
	}
	switch n.Data {
	case "select":
		dom.Select(n).Find("option").Each(func(_ int, o *goquery.Selection) {
			setSelected(o.Nodes[0], optionValue(o) == value)
		})
	case "textarea":
		dom.Select(n).SetText(value)
	default:
		dom.SetAttr(n, "value", value)
	}
	return n
}

// SetFieldChecked checks or unchecks the box or radio called name with the
// given value. Checking a radio unchecks its siblings of the same name.
func SetFieldChecked(root *html.Node, name, value string, on bool) *html.Node {
	n := findField(root, name, value)
	if n == nil || n.Data != "input" || !isCheckable(n) {
		return nil
	}
	if on && inputType(n) == "radio" {
		dom.Select(root).Find(`input[type="radio"]`).Each(func(_ int, s *goquery.Selection) {
			if other, _ := dom.Attr(s.Nodes[0], "name"); other == name {
				dom.RemoveAttr(s.Nodes[0], "checked")
			}
		})
	}
	setChecked(n, on)
	return n
}

func findField(root *html.Node, name, value string) *html.Node {
	if root == nil {
		return nil
	}
	var found *html.Node
	dom.Select(root).Find(fieldSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		n := s.Nodes[0]
		if got, _ := dom.Attr(n, "name"); got != name {
			return true
		}
		if value != "" {
			if got, _ := dom.Attr(n, "value"); got != value {
				return true
			}
		}
		found = n
		return false
	})
	return found
}

func setChecked(n *html.Node, on bool) {
	if on {
		dom.SetAttr(n, "checked", "")
		return
	}
	dom.RemoveAttr(n, "checked")
}

func setSelected(n *html.Node, on bool) {
	if on {
		dom.SetAttr(n, "selected", "")
		return
	}
	dom.RemoveAttr(n, "selected")
}
