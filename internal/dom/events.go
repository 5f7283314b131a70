package dom

import (
	"golang.org/x/net/html"
)

// Event types dispatched by the page.
const (
	EventClick  = "click"
	EventSubmit = "submit"
	EventInput  = "input"
	EventChange = "change"
)

// Handler reacts to a dispatched event.
type Handler func(*Event)

// Event is a user gesture travelling from its target up to the document root.
type Event struct {
	Type   string
	Target *html.Node

	// CurrentTarget is the node whose listener is running.
	CurrentTarget *html.Node

	defaultPrevented bool
	stopped          bool
}

// NewEvent creates an event of typ aimed at target.
func NewEvent(typ string, target *html.Node) *Event {
	return &Event{Type: typ, Target: target}
}

// PreventDefault suppresses the browser default (navigation, form post).
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation keeps the event from reaching further ancestors.
func (e *Event) StopPropagation() { e.stopped = true }

// Closest returns the nearest element, starting at the target itself, that
// matches selector, or nil.
func (e *Event) Closest(selector string) *html.Node {
	if e.Target == nil {
		return nil
	}
	sel := Select(e.Target).Closest(selector)
	if sel.Length() == 0 {
		return nil
	}
	return sel.Nodes[0]
}

type binding struct {
	eventType string
	key       string
	fn        Handler
}

// On registers fn for events of typ reaching n. A binding is identified by
// (n, typ, key): registering the same identity again replaces the previous
// handler, so repeated initialization never stacks listeners.
func (d *Document) On(n *html.Node, typ, key string, fn Handler) {
	bs := d.listeners[n]
	for i := range bs {
		if bs[i].eventType == typ && bs[i].key == key {
			bs[i].fn = fn
			return
		}
	}
	d.listeners[n] = append(bs, binding{eventType: typ, key: key, fn: fn})
}

// Off removes the binding identified by (n, typ, key).
func (d *Document) Off(n *html.Node, typ, key string) bool {
	bs := d.listeners[n]
	for i := range bs {
		if bs[i].eventType == typ && bs[i].key == key {
			d.listeners[n] = append(bs[:i], bs[i+1:]...)
			if len(d.listeners[n]) == 0 {
				delete(d.listeners, n)
			}
			return true
		}
	}
	return false
}

// ListenerCount returns the number of live bindings for typ.
func (d *Document) ListenerCount(typ string) int {
	total := 0
	for _, bs := range d.listeners {
		for _, b := range bs {
			if b.eventType == typ {
				total++
			}
		}
	}
	return total
}

// Dispatch delivers ev to every listener on the path from its target to the
// root, innermost first. It reports whether the default action may proceed.
// Targets no longer in the document reach only their own listeners, as
// detached subtrees have no ancestors to delegate to.
func (d *Document) Dispatch(ev *Event) bool {
	if ev.Target == nil {
		return true
	}

	var path []*html.Node
	for n := ev.Target; n != nil; n = n.Parent {
		path = append(path, n)
	}

	for _, n := range path {
		bs := d.listeners[n]
		if len(bs) == 0 {
			continue
		}
		snapshot := make([]binding, len(bs))
		copy(snapshot, bs)

		ev.CurrentTarget = n
		for _, b := range snapshot {
			if b.eventType == ev.Type {
				b.fn(ev)
			}
		}
		if ev.stopped {
			break
		}
	}
	ev.CurrentTarget = nil

	return !ev.defaultPrevented
}
