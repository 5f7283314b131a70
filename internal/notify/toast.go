package notify

import (
	"fmt"
	"html"
	"log/slog"
	"time"

	"github.com/google/uuid"
	xhtml "golang.org/x/net/html"

	"github.com/donaldgifford/storefront-sync/internal/dom"
	"github.com/donaldgifford/storefront-sync/internal/metrics"
	"github.com/donaldgifford/storefront-sync/pkg/logger"
)

const (
	defaultContainer = "#toast-container"
	defaultVisible   = 2 * time.Second
	defaultFade      = 500 * time.Millisecond
	defaultFadeClass = "toast-fading"
)

// Toaster renders toasts into a container element of the page. Each toast
// lives for the visible duration, then carries the fade class for the fade
// duration, then is detached. Toasts are timed independently of each other.
type Toaster struct {
	doc       *dom.Document
	sched     Scheduler
	container string
	visible   time.Duration
	fade      time.Duration
	fadeClass string
	nowFunc   func() time.Time
	log       *slog.Logger
}

// ToasterOption configures a Toaster.
type ToasterOption func(*Toaster)

// WithContainer overrides the container selector.
func WithContainer(selector string) ToasterOption {
	return func(t *Toaster) {
		t.container = selector
	}
}

// WithDurations overrides the visible and fade durations.
func WithDurations(visible, fade time.Duration) ToasterOption {
	return func(t *Toaster) {
		t.visible = visible
		t.fade = fade
	}
}

// WithFadeClass overrides the class applied during the fade phase.
func WithFadeClass(class string) ToasterOption {
	return func(t *Toaster) {
		t.fadeClass = class
	}
}

// WithNowFunc overrides the clock used for Message.CreatedAt.
func WithNowFunc(f func() time.Time) ToasterOption {
	return func(t *Toaster) {
		t.nowFunc = f
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ToasterOption {
	return func(t *Toaster) {
		t.log = logger.Component(l, "toast")
	}
}

// NewToaster creates a Toaster for doc. sched must run callbacks on the
// goroutine that owns doc.
func NewToaster(doc *dom.Document, sched Scheduler, opts ...ToasterOption) *Toaster {
	t := &Toaster{
		doc:       doc,
		sched:     sched,
		container: defaultContainer,
		visible:   defaultVisible,
		fade:      defaultFade,
		fadeClass: defaultFadeClass,
		nowFunc:   time.Now,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Notify implements Notifier.
func (t *Toaster) Notify(text string, sev Severity) {
	t.Show(text, sev)
}

// Show renders a toast and schedules its removal. It reports false, without
// error, when the page has no toast container.
func (t *Toaster) Show(text string, sev Severity) (Message, bool) {
	if !sev.Valid() {
		sev = SeverityInfo
	}
	msg := Message{
		ID:        uuid.NewString(),
		Text:      text,
		Severity:  sev,
		CreatedAt: t.nowFunc(),
	}

	container := t.doc.First(t.container)
	if container == nil {
		t.log.Debug("toast container missing, message dropped",
			"container", t.container,
			"severity", string(sev),
		)
		return msg, false
	}

	fragment := fmt.Sprintf(`<div class="alert alert-%s" role="alert" data-toast-id="%s">%s</div>`,
		sev, msg.ID, html.EscapeString(text))
	added := t.doc.AppendHTML(container, fragment)
	if len(added) == 0 {
		return msg, false
	}
	node := added[0]

	metrics.ToastsShownTotal.WithLabelValues(string(sev)).Inc()

	t.sched.AfterFunc(t.visible, func() {
		t.startFade(node)
		t.sched.AfterFunc(t.fade, func() {
			t.doc.Remove(node)
		})
	})

	return msg, true
}

// Active returns the IDs of toasts currently attached, oldest first.
func (t *Toaster) Active() []string {
	var ids []string
	for _, n := range t.doc.Find(t.container + " [data-toast-id]").Nodes {
		if id, ok := dom.Attr(n, "data-toast-id"); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (t *Toaster) startFade(n *xhtml.Node) {
	if !t.doc.Attached(n) {
		return
	}
	dom.Select(n).AddClass(t.fadeClass)
}
