// Package notify delivers transient user feedback. The DOM Toaster renders
// auto-dismissing toasts into the page; LogNotifier records the same messages
// for headless runs.
package notify

import (
	"time"
)

// Severity selects the visual style of a toast.
type Severity string

// Severity constants.
const (
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
	SeverityInfo    Severity = "info"
)

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeveritySuccess, SeverityDanger, SeverityInfo:
		return true
	default:
		return false
	}
}

// Message is a single toast.
type Message struct {
	ID        string
	Text      string
	Severity  Severity
	CreatedAt time.Time
}

// Notifier is fire and forget: implementations never block the caller and
// never report failure.
type Notifier interface {
	Notify(text string, sev Severity)
}

// Scheduler runs fn after d. The stop function reports whether it cancelled fn.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// Multi fans a message out to several notifiers in order.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(text string, sev Severity) {
	for _, n := range m {
		if n != nil {
			n.Notify(text, sev)
		}
	}
}
