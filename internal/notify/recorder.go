package notify

import (
	"sync"
	"time"
)

// Recorder keeps every message it is given. Sessions use it to report
// outcomes after a gesture settles.
type Recorder struct {
	mu   sync.Mutex
	msgs []Message
}

// Notify implements Notifier.
func (r *Recorder) Notify(text string, sev Severity) {
	if !sev.Valid() {
		sev = SeverityInfo
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, Message{Text: text, Severity: sev, CreatedAt: time.Now()})
}

// Messages returns a copy of the recorded messages, oldest first.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.msgs...)
}

// Drain returns the recorded messages and forgets them.
func (r *Recorder) Drain() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.msgs
	r.msgs = nil
	return out
}
