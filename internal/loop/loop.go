// Package loop provides the single-owner event loop the interaction layer
// runs on. Every document mutation happens inside a task executed by Run;
// network calls run off-loop and hand their continuation back through Post.
package loop

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/donaldgifford/storefront-sync/pkg/logger"
)

// Scheduler runs fn on the loop after d. The returned stop function reports
// whether it prevented fn from being scheduled.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// Loop serializes tasks onto one goroutine.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	pending int
	idle    chan struct{}
	wake    chan struct{}
	log     *slog.Logger
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger used for recovered task panics.
func WithLogger(l *slog.Logger) Option {
	return func(lp *Loop) {
		lp.log = logger.Component(l, "loop")
	}
}

// New creates an idle Loop. Tasks posted before Run starts are kept in order.
func New(opts ...Option) *Loop {
	l := &Loop{
		idle: make(chan struct{}),
		wake: make(chan struct{}, 1),
		log:  logger.Discard(),
	}
	close(l.idle)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run executes queued tasks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-l.wake:
			}
			continue
		}
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		l.exec(fn)
		l.release()
	}
}

// Post queues fn to run on the loop.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.acquireLocked()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Go runs work on its own goroutine and posts the continuation it returns
// (if any) back onto the loop. The loop counts as busy until then.
func (l *Loop) Go(work func() func()) {
	l.acquire()
	go func() {
		defer l.release()
		if then := work(); then != nil {
			l.Post(then)
		}
	}()
}

// AfterFunc schedules fn on the loop after d. A pending timer keeps Wait
// blocked until it fires or is stopped.
func (l *Loop) AfterFunc(d time.Duration, fn func()) func() bool {
	l.acquire()
	t := time.AfterFunc(d, func() {
		l.Post(fn)
		l.release()
	})
	return func() bool {
		if t.Stop() {
			l.release()
			return true
		}
		return false
	}
}

// Detached returns a Scheduler whose timers do not hold Wait open. Toast
// lifetimes use it so settling the page never waits for a fade.
func (l *Loop) Detached() Scheduler {
	return detached{l: l}
}

type detached struct {
	l *Loop
}

func (d detached) AfterFunc(dur time.Duration, fn func()) func() bool {
	t := time.AfterFunc(dur, func() { d.l.Post(fn) })
	return t.Stop
}

// Do runs fn on the loop and waits for it to finish. It must not be called
// from a loop task.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	l.Post(func() {
		defer close(done)
		fn()
	})
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until no task is queued, no Go call is in flight and no
// tracked timer is pending.
func (l *Loop) Wait(ctx context.Context) error {
	l.mu.Lock()
	ch := l.idle
	l.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for loop to settle: %w", ctx.Err())
	}
}

func (l *Loop) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			l.log.Error("task panic recovered",
				"error", fmt.Sprint(r),
				"stack", string(buf[:n]),
			)
		}
	}()
	fn()
}

func (l *Loop) acquire() {
	l.mu.Lock()
	l.acquireLocked()
	l.mu.Unlock()
}

func (l *Loop) acquireLocked() {
	if l.pending == 0 {
		l.idle = make(chan struct{})
	}
	l.pending++
}

func (l *Loop) release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending--
	if l.pending == 0 {
		close(l.idle)
	}
}
