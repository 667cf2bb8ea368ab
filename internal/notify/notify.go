// Package notify holds the single transient notification shown to the
// operator and clears it after a fixed delay.
package notify

import (
	"sync"
	"time"
)

// DefaultDuration is how long a notice stays visible.
const DefaultDuration = 3 * time.Second

// Kind classifies a notice.
type Kind int

const (
	Success Kind = iota
	Error
)

func (k Kind) String() string {
	if k == Error {
		return "error"
	}
	return "success"
}

// Notice is the visible notification.
type Notice struct {
	Message string
	Kind    Kind
	Seq     uint64
	Shown   time.Time
}

// Timer is the subset of *time.Timer the notifier uses.
type Timer interface {
	Stop() bool
}

// Clock abstracts time for tests.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Option configures a Notifier.
type Option func(*Notifier)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(n *Notifier) {
		if c != nil {
			n.clock = c
		}
	}
}

// Notifier owns one notification slot and at most one clear timer.
type Notifier struct {
	mu       sync.Mutex
	clock    Clock
	ttl      time.Duration
	current  Notice
	visible  bool
	seq      uint64
	timer    Timer
	closed   bool
	onChange func()
}

// New returns a Notifier whose notices last ttl. A non-positive ttl selects
// DefaultDuration.
func New(ttl time.Duration, opts ...Option) *Notifier {
	if ttl <= 0 {
		ttl = DefaultDuration
	}
	n := &Notifier{clock: realClock{}, ttl: ttl}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// OnChange registers fn to run when a notice expires. fn runs on the timer
// goroutine.
func (n *Notifier) OnChange(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onChange = fn
}

// Show replaces the current notice and restarts the clear timer.
func (n *Notifier) Show(message string, kind Kind) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.stopLocked()
	n.seq++
	seq := n.seq
	n.current = Notice{Message: message, Kind: kind, Seq: seq, Shown: n.clock.Now()}
	n.visible = true
	n.timer = n.clock.AfterFunc(n.ttl, func() { n.expire(seq) })
}

// Success shows a success notice.
func (n *Notifier) Success(message string) { n.Show(message, Success) }

// Error shows an error notice.
func (n *Notifier) Error(message string) { n.Show(message, Error) }

// Clear empties the slot and cancels the timer.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopLocked()
	n.current = Notice{}
	n.visible = false
}

// Current returns the visible notice.
func (n *Notifier) Current() (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current, n.visible
}

// Outstanding returns the number of pending clear timers (0 or 1).
func (n *Notifier) Outstanding() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer == nil {
		return 0
	}
	return 1
}

// Close stops the timer and ignores later Show calls.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopLocked()
	n.closed = true
	n.current = Notice{}
	n.visible = false
}

func (n *Notifier) expire(seq uint64) {
	n.mu.Lock()
	// A newer Show may have raced with this timer firing.
	if n.closed || seq != n.seq || !n.visible {
		n.mu.Unlock()
		return
	}
	n.current = Notice{}
	n.visible = false
	n.timer = nil
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (n *Notifier) stopLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
