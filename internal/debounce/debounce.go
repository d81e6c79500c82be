// Package debounce delays an action until its trigger has been quiet for a
// fixed interval. Only the latest trigger's query is ever delivered.
//
// Each Trigger cancels the pending execution before scheduling a new one, so
// at most one execution is pending at a time. Cancellation is enforced twice:
// the pending command returns nil once cancelled, and a FiredMsg that was
// already queued before a newer Trigger or a Stop fails IsCurrent.
package debounce

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is the quiet period used when none is configured
const DefaultDelay = 300 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FiredMsg is delivered when a scheduled execution fires
type FiredMsg struct {
	ID    int
	Seq   uint64
	Query string
}

// Handle is one scheduled execution
type Handle struct {
	msg FiredMsg
	cmd tea.Cmd
}

// Cmd returns the command that waits for the execution to fire. It resolves
// to the handle's FiredMsg, or to nil if the execution was cancelled.
func (h *Handle) Cmd() tea.Cmd {
	return h.cmd
}

// Msg returns the message this handle delivers when it fires
func (h *Handle) Msg() FiredMsg {
	return h.msg
}

// Debouncer owns at most one pending execution
type Debouncer struct {
	id    int
	clock clock.Clock
	delay time.Duration

	mu     sync.Mutex
	seq    uint64
	timer  *clock.Timer
	cancel chan struct{}
}

// New creates a debouncer. A non-positive delay means DefaultDelay and a nil
// clock means the wall clock.
func New(delay time.Duration, clk clock.Clock) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Debouncer{
		id:    nextID(),
		clock: clk,
		delay: delay,
	}
}

// Delay returns the quiet period
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger cancels any pending execution and schedules a new one for query at
// now + delay.
func (d *Debouncer) Trigger(query string) *Handle {
	d.mu.Lock()
	d.cancelLocked()
	d.seq++
	msg := FiredMsg{ID: d.id, Seq: d.seq, Query: query}
	timer := d.clock.Timer(d.delay)
	cancel := make(chan struct{})
	d.timer = timer
	d.cancel = cancel
	d.mu.Unlock()

	cmd := func() tea.Msg {
		select {
		case <-timer.C:
		case <-cancel:
			return nil
		}

		d.mu.Lock()
		defer d.mu.Unlock()
		// Lost the race against a cancel that closed the channel after the
		// timer had already fired.
		if msg.Seq != d.seq || d.cancel != cancel {
			return nil
		}
		d.timer = nil
		d.cancel = nil
		return msg
	}

	return &Handle{msg: msg, cmd: cmd}
}

// Stop cancels the pending execution, if any. A FiredMsg already in flight
// stops being current.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.seq++
}

// Pending reports whether an execution is scheduled and has not fired
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancel != nil
}

// IsCurrent reports whether msg came from this debouncer's latest Trigger
// and nothing has superseded it since.
func (d *Debouncer) IsCurrent(msg FiredMsg) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return msg.ID == d.id && msg.Seq == d.seq
}

func (d *Debouncer) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		close(d.cancel)
		d.cancel = nil
	}
}
