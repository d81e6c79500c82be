// Package eventbus is the document-level event bus: screen-wide events such
// as clicks are published once and every subscriber sees them.
package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
)

// EventType identifies a kind of document event
type EventType string

// Event type constants
const (
	EventClick EventType = "click"
)

// Event is anything published on the bus
type Event interface {
	Type() EventType
}

// ClickEvent is a primary-button press anywhere on the screen
type ClickEvent struct {
	X int
	Y int
}

// Type returns EventClick
func (e ClickEvent) Type() EventType { return EventClick }

// Handler is a function that handles events
type Handler func(Event)

type subscription struct {
	handler Handler
}

// Bus dispatches document-level events to subscribers. Publish runs handlers
// synchronously on the caller's goroutine, which is the Bubble Tea update
// loop, so handlers may touch model state without locking.
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]*subscription
	logger   *zap.Logger
}

// New creates a new event bus
func New(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		handlers: make(map[EventType][]*subscription),
		logger:   logger,
	}
}

// Publish delivers event to every current subscriber of its type, in
// subscription order. A panicking handler is logged and skipped.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := make([]*subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.call(sub, event)
	}
}

func (b *Bus) call(sub *subscription, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panic",
				zap.String("event", string(event.Type())),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	sub.handler(event)
}

// Subscribe registers handler for eventType and returns the function that
// removes it. The returned function is safe to call more than once.
func (b *Bus) Subscribe(eventType EventType, handler Handler) func() {
	sub := &subscription{handler: handler}

	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], sub)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s == sub {
					b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
		})
	}
}

// SubscriberCount returns the number of handlers registered for eventType
func (b *Bus) SubscriberCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
