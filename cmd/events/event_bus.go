package events

import (
	"sync"
)

// CommandEventBus carries events between the UI loop and the controllers.
// Handlers run asynchronously, each in its own goroutine.
type CommandEventBus struct {
	subscribers map[string][]subscriberInfo
	mu          sync.RWMutex
	nextID      int
	inflight    sync.WaitGroup
}

type subscriberInfo struct {
	id      int
	handler func(any)
	once    bool
}

// NewCommandEventBus creates a new command-level event bus
func NewCommandEventBus() *CommandEventBus {
	return &CommandEventBus{
		subscribers: make(map[string][]subscriberInfo),
		nextID:      1,
	}
}

// Subscribe registers a handler for a specific event type.
// Returns an unsubscribe function.
func (bus *CommandEventBus) Subscribe(eventType string, handler func(any)) func() {
	return bus.subscribe(eventType, handler, false)
}

// SubscribeOnce registers a handler that will only be called once
func (bus *CommandEventBus) SubscribeOnce(eventType string, handler func(any)) func() {
	return bus.subscribe(eventType, handler, true)
}

func (bus *CommandEventBus) subscribe(eventType string, handler func(any), once bool) func() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	id := bus.nextID
	bus.nextID++

	bus.subscribers[eventType] = append(bus.subscribers[eventType], subscriberInfo{
		id:      id,
		handler: handler,
		once:    once,
	})

	return func() {
		bus.unsubscribe(eventType, id)
	}
}

// Emit sends an event to all subscribers of the given event type.
// Once handlers are removed before dispatch, so concurrent emits never call
// them twice.
func (bus *CommandEventBus) Emit(eventType string, event any) {
	bus.mu.Lock()
	subscribers := bus.subscribers[eventType]
	handlers := make([]func(any), 0, len(subscribers))
	for _, sub := range subscribers {
		handlers = append(handlers, sub.handler)
	}
	for _, sub := range subscribers {
		if sub.once {
			bus.removeSubscriber(eventType, sub.id)
		}
	}
	bus.inflight.Add(len(handlers))
	bus.mu.Unlock()

	for _, handler := range handlers {
		go func(h func(any)) {
			defer bus.inflight.Done()
			h(event)
		}(handler)
	}
}

// Wait blocks until every handler started by Emit has returned.
func (bus *CommandEventBus) Wait() {
	bus.inflight.Wait()
}

// SubscriberCount returns the number of handlers registered for eventType.
func (bus *CommandEventBus) SubscriberCount(eventType string) int {
	bus.mu.RLock()
	defer bus.mu.RUnlock()
	return len(bus.subscribers[eventType])
}

// Clear removes all subscribers
func (bus *CommandEventBus) Clear() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.subscribers = make(map[string][]subscriberInfo)
}

func (bus *CommandEventBus) unsubscribe(eventType string, id int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.removeSubscriber(eventType, id)
}

// removeSubscriber removes a subscriber by ID (must be called with lock held).
// Order of the remaining subscribers is kept.
func (bus *CommandEventBus) removeSubscriber(eventType string, id int) {
	subscribers := bus.subscribers[eventType]

	for i, sub := range subscribers {
		if sub.id != id {
			continue
		}
		remaining := make([]subscriberInfo, 0, len(subscribers)-1)
		remaining = append(remaining, subscribers[:i]...)
		remaining = append(remaining, subscribers[i+1:]...)
		if len(remaining) == 0 {
			delete(bus.subscribers, eventType)
		} else {
			bus.subscribers[eventType] = remaining
		}
		return
	}
}
