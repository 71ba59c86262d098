package events

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

type handlerEntry struct {
	id        string
	eventType string
	fn        EventHandler
}

// EventBus delivers battle events synchronously, in registration order:
// subscribers first, then function handlers. Delivery runs without the lock
// held, so handlers may subscribe or unsubscribe while handling an event.
type EventBus struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	handlers    []handlerEntry
	nextID      int
	published   map[string]int
	logger      zerolog.Logger
}

// NewEventBus creates an empty bus
func NewEventBus(logger zerolog.Logger) *EventBus {
	return &EventBus{
		published: make(map[string]int),
		logger:    logger.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds subscriber. A subscriber with the same ID is replaced in
// place and keeps its delivery position.
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for i, existing := range eb.subscribers {
		if existing.ID() == subscriber.ID() {
			eb.subscribers[i] = subscriber
			eb.logger.Debug().Str("subscriber_id", subscriber.ID()).Msg("Subscriber replaced")
			return
		}
	}
	eb.subscribers = append(eb.subscribers, subscriber)
	eb.logger.Debug().Str("subscriber_id", subscriber.ID()).Msg("Subscriber added to event bus")
}

// Unsubscribe removes the subscriber with the given ID and reports whether it
// was registered.
func (eb *EventBus) Unsubscribe(subscriberID string) bool {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for i, s := range eb.subscribers {
		if s.ID() == subscriberID {
			eb.subscribers = append(eb.subscribers[:i:i], eb.subscribers[i+1:]...)
			eb.logger.Debug().Str("subscriber_id", subscriberID).Msg("Subscriber removed from event bus")
			return true
		}
	}
	return false
}

// SubscribeFunc registers fn for eventType, or for every event when eventType
// is TypeAll. The returned ID is unique for the life of the bus.
func (eb *EventBus) SubscribeFunc(eventType string, fn EventHandler) string {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.nextID++
	id := fmt.Sprintf("handler-%d", eb.nextID)
	eb.handlers = append(eb.handlers, handlerEntry{id: id, eventType: eventType, fn: fn})

	eb.logger.Debug().
		Str("event_type", eventType).
		Str("handler_id", id).
		Msg("Function handler added to event bus")
	return id
}

// UnsubscribeFunc removes a handler by the ID SubscribeFunc returned
func (eb *EventBus) UnsubscribeFunc(handlerID string) bool {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for i, h := range eb.handlers {
		if h.id == handlerID {
			eb.handlers = append(eb.handlers[:i:i], eb.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// Publish delivers event to every interested subscriber and matching
// handler. A panicking receiver is logged and skipped.
func (eb *EventBus) Publish(event Event) {
	eventType := event.Type()

	eb.mu.Lock()
	eb.published[eventType]++
	subscribers := append([]Subscriber(nil), eb.subscribers...)
	handlers := append([]handlerEntry(nil), eb.handlers...)
	eb.mu.Unlock()

	eb.logger.Trace().
		Str("event_type", eventType).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Msg("Publishing event")

	for _, s := range subscribers {
		if s.InterestedIn(eventType) {
			eb.deliver(s.ID(), eventType, func() { s.HandleEvent(event) })
		}
	}
	for _, h := range handlers {
		if h.eventType == eventType || h.eventType == TypeAll {
			eb.deliver(h.id, eventType, func() { h.fn(event) })
		}
	}
}

func (eb *EventBus) deliver(receiver, eventType string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error().
				Str("receiver", receiver).
				Str("event_type", eventType).
				Interface("panic", r).
				Msg("Event receiver panicked")
		}
	}()
	fn()
}

// SubscriberCount returns the number of registered subscribers
func (eb *EventBus) SubscriberCount() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers)
}

// HandlerCount returns the number of handlers registered for exactly eventType
func (eb *EventBus) HandlerCount(eventType string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	n := 0
	for _, h := range eb.handlers {
		if h.eventType == eventType {
			n++
		}
	}
	return n
}

// Published returns how many events of eventType have been published
func (eb *EventBus) Published(eventType string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return eb.published[eventType]
}
