package events

import "time"

// TypeAll subscribes a handler to every event type.
const TypeAll = "*"

// Event is anything published on the bus during a battle.
type Event interface {
	Type() string
	Timestamp() time.Time
	GameID() string
}

// BaseEvent carries the fields every battle event shares. Embed it and build
// it with newBase.
type BaseEvent struct {
	EventType string    `json:"type"`
	Time      time.Time `json:"timestamp"`
	Game      string    `json:"game_id"`
}

func newBase(eventType, gameID string, at time.Time) BaseEvent {
	return BaseEvent{EventType: eventType, Time: at, Game: gameID}
}

func (e BaseEvent) Type() string         { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }
func (e BaseEvent) GameID() string       { return e.Game }

// EventHandler reacts to a single event
type EventHandler func(Event)

// Subscriber is a named, filtering receiver such as the log subscriber.
type Subscriber interface {
	ID() string
	HandleEvent(Event)
	InterestedIn(eventType string) bool
}

// Publisher is what the battle needs from a bus.
type Publisher interface {
	Publish(Event)
}
