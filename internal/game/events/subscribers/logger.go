package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/events"
)

var messages = map[string]string{
	events.TypeGameStarted:  "Battle started",
	events.TypeGameEnded:    "Battle over",
	events.TypePhaseChanged: "Phase changed",
	events.TypeShotResolved: "Shot resolved",
	events.TypeTaunt:        "Unicorn taunt",
}

// LoggerSubscriber writes battle events to a zerolog logger. Events are
// logged at the configured level, except that the start and end of a battle
// are never logged below info.
type LoggerSubscriber struct {
	id      string
	logger  zerolog.Logger
	level   zerolog.Level
	filter  map[string]bool // nil logs every type
	devMode bool            // attach the full event as JSON
}

// NewLoggerSubscriber creates a subscriber logging at level
func NewLoggerSubscriber(id string, logger zerolog.Logger, level zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:     id,
		logger: logger.With().Str("subscriber", "event_logger").Logger(),
		level:  level,
	}
}

func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter restricts logging to eventTypes; empty logs everything.
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.filter = nil
		return
	}
	ls.filter = make(map[string]bool, len(eventTypes))
	for _, eventType := range eventTypes {
		ls.filter[eventType] = true
	}
}

func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	return ls.filter == nil || ls.filter[eventType]
}

func (ls *LoggerSubscriber) levelFor(eventType string) zerolog.Level {
	milestone := eventType == events.TypeGameStarted || eventType == events.TypeGameEnded
	if milestone && ls.level < zerolog.InfoLevel {
		return zerolog.InfoLevel
	}
	return ls.level
}

func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	entry := ls.logger.WithLevel(ls.levelFor(event.Type())).
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("event_time", event.Timestamp())

	switch e := event.(type) {
	case *events.GameStartedEvent:
		entry.
			Int("player_ship_cells", e.PlayerShipCells).
			Int("opponent_ship_cells", e.OpponentShipCells)

	case *events.GameEndedEvent:
		entry.
			Str("loser", e.Loser).
			Dur("duration", e.Duration).
			Int("shots", e.Shots)

	case *events.PhaseChangedEvent:
		entry.
			Str("from_phase", e.From).
			Str("to_phase", e.To)

	case *events.ShotResolvedEvent:
		entry.
			Str("shooter", e.Shooter).
			Int("target_x", e.Target.X).
			Int("target_y", e.Target.Y).
			Str("result", e.Result.String()).
			Bool("hit", e.Hit()).
			Int("alive", e.Alive)
		if e.Mode != "" {
			entry.Str("mode", e.Mode)
		}

	case *events.TauntEvent:
		entry.
			Str("text", e.Text).
			Str("trigger", e.Trigger)
	}

	if ls.devMode {
		if raw, err := json.Marshal(event); err == nil {
			entry.RawJSON("event_data", raw)
		}
	}

	msg, ok := messages[event.Type()]
	if !ok {
		msg = "Battle event"
	}
	entry.Msg(msg)
}
