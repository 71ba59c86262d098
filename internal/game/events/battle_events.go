package events

import (
	"time"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted  = "game.started"
	TypeGameEnded    = "game.ended"
	TypePhaseChanged = "phase.changed"
	TypeShotResolved = "shot.resolved"
	TypeTaunt        = "taunt.spoken"
)

// Shooters for ShotResolvedEvent
const (
	ShooterPlayer   = "player"
	ShooterOpponent = "opponent"
)

// GameStartedEvent is published when a battle is created
type GameStartedEvent struct {
	BaseEvent
	PlayerShipCells   int
	OpponentShipCells int
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, at time.Time, playerShipCells, opponentShipCells int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBase(TypeGameStarted, gameID, at),
		PlayerShipCells:   playerShipCells,
		OpponentShipCells: opponentShipCells,
	}
}

// GameEndedEvent is published once, when a battle reaches a terminal phase
type GameEndedEvent struct {
	BaseEvent
	Loser    string
	Duration time.Duration
	Shots    int
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, at time.Time, loser string, duration time.Duration, shots int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBase(TypeGameEnded, gameID, at),
		Loser:    loser,
		Duration: duration,
		Shots:    shots,
	}
}

// PhaseChangedEvent is published on every state machine transition
type PhaseChangedEvent struct {
	BaseEvent
	From string
	To   string
}

// NewPhaseChangedEvent creates a new PhaseChangedEvent
func NewPhaseChangedEvent(gameID string, at time.Time, from, to string) *PhaseChangedEvent {
	return &PhaseChangedEvent{
		BaseEvent: newBase(TypePhaseChanged, gameID, at),
		From: from,
		To:   to,
	}
}

// ShotResolvedEvent is published for every shot either side fires
type ShotResolvedEvent struct {
	BaseEvent
	Shooter string
	Target  core.Coordinate
	Result  core.TileState
	// Alive is the target board's remaining ship cells after the shot.
	Alive int
	// Mode is how the opponent picked the cell; empty for the player.
	Mode string
}

// NewShotResolvedEvent creates a new ShotResolvedEvent
func NewShotResolvedEvent(gameID string, at time.Time, shooter string, target core.Coordinate, result core.TileState, alive int, mode string) *ShotResolvedEvent {
	return &ShotResolvedEvent{
		BaseEvent: newBase(TypeShotResolved, gameID, at),
		Shooter: shooter,
		Target:  target,
		Result:  result,
		Alive:   alive,
		Mode:    mode,
	}
}

// Hit reports whether the shot struck a ship
func (e *ShotResolvedEvent) Hit() bool {
	return e.Result == core.ShotAndHit
}

// TauntEvent is published whenever a line lands in the taunt feed
type TauntEvent struct {
	BaseEvent
	Text    string
	Trigger string
}

// NewTauntEvent creates a new TauntEvent
func NewTauntEvent(gameID string, at time.Time, text, trigger string) *TauntEvent {
	return &TauntEvent{
		BaseEvent: newBase(TypeTaunt, gameID, at),
		Text:    text,
		Trigger: trigger,
	}
}
