// Package autopilot plays battles without a window. It stands in for the
// player by moving the pointer to a random untargeted opponent cell and
// clicking it, and advances a mock clock one frame per tick.
package autopilot

import (
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/core"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/events"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/states"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/targeting"
)

// ErrTickLimit is returned when a battle has not finished within MaxTicks.
var ErrTickLimit = errors.New("battle did not finish within the tick limit")

// DefaultMaxTicks is generous: a battle takes at most 100 player shots and
// each opponent shot waits out the projectile delay.
const DefaultMaxTicks = 100000

// Config controls a headless run
type Config struct {
	// Frame is how far the clock moves per tick.
	Frame    time.Duration
	MaxTicks int
}

// Tally counts shots by side, fed from the event bus.
type Tally struct {
	PlayerShots   int
	PlayerHits    int
	OpponentShots int
	OpponentHits  int
	CheatShots    int
	Taunts        int
}

// Attach subscribes the tally to bus.
func (t *Tally) Attach(bus *events.EventBus) {
	bus.SubscribeFunc(events.TypeShotResolved, func(e events.Event) {
		shot, ok := e.(*events.ShotResolvedEvent)
		if !ok {
			return
		}
		if shot.Shooter == events.ShooterPlayer {
			t.PlayerShots++
			if shot.Hit() {
				t.PlayerHits++
			}
			return
		}
		t.OpponentShots++
		if shot.Hit() {
			t.OpponentHits++
		}
		if shot.Mode == targeting.ModeCheat.String() {
			t.CheatShots++
		}
	})
	bus.SubscribeFunc(events.TypeTaunt, func(events.Event) {
		t.Taunts++
	})
}

// Result describes a finished (or abandoned) headless battle
type Result struct {
	GameID  string
	Outcome states.Outcome
	Ticks   int
	Elapsed time.Duration
}

// Pilot clicks for the player.
type Pilot struct {
	rng    core.RNG
	logger zerolog.Logger
}

// NewPilot creates a pilot choosing cells with rng. Keep rng separate from
// the battle's so a seeded battle plays the same fleets either way.
func NewPilot(rng core.RNG, logger zerolog.Logger) *Pilot {
	return &Pilot{
		rng:    rng,
		logger: logger.With().Str("component", "autopilot").Logger(),
	}
}

// Aim moves the pointer over a random untargeted opponent cell and clicks.
// It does nothing outside PlayerAiming.
func (p *Pilot) Aim(battle *states.Battle) {
	if battle.Phase() != states.PhasePlayerAiming {
		return
	}
	board := battle.OpponentBoard()
	remaining := board.Untargeted()
	if len(remaining) == 0 {
		return
	}
	target := remaining[p.rng.Intn(len(remaining))]
	x, y := core.CellCenter(core.OpponentBoardX, target)

	p.logger.Trace().Str("target", target.String()).Msg("Autopilot clicking")
	battle.HandlePointer(states.PointerEvent{Kind: states.PointerMotion, X: x, Y: y})
	battle.HandlePointer(states.PointerEvent{Kind: states.PointerClick, X: x, Y: y})
}

// Play drives battle to completion. mock must be the clock the battle was
// built with.
func (p *Pilot) Play(battle *states.Battle, mock *clock.Mock, cfg Config) (Result, error) {
	if cfg.MaxTicks <= 0 {
		cfg.MaxTicks = DefaultMaxTicks
	}
	if cfg.Frame <= 0 {
		cfg.Frame = time.Second / 30
	}

	start := mock.Now()
	result := Result{GameID: battle.GameID()}
	for result.Ticks < cfg.MaxTicks {
		p.Aim(battle)
		result.Outcome = battle.Tick()
		result.Ticks++
		if result.Outcome.Over {
			result.Elapsed = mock.Since(start)
			return result, nil
		}
		mock.Add(cfg.Frame)
	}

	result.Elapsed = mock.Since(start)
	return result, fmt.Errorf("%w: %d ticks in phase %s", ErrTickLimit, result.Ticks, battle.Phase())
}
