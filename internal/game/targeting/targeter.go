package targeting

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/core"
)

// DefaultCheatProbability is the chance of scanning straight for a ship when
// there is no hit to hunt around.
const DefaultCheatProbability = 0.5

// maxRandomDraws bounds the resampling loop before picking directly from the
// remaining untargeted cells.
const maxRandomDraws = 10000

// Mode says how a target was chosen
type Mode int

const (
	ModeHunt Mode = iota
	ModeCheat
	ModeRandom
)

// String returns the string representation of a Mode
func (m Mode) String() string {
	switch m {
	case ModeHunt:
		return "hunt"
	case ModeCheat:
		return "cheat"
	case ModeRandom:
		return "random"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Targeter picks the opponent's shots against the player board.
type Targeter struct {
	rng              core.RNG
	cheatProbability float64
	logger           zerolog.Logger
}

// Option configures a Targeter
type Option func(*Targeter)

// WithCheatProbability overrides DefaultCheatProbability
func WithCheatProbability(p float64) Option {
	return func(t *Targeter) {
		t.cheatProbability = p
	}
}

// WithLogger attaches a logger
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Targeter) {
		t.logger = logger.With().Str("component", "targeter").Logger()
	}
}

// NewTargeter creates a targeter drawing from rng
func NewTargeter(rng core.RNG, opts ...Option) *Targeter {
	t := &Targeter{
		rng:              rng,
		cheatProbability: DefaultCheatProbability,
		logger:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SelectTarget returns the next cell to fire at. lastHit is the most recent
// confirmed hit on board, or nil if there has been none.
func (t *Targeter) SelectTarget(board *core.Board, lastHit *core.Coordinate) core.Coordinate {
	target, _ := t.SelectTargetWithMode(board, lastHit)
	return target
}

// SelectTargetWithMode is SelectTarget that also reports which branch chose the cell.
func (t *Targeter) SelectTargetWithMode(board *core.Board, lastHit *core.Coordinate) (core.Coordinate, Mode) {
	if lastHit != nil {
		if target, ok := t.Hunt(board, *lastHit); ok {
			return target, ModeHunt
		}
		t.logger.Debug().
			Str("last_hit", lastHit.String()).
			Msg("Hunt exhausted, falling back to blind shot")
	}
	return t.blindShot(board)
}

// Hunt probes around h: first the row h.Y over columns h.X-1..h.X+1, then
// the column h.X over rows h.Y-1..h.Y+1. The first cell not yet shot wins.
func (t *Targeter) Hunt(board *core.Board, h core.Coordinate) (core.Coordinate, bool) {
	for x := h.X - 1; x <= h.X+1; x++ {
		c := core.NewCoordinate(x, h.Y)
		if c.IsValid() && !board.TileAt(c).IsShot() {
			return c, true
		}
	}
	for y := h.Y - 1; y <= h.Y+1; y++ {
		c := core.NewCoordinate(h.X, y)
		if c.IsValid() && !board.TileAt(c).IsShot() {
			return c, true
		}
	}
	return core.Coordinate{}, false
}

func (t *Targeter) blindShot(board *core.Board) (core.Coordinate, Mode) {
	remaining := board.Untargeted()
	if len(remaining) == 0 {
		panic(fmt.Errorf("%w: opponent asked to fire at a fully shot board", core.ErrNoTarget))
	}

	if t.rng.Float64() < t.cheatProbability {
		for i := 0; i < core.NumCells; i++ {
			c := core.FromIndex(i)
			if board.TileAt(c) == core.HasShip {
				return c, ModeCheat
			}
		}
		return remaining[t.rng.Intn(len(remaining))], ModeRandom
	}

	for draw := 0; draw < maxRandomDraws; draw++ {
		c := core.FromIndex(t.rng.Intn(core.NumCells))
		if !board.TileAt(c).IsShot() {
			return c, ModeRandom
		}
	}
	return remaining[t.rng.Intn(len(remaining))], ModeRandom
}
