package states

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/core"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/events"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/fleet"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/targeting"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/taunts"
)

const (
	DefaultProjectileDelay = time.Second
	DefaultDefeatDelay     = time.Second
	DefaultHistorySize     = 1000
)

// Options configures a Battle. Start from DefaultOptions: delays and the
// cheat probability are used as given, zero included.
type Options struct {
	Clock  clock.Clock
	RNG    core.RNG
	Logger zerolog.Logger
	// Bus receives battle events; nil disables publishing.
	Bus    events.Publisher
	GameID string

	ProjectileDelay      time.Duration
	DefeatDelay          time.Duration
	CheatProbability     float64
	TauntCapacity        int
	MaxPlacementAttempts int
	HistorySize          int

	// Pre-built boards replace fleet generation for the matching side.
	PlayerBoard   *core.Board
	OpponentBoard *core.Board
}

// DefaultOptions returns the standard battle options
func DefaultOptions() Options {
	return Options{
		Logger:               zerolog.Nop(),
		ProjectileDelay:      DefaultProjectileDelay,
		DefeatDelay:          DefaultDefeatDelay,
		CheatProbability:     targeting.DefaultCheatProbability,
		TauntCapacity:        taunts.DefaultCapacity,
		MaxPlacementAttempts: fleet.DefaultMaxAttempts,
		HistorySize:          DefaultHistorySize,
	}
}

// Transition represents a state transition in the history
type Transition struct {
	From      Phase
	To        Phase
	Timestamp time.Time
	Reason    string
}

// Battle is the turn state machine. It is driven by Tick from a single
// goroutine and holds no locks.
type Battle struct {
	id     string
	clock  clock.Clock
	logger zerolog.Logger
	bus    events.Publisher

	projectileDelay time.Duration
	defeatDelay     time.Duration

	playerBoard   core.Board
	opponentBoard core.Board

	state    State
	targeter *targeting.Targeter
	feed     *taunts.Feed
	event    taunts.TurnEvent
	lastHit  *core.Coordinate

	cursor       core.Coordinate
	hasCursor    bool
	click        core.Coordinate
	pendingClick bool

	history        []Transition
	maxHistorySize int

	started time.Time
	shots   int
	ended   bool
}

// New creates a battle in PlayerAiming. Missing boards are generated from
// opts.RNG, player first.
func New(opts Options) *Battle {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.RNG == nil {
		opts.RNG = rand.New(rand.NewSource(opts.Clock.Now().UnixNano()))
	}
	if opts.GameID == "" {
		opts.GameID = uuid.NewString()
	}
	if opts.HistorySize <= 0 {
		opts.HistorySize = DefaultHistorySize
	}

	logger := opts.Logger.With().
		Str("component", "battle").
		Str("game_id", opts.GameID).
		Logger()

	generator := fleet.NewGenerator(fleet.Config{MaxAttempts: opts.MaxPlacementAttempts}, opts.RNG)
	b := &Battle{
		id:              opts.GameID,
		clock:           opts.Clock,
		logger:          logger,
		bus:             opts.Bus,
		projectileDelay: opts.ProjectileDelay,
		defeatDelay:     opts.DefeatDelay,
		playerBoard:     boardOrGenerate(opts.PlayerBoard, generator),
		opponentBoard:   boardOrGenerate(opts.OpponentBoard, generator),
		state:           PlayerAimingState{},
		targeter: targeting.NewTargeter(opts.RNG,
			targeting.WithCheatProbability(opts.CheatProbability),
			targeting.WithLogger(logger)),
		feed:           taunts.NewFeed(opts.RNG, opts.TauntCapacity),
		history:        make([]Transition, 0, 64),
		maxHistorySize: opts.HistorySize,
		started:        opts.Clock.Now(),
	}

	b.logger.Info().
		Int("player_ship_cells", b.playerBoard.AliveCount()).
		Int("opponent_ship_cells", b.opponentBoard.AliveCount()).
		Msg("Battle started")
	b.publish(events.NewGameStartedEvent(b.id, b.started,
		b.playerBoard.AliveCount(), b.opponentBoard.AliveCount()))

	return b
}

func boardOrGenerate(board *core.Board, generator *fleet.Generator) core.Board {
	if board != nil {
		return *board
	}
	generated, _ := generator.Generate()
	return generated
}

// Tick evaluates the current state once and performs at most one transition.
// Once a terminal state has held for the defeat delay every call reports the
// battle as over.
func (b *Battle) Tick() Outcome {
	now := b.clock.Now()

	switch s := b.state.(type) {
	case PlayerAimingState:
		if !b.pendingClick {
			return Outcome{}
		}
		b.firePlayerShot()
		b.transition(PlayerShotResolvingState{}, "player fired")

	case PlayerShotResolvingState:
		if b.opponentBoard.AliveCount() == 0 {
			b.say(taunts.OpponentDefeatedText, "OpponentDefeated")
			b.transition(OpponentDefeatedState{Entered: now}, "opponent fleet destroyed")
			return Outcome{}
		}
		if b.event == taunts.None {
			b.event = taunts.RandomTaunt
		}
		b.transition(OpponentAimingState{Entered: now}, "player shot resolved")

	case OpponentAimingState:
		b.speak()
		b.fireOpponentShot()
		b.transition(OpponentShotResolvingState{AimingEntered: s.Entered}, "opponent fired")

	case OpponentShotResolvingState:
		if b.clock.Since(s.AimingEntered) < b.projectileDelay {
			return Outcome{}
		}
		if b.playerBoard.AliveCount() == 0 {
			b.say(taunts.PlayerDefeatedText, "PlayerDefeated")
			b.transition(PlayerDefeatedState{Entered: now}, "player fleet destroyed")
			return Outcome{}
		}
		b.pendingClick = false
		b.transition(PlayerAimingState{}, "opponent shot landed")

	case OpponentDefeatedState:
		if b.clock.Since(s.Entered) >= b.defeatDelay {
			return b.finish(SideOpponent)
		}

	case PlayerDefeatedState:
		if b.clock.Since(s.Entered) >= b.defeatDelay {
			return b.finish(SidePlayer)
		}

	default:
		panic(fmt.Errorf("%w: unknown state %T", core.ErrInvalidTransition, b.state))
	}

	return Outcome{}
}

// firePlayerShot resolves the armed click. A cell that was already shot
// still uses up the turn.
func (b *Battle) firePlayerShot() {
	target := b.click
	before := b.opponentBoard.TileAt(target)
	result := b.opponentBoard.MarkShot(target)
	if before == core.HasShip {
		b.event = taunts.OpponentWasHit
	}
	b.shots++

	b.logger.Debug().
		Str("target", target.String()).
		Str("result", result.String()).
		Bool("repeat", before.IsShot()).
		Int("opponent_alive", b.opponentBoard.AliveCount()).
		Msg("Player shot")
	b.publish(events.NewShotResolvedEvent(b.id, b.clock.Now(), events.ShooterPlayer,
		target, result, b.opponentBoard.AliveCount(), ""))
}

func (b *Battle) fireOpponentShot() {
	target, mode := b.targeter.SelectTargetWithMode(&b.playerBoard, b.lastHit)
	result := b.playerBoard.MarkShot(target)
	if result == core.ShotAndHit {
		hit := target
		b.lastHit = &hit
		b.event = taunts.PlayerWasHit
	} else {
		b.event = taunts.RandomTaunt
	}
	b.shots++

	b.logger.Debug().
		Str("target", target.String()).
		Str("mode", mode.String()).
		Str("result", result.String()).
		Int("player_alive", b.playerBoard.AliveCount()).
		Msg("Opponent shot")
	b.publish(events.NewShotResolvedEvent(b.id, b.clock.Now(), events.ShooterOpponent,
		target, result, b.playerBoard.AliveCount(), mode.String()))
}

// speak hands the pending event to the feed, which resets it.
func (b *Battle) speak() {
	trigger := b.event
	line, ok := b.feed.Push(&b.event)
	if !ok {
		return
	}
	b.publish(events.NewTauntEvent(b.id, b.clock.Now(), line, trigger.String()))
}

func (b *Battle) say(line, trigger string) {
	b.feed.Append(line)
	b.publish(events.NewTauntEvent(b.id, b.clock.Now(), line, trigger))
}

// transition panics on a move not listed in Phase.AllowedTransitions.
func (b *Battle) transition(next State, reason string) {
	from := b.state.Phase()
	to := next.Phase()
	if !from.CanTransitionTo(to) {
		panic(fmt.Errorf("%w: %s to %s", core.ErrInvalidTransition, from, to))
	}

	now := b.clock.Now()
	b.addToHistory(Transition{
		From:      from,
		To:        to,
		Timestamp: now,
		Reason:    reason,
	})
	b.state = next

	b.logger.Debug().
		Str("from_phase", from.String()).
		Str("to_phase", to.String()).
		Str("reason", reason).
		Msg("State transition completed")
	b.publish(events.NewPhaseChangedEvent(b.id, now, from.String(), to.String()))
}

// addToHistory adds a transition to the history, maintaining max size
func (b *Battle) addToHistory(transition Transition) {
	b.history = append(b.history, transition)
	if len(b.history) > b.maxHistorySize {
		b.history = b.history[len(b.history)-b.maxHistorySize:]
	}
}

func (b *Battle) finish(loser Side) Outcome {
	if !b.ended {
		b.ended = true
		duration := b.clock.Since(b.started)
		b.logger.Info().
			Str("loser", loser.String()).
			Dur("duration", duration).
			Int("shots", b.shots).
			Msg("Battle over")
		b.publish(events.NewGameEndedEvent(b.id, b.clock.Now(), loser.String(), duration, b.shots))
	}
	return Outcome{Over: true, Loser: loser}
}

func (b *Battle) publish(event events.Event) {
	if b.bus != nil {
		b.bus.Publish(event)
	}
}

// GameID returns the battle's identifier
func (b *Battle) GameID() string {
	return b.id
}

// State returns the current per-phase state
func (b *Battle) State() State {
	return b.state
}

// Phase returns the current phase
func (b *Battle) Phase() Phase {
	return b.state.Phase()
}

// PlayerBoard returns a copy of the player's board
func (b *Battle) PlayerBoard() core.Board {
	return b.playerBoard
}

// OpponentBoard returns a copy of the opponent's board
func (b *Battle) OpponentBoard() core.Board {
	return b.opponentBoard
}

// Taunts returns the feed lines, oldest first
func (b *Battle) Taunts() []string {
	return b.feed.Lines()
}

// LastHit returns the most recent opponent hit on the player board. It is
// never cleared once set.
func (b *Battle) LastHit() (core.Coordinate, bool) {
	if b.lastHit == nil {
		return core.Coordinate{}, false
	}
	return *b.lastHit, true
}

// PendingEvent returns the turn event the feed has not consumed yet
func (b *Battle) PendingEvent() taunts.TurnEvent {
	return b.event
}

// Shots returns how many shots both sides have fired
func (b *Battle) Shots() int {
	return b.shots
}

// History returns a copy of the transition history
func (b *Battle) History() []Transition {
	history := make([]Transition, len(b.history))
	copy(history, b.history)
	return history
}
