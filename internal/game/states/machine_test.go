package states

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/core"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/events"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/taunts"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/testutil"
)

// recorder is a Publisher that keeps everything it is sent
type recorder struct {
	events []events.Event
}

func (r *recorder) Publish(e events.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) ofType(eventType string) []events.Event {
	var out []events.Event
	for _, e := range r.events {
		if e.Type() == eventType {
			out = append(out, e)
		}
	}
	return out
}

func newTestBattle(player, opponent core.Board, rng core.RNG) (*Battle, *clock.Mock, *recorder) {
	mock := clock.NewMock()
	rec := &recorder{}

	opts := DefaultOptions()
	opts.Clock = mock
	opts.RNG = rng
	opts.Bus = rec
	opts.GameID = "test-battle"
	opts.PlayerBoard = &player
	opts.OpponentBoard = &opponent

	return New(opts), mock, rec
}

func pointerAt(kind PointerKind, c core.Coordinate) PointerEvent {
	x, y := core.CellCenter(core.OpponentBoardX, c)
	return PointerEvent{Kind: kind, X: x, Y: y}
}

func click(b *Battle, c core.Coordinate) {
	b.HandlePointer(pointerAt(PointerClick, c))
}

func TestNew_StartsInPlayerAiming(t *testing.T) {
	player := testutil.BoardWithShips(core.NewCoordinate(0, 0), core.NewCoordinate(0, 1))
	opponent := testutil.BoardWithShips(core.NewCoordinate(5, 5))
	b, _, rec := newTestBattle(player, opponent, &testutil.ScriptedRNG{})

	assert.Equal(t, PhasePlayerAiming, b.Phase())
	assert.Equal(t, PlayerAimingState{}, b.State())
	assert.Equal(t, "test-battle", b.GameID())
	assert.Empty(t, b.History())
	assert.Empty(t, b.Taunts())
	assert.Equal(t, taunts.None, b.PendingEvent())
	_, hasHit := b.LastHit()
	assert.False(t, hasHit)

	started := rec.ofType(events.TypeGameStarted)
	require.Len(t, started, 1)
	assert.Equal(t, 2, started[0].(*events.GameStartedEvent).PlayerShipCells)
	assert.Equal(t, 1, started[0].(*events.GameStartedEvent).OpponentShipCells)

	// Nothing happens without a click.
	for i := 0; i < 5; i++ {
		assert.Equal(t, Outcome{}, b.Tick())
	}
	assert.Equal(t, PhasePlayerAiming, b.Phase())
}

func TestNew_GeneratesBoardsAndID(t *testing.T) {
	opts := DefaultOptions()
	opts.RNG = testutil.NewTestRNG(42)
	opts.Clock = clock.NewMock()
	b := New(opts)

	_, err := uuid.Parse(b.GameID())
	assert.NoError(t, err)

	player := b.PlayerBoard()
	opponent := b.OpponentBoard()
	assert.Greater(t, player.AliveCount(), 0)
	assert.LessOrEqual(t, player.AliveCount(), 17)
	assert.Greater(t, opponent.AliveCount(), 0)
	assert.LessOrEqual(t, opponent.AliveCount(), 17)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, time.Second, opts.ProjectileDelay)
	assert.Equal(t, time.Second, opts.DefeatDelay)
	assert.Equal(t, 0.5, opts.CheatProbability)
	assert.Equal(t, 4, opts.TauntCapacity)
	assert.Equal(t, 5000, opts.MaxPlacementAttempts)
}

func TestBattle_FullRoundOnMiss(t *testing.T) {
	player := testutil.BoardWithShips(core.NewCoordinate(9, 9))
	opponent := testutil.BoardWithShips(core.NewCoordinate(3, 3))
	rng := &testutil.ScriptedRNG{
		Ints:   []int{2, 0}, // taunt index, random target index
		Floats: []float64{0.9},
	}
	b, mock, rec := newTestBattle(player, opponent, rng)

	click(b, core.NewCoordinate(5, 5))
	b.Tick()
	require.Equal(t, PhasePlayerShotResolving, b.Phase())
	opp := b.OpponentBoard()
	assert.Equal(t, core.ShotAt, opp.TileAt(core.NewCoordinate(5, 5)))
	assert.Equal(t, 1, opp.AliveCount(), "a miss leaves the alive count alone")
	assert.Equal(t, taunts.None, b.PendingEvent())

	b.Tick()
	require.Equal(t, PhaseOpponentAiming, b.Phase())
	assert.Equal(t, taunts.RandomTaunt, b.PendingEvent())

	b.Tick()
	require.Equal(t, PhaseOpponentShotResolving, b.Phase())
	assert.Equal(t, []string{taunts.RandomPool[2]}, b.Taunts())
	pl := b.PlayerBoard()
	assert.Equal(t, core.ShotAt, pl.TileAt(core.NewCoordinate(0, 0)))
	assert.Equal(t, taunts.RandomTaunt, b.PendingEvent())

	mock.Add(999 * time.Millisecond)
	b.Tick()
	assert.Equal(t, PhaseOpponentShotResolving, b.Phase(), "projectile still in flight")

	mock.Add(time.Millisecond)
	b.Tick()
	assert.Equal(t, PhasePlayerAiming, b.Phase())

	// The click was consumed; another tick must not fire again.
	b.Tick()
	assert.Equal(t, PhasePlayerAiming, b.Phase())
	assert.True(t, rng.Exhausted())
	assert.Equal(t, 2, b.Shots())

	history := b.History()
	require.Len(t, history, 4)
	expected := [][2]Phase{
		{PhasePlayerAiming, PhasePlayerShotResolving},
		{PhasePlayerShotResolving, PhaseOpponentAiming},
		{PhaseOpponentAiming, PhaseOpponentShotResolving},
		{PhaseOpponentShotResolving, PhasePlayerAiming},
	}
	for i, tr := range history {
		assert.Equal(t, expected[i][0], tr.From)
		assert.Equal(t, expected[i][1], tr.To)
	}
	assert.Len(t, rec.ofType(events.TypePhaseChanged), 4)
	assert.Len(t, rec.ofType(events.TypeShotResolved), 2)
	assert.Len(t, rec.ofType(events.TypeTaunt), 1)
}

func TestBattle_ProjectileDelayFiresOnce(t *testing.T) {
	// Two ship cells so a single opponent shot cannot end the battle.
	player := testutil.BoardWithShips(core.NewCoordinate(9, 9), core.NewCoordinate(8, 8))
	opponent := testutil.BoardWithShips(core.NewCoordinate(3, 3))
	b, mock, _ := newTestBattle(player, opponent, testutil.NewTestRNG(5))

	click(b, core.NewCoordinate(0, 0))
	b.Tick()
	b.Tick()
	b.Tick()
	require.Equal(t, PhaseOpponentShotResolving, b.Phase())
	before := len(b.History())

	for i := 0; i < 9; i++ {
		mock.Add(100 * time.Millisecond)
		b.Tick()
		require.Equal(t, PhaseOpponentShotResolving, b.Phase(), "tick %d", i)
	}
	assert.Equal(t, before, len(b.History()))

	mock.Add(100 * time.Millisecond)
	b.Tick()
	assert.Equal(t, PhasePlayerAiming, b.Phase())
	assert.Equal(t, before+1, len(b.History()))
}

func TestBattle_PlayerHitUsesOpponentHitPool(t *testing.T) {
	player := testutil.BoardWithShips(core.NewCoordinate(9, 9))
	opponent := testutil.BoardWithShips(core.NewCoordinate(3, 3), core.NewCoordinate(4, 3))
	rng := &testutil.ScriptedRNG{Ints: []int{1, 42}, Floats: []float64{0.9}}
	b, _, rec := newTestBattle(player, opponent, rng)

	click(b, core.NewCoordinate(3, 3))
	b.Tick()
	opp := b.OpponentBoard()
	assert.Equal(t, core.ShotAndHit, opp.TileAt(core.NewCoordinate(3, 3)))
	assert.Equal(t, 1, opp.AliveCount())
	assert.Equal(t, taunts.OpponentWasHit, b.PendingEvent())

	b.Tick()
	assert.Equal(t, taunts.OpponentWasHit, b.PendingEvent(), "a pending event is not replaced by a random taunt")

	b.Tick()
	assert.Equal(t, []string{taunts.AfterOpponentHitPool[1]}, b.Taunts())
	pl := b.PlayerBoard()
	assert.Equal(t, core.ShotAt, pl.TileAt(core.NewCoordinate(2, 4)))
	assert.True(t, rng.Exhausted())

	shots := rec.ofType(events.TypeShotResolved)
	require.Len(t, shots, 2)
	playerShot := shots[0].(*events.ShotResolvedEvent)
	assert.Equal(t, events.ShooterPlayer, playerShot.Shooter)
	assert.True(t, playerShot.Hit())
	assert.Equal(t, 1, playerShot.Alive)
	opponentShot := shots[1].(*events.ShotResolvedEvent)
	assert.Equal(t, events.ShooterOpponent, opponentShot.Shooter)
	assert.Equal(t, "random", opponentShot.Mode)
}

func TestBattle_OpponentWins(t *testing.T) {
	player := testutil.BoardWithShips(core.NewCoordinate(0, 0), core.NewCoordinate(1, 0))
	opponent := testutil.BoardWithShips(core.NewCoordinate(9, 9), core.NewCoordinate(8, 9))
	rng := &testutil.ScriptedRNG{
		Ints:   []int{0, 3}, // first taunt, second taunt; the shots come from cheat and hunt
		Floats: []float64{0.1},
	}
	b, mock, rec := newTestBattle(player, opponent, rng)

	// Round one: player misses, opponent cheats onto (0,0).
	click(b, core.NewCoordinate(5, 5))
	b.Tick()
	b.Tick()
	b.Tick()
	hit, ok := b.LastHit()
	require.True(t, ok)
	assert.Equal(t, core.NewCoordinate(0, 0), hit)
	assert.Equal(t, taunts.PlayerWasHit, b.PendingEvent())
	mock.Add(time.Second)
	b.Tick()
	require.Equal(t, PhasePlayerAiming, b.Phase())

	// Round two: the PlayerWasHit event survives the player's miss.
	click(b, core.NewCoordinate(5, 6))
	b.Tick()
	assert.Equal(t, taunts.PlayerWasHit, b.PendingEvent())
	b.Tick()
	assert.Equal(t, taunts.PlayerWasHit, b.PendingEvent())
	b.Tick()
	hit, _ = b.LastHit()
	assert.Equal(t, core.NewCoordinate(1, 0), hit, "hunt continues along the row")
	pl := b.PlayerBoard()
	assert.Equal(t, 0, pl.AliveCount())

	mock.Add(time.Second)
	assert.Equal(t, Outcome{}, b.Tick())
	require.Equal(t, PhasePlayerDefeated, b.Phase())
	assert.Equal(t, []string{
		taunts.RandomPool[0],
		taunts.AfterPlayerHitPool[3],
		taunts.PlayerDefeatedText,
	}, b.Taunts())

	mock.Add(999 * time.Millisecond)
	assert.Equal(t, Outcome{}, b.Tick())

	mock.Add(time.Millisecond)
	want := Outcome{Over: true, Loser: SidePlayer}
	assert.Equal(t, want, b.Tick())
	assert.Equal(t, want, b.Tick(), "terminal state keeps reporting the end")
	assert.True(t, rng.Exhausted())

	ended := rec.ofType(events.TypeGameEnded)
	require.Len(t, ended, 1)
	assert.Equal(t, "player", ended[0].(*events.GameEndedEvent).Loser)
	assert.Equal(t, 4, ended[0].(*events.GameEndedEvent).Shots)
}

func TestBattle_PlayerWins(t *testing.T) {
	player := testutil.BoardWithShips(core.NewCoordinate(0, 0))
	opponent := testutil.BoardWithShips(core.NewCoordinate(4, 4))
	b, mock, _ := newTestBattle(player, opponent, &testutil.ScriptedRNG{})

	click(b, core.NewCoordinate(4, 4))
	b.Tick()
	opp := b.OpponentBoard()
	require.Equal(t, 0, opp.AliveCount())

	b.Tick()
	require.Equal(t, PhaseOpponentDefeated, b.Phase())
	assert.Equal(t, []string{taunts.OpponentDefeatedText}, b.Taunts())

	assert.Equal(t, Outcome{}, b.Tick())
	mock.Add(time.Second)
	assert.Equal(t, Outcome{Over: true, Loser: SideOpponent}, b.Tick())

	pl := b.PlayerBoard()
	assert.Equal(t, 1, pl.AliveCount(), "the opponent never fired")
}

func TestBattle_InputGating(t *testing.T) {
	player := testutil.BoardWithShips(core.NewCoordinate(9, 9))
	opponent := testutil.BoardWithShips(core.NewCoordinate(3, 3))

	t.Run("OutsideOpponentBoard", func(t *testing.T) {
		b, _, _ := newTestBattle(player, opponent, &testutil.ScriptedRNG{})
		for _, p := range [][2]int{{100, 100}, {419, 60}, {740, 100}, {500, 380}, {500, 59}} {
			b.HandlePointer(PointerEvent{Kind: PointerClick, X: p[0], Y: p[1]})
		}
		_, hasCursor := b.Cursor()
		assert.False(t, hasCursor)
		b.Tick()
		assert.Equal(t, PhasePlayerAiming, b.Phase())
	})

	t.Run("MotionMovesCursorWithoutFiring", func(t *testing.T) {
		b, _, _ := newTestBattle(player, opponent, &testutil.ScriptedRNG{})
		b.HandlePointer(pointerAt(PointerMotion, core.NewCoordinate(7, 2)))
		cursor, ok := b.Cursor()
		require.True(t, ok)
		assert.Equal(t, core.NewCoordinate(7, 2), cursor)
		b.Tick()
		assert.Equal(t, PhasePlayerAiming, b.Phase())
	})

	t.Run("ShotLandsWhereClicked", func(t *testing.T) {
		b, _, _ := newTestBattle(player, opponent, &testutil.ScriptedRNG{})
		click(b, core.NewCoordinate(3, 3))
		b.HandlePointer(pointerAt(PointerMotion, core.NewCoordinate(6, 6)))
		b.Tick()
		opp := b.OpponentBoard()
		assert.Equal(t, core.ShotAndHit, opp.TileAt(core.NewCoordinate(3, 3)))
		assert.Equal(t, core.Empty, opp.TileAt(core.NewCoordinate(6, 6)))
	})

	t.Run("IgnoredOutsideAiming", func(t *testing.T) {
		b, _, _ := newTestBattle(player, opponent, &testutil.ScriptedRNG{})
		click(b, core.NewCoordinate(1, 1))
		b.Tick()
		require.Equal(t, PhasePlayerShotResolving, b.Phase())

		click(b, core.NewCoordinate(8, 8))
		cursor, _ := b.Cursor()
		assert.Equal(t, core.NewCoordinate(1, 1), cursor)
	})
}

func TestBattle_RepeatClickConsumesTurn(t *testing.T) {
	player := testutil.BoardWithShips(core.NewCoordinate(9, 9))
	opponent := testutil.BoardFromRows("o........#")
	b, _, _ := newTestBattle(player, opponent, &testutil.ScriptedRNG{})
	before := b.OpponentBoard()

	click(b, core.NewCoordinate(0, 0))
	b.Tick()

	after := b.OpponentBoard()
	assert.Equal(t, PhasePlayerShotResolving, b.Phase())
	assert.Equal(t, before.Tiles(), after.Tiles())
	assert.Equal(t, 1, b.Shots())
}

func TestBattle_BoardsAreCopies(t *testing.T) {
	player := testutil.BoardWithShips(core.NewCoordinate(2, 2))
	opponent := testutil.BoardWithShips(core.NewCoordinate(4, 4))
	b, _, _ := newTestBattle(player, opponent, &testutil.ScriptedRNG{})

	// The options' boards are copied in too.
	player.MarkShot(core.NewCoordinate(2, 2))
	copied := b.PlayerBoard()
	assert.Equal(t, core.HasShip, copied.TileAt(core.NewCoordinate(2, 2)))

	copied.MarkShot(core.NewCoordinate(2, 2))
	again := b.PlayerBoard()
	assert.Equal(t, 1, again.AliveCount())
}

func TestBattle_InvalidTransitionPanics(t *testing.T) {
	b, _, _ := newTestBattle(core.NewBoard(), core.NewBoard(), &testutil.ScriptedRNG{})

	err := testutil.RecoverError(func() {
		b.transition(OpponentDefeatedState{}, "skipping ahead")
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidTransition))
	assert.Equal(t, PhasePlayerAiming, b.Phase())
}

func TestBattle_ShipSunkEventIsFatal(t *testing.T) {
	player := testutil.BoardWithShips(core.NewCoordinate(9, 9))
	b, mock, _ := newTestBattle(player, core.NewBoard(), &testutil.ScriptedRNG{})
	b.state = OpponentAimingState{Entered: mock.Now()}
	b.event = taunts.PlayerShipSunk

	err := testutil.RecoverError(func() { b.Tick() })

	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnsupportedEvent))
}

func TestBattle_HistoryIsBounded(t *testing.T) {
	mock := clock.NewMock()
	opts := DefaultOptions()
	opts.Clock = mock
	opts.RNG = testutil.NewTestRNG(9)
	opts.HistorySize = 3
	b := New(opts)

	click(b, core.NewCoordinate(0, 0))
	b.Tick()
	b.Tick()
	b.Tick()
	mock.Add(time.Second)
	b.Tick()

	history := b.History()
	require.Len(t, history, 3)
	assert.Equal(t, PhasePlayerShotResolving, history[0].From)
	assert.Equal(t, PhasePlayerAiming, history[2].To)
}

// Random games with an autopilot that clicks untargeted opponent cells.
func TestBattle_PlaysToCompletion(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		mock := clock.NewMock()
		rec := &recorder{}
		opts := DefaultOptions()
		opts.Clock = mock
		opts.RNG = testutil.NewTestRNG(seed)
		opts.Bus = rec
		b := New(opts)
		pilot := rand.New(rand.NewSource(seed * 31))

		initialPlayer := b.PlayerBoard()
		initialOpponent := b.OpponentBoard()
		prevPlayer, prevOpponent := initialPlayer.AliveCount(), initialOpponent.AliveCount()

		var outcome Outcome
		for tick := 0; tick < 5000 && !outcome.Over; tick++ {
			if b.Phase() == PhasePlayerAiming {
				opp := b.OpponentBoard()
				cells := opp.Untargeted()
				click(b, cells[pilot.Intn(len(cells))])
			}
			outcome = b.Tick()
			mock.Add(250 * time.Millisecond)

			pl, opp := b.PlayerBoard(), b.OpponentBoard()
			require.LessOrEqual(t, pl.AliveCount(), prevPlayer)
			require.LessOrEqual(t, opp.AliveCount(), prevOpponent)
			prevPlayer, prevOpponent = pl.AliveCount(), opp.AliveCount()
			require.LessOrEqual(t, len(b.Taunts()), taunts.DefaultCapacity)
		}

		require.True(t, outcome.Over, "seed %d did not finish", seed)
		pl, opp := b.PlayerBoard(), b.OpponentBoard()
		switch outcome.Loser {
		case SideOpponent:
			assert.Equal(t, 0, opp.AliveCount())
			assert.Greater(t, pl.AliveCount(), 0)
			assert.Equal(t, PhaseOpponentDefeated, b.Phase())
			// Winning means every original ship cell was hit.
			for i, tile := range initialOpponent.Tiles() {
				if tile == core.HasShip {
					assert.Equal(t, core.ShotAndHit, opp.TileAt(core.FromIndex(i)))
				}
			}
		case SidePlayer:
			assert.Equal(t, 0, pl.AliveCount())
			assert.Equal(t, PhasePlayerDefeated, b.Phase())
		default:
			t.Fatalf("seed %d: unexpected loser %s", seed, outcome.Loser)
		}

		assert.Len(t, rec.ofType(events.TypePhaseChanged), len(b.History()))
		assert.Len(t, rec.ofType(events.TypeGameEnded), 1)
		assert.Equal(t, len(rec.ofType(events.TypeShotResolved)), b.Shots())
	}
}
