package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/spf13/cobra"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/config"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/autopilot"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/events"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/states"
)

var (
	simGames       int
	simMaxTicks    int
	simPrintBoards bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play headless battles with an autopilot standing in for you",
	Long: `simulate plays battles without opening a window. The autopilot clicks
random untargeted cells on the unicorn's board and the clock advances one
frame per tick, so the configured delays cost no real time.

Game N uses seed+N, so a fixed --seed replays the same set of battles.`,
	Args: cobra.NoArgs,
	RunE: simulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simGames, "games", 1, "Number of battles to play")
	simulateCmd.Flags().IntVar(&simMaxTicks, "max-ticks", autopilot.DefaultMaxTicks, "Give up on a battle after this many ticks")
	simulateCmd.Flags().BoolVar(&simPrintBoards, "print-boards", false, "Print both boards after each battle")
}

func simulate(cmd *cobra.Command, args []string) error {
	if simGames < 1 {
		return fmt.Errorf("--games must be at least 1, got %d", simGames)
	}

	cfg := config.Get()
	out := cmd.OutOrStdout()
	base := resolveSeed(cfg.Battle.Seed)
	frame := time.Second / time.Duration(cfg.UI.Window.TPS)
	pilot := autopilot.NewPilot(rand.New(rand.NewSource(base^0x5eed)), logger)

	var (
		playerWins int
		totalShots int
		last       *states.Battle
	)
	for i := 0; i < simGames; i++ {
		seed := base + int64(i)
		bus := newEventBus(cfg)
		tally := &autopilot.Tally{}
		tally.Attach(bus)

		mock := clock.NewMock()
		mock.Set(time.Now())
		battle := states.New(battleOptions(cfg, seed, mock, bus))

		result, err := pilot.Play(battle, mock, autopilot.Config{Frame: frame, MaxTicks: simMaxTicks})
		if err != nil {
			return fmt.Errorf("battle %d (seed %d): %w", i+1, seed, err)
		}

		if result.Outcome.Loser == states.SideOpponent {
			playerWins++
		}
		totalShots += battle.Shots()
		last = battle

		fmt.Fprintf(out, "battle %d seed=%d loser=%s shots=%d (you %d/%d hits, unicorn %d/%d hits, %d cheats) transitions=%d ticks=%d game_time=%s\n",
			i+1, seed, result.Outcome.Loser,
			battle.Shots(),
			tally.PlayerHits, tally.PlayerShots,
			tally.OpponentHits, tally.OpponentShots, tally.CheatShots,
			bus.Published(events.TypePhaseChanged), result.Ticks, result.Elapsed.Round(time.Millisecond))
		if simPrintBoards {
			printBoards(out, battle)
		}
	}

	fmt.Fprintf(out, "\nyou won %d of %d battles, %.1f shots per battle\n\n",
		playerWins, simGames, float64(totalShots)/float64(simGames))

	report, err := last.Snapshot().YAML()
	if err != nil {
		return fmt.Errorf("failed to render final snapshot: %w", err)
	}
	fmt.Fprint(out, report)
	return nil
}

func printBoards(out io.Writer, battle *states.Battle) {
	player := battle.PlayerBoard()
	opponent := battle.OpponentBoard()
	fmt.Fprintln(out, "  your fleet   unicorn")
	playerRows, opponentRows := player.Rows(), opponent.Rows()
	for i := range playerRows {
		fmt.Fprintf(out, "  %s   %s\n", playerRows[i], opponentRows[i])
	}
}
