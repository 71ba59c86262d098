package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/config"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/events"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/states"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/logging"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/ui"
)

var (
	configPath string
	seedFlag   int64
	logLevel   string
	showShips  bool

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "battle",
	Short: "Play Battleships against a cheating unicorn",
	Long: `battle opens a window with your fleet on the left and the unicorn's
on the right. Click a cell on the unicorn's board to fire; the unicorn
fires back and taunts you in the dialog box below.

Play a game
	battle

Watch the autopilot play headless games
	battle simulate --games 10
`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              play,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./config/config.yaml)")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "Seed for fleets, taunts and the unicorn's aim (0 picks one from the clock)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")
	rootCmd.Flags().BoolVar(&showShips, "show-ships", false, "Reveal the unicorn's ships")

	rootCmd.AddCommand(simulateCmd)
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.Init(configPath); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if cmd.Flags().Changed("seed") {
		config.Set("battle.seed", seedFlag)
	}
	if cmd.Flags().Changed("log-level") {
		config.Set("logging.level", logLevel)
	}
	if cmd.Flags().Changed("show-ships") {
		config.Set("development.show_opponent_ships", showShips)
	}

	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		return err
	}

	var err error
	logger, err = logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		return err
	}
	if path := config.ConfigFilePath(); path != "" {
		logger.Debug().Str("path", path).Msg("Configuration loaded")
	}
	return nil
}

func play(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	bus := newEventBus(cfg)
	seed := resolveSeed(cfg.Battle.Seed)
	battle := states.New(battleOptions(cfg, seed, clock.New(), bus))
	logger.Info().
		Int64("seed", seed).
		Str("game_id", battle.GameID()).
		Msg("Starting battle")

	if config.ConfigFilePath() != "" {
		config.WatchConfig(func(c *config.Config) {
			if err := logging.SetLevel(c.Logging.Level); err != nil {
				logger.Warn().Err(err).Msg("Ignoring reloaded log level")
				return
			}
			logger.Info().Str("level", c.Logging.Level).Msg("Configuration reloaded")
		})
	}

	game := ui.NewGame(battle, ui.Settings{
		Width:          cfg.UI.Window.Width,
		Height:         cfg.UI.Window.Height,
		Title:          cfg.UI.Window.Title,
		TPS:            cfg.UI.Window.TPS,
		WrapWidth:      cfg.UI.Dialog.WrapWidth,
		RevealOpponent: cfg.Development.ShowOpponentShips,
	}, logger)

	outcome, err := ui.Run(game)
	if err != nil {
		return err
	}
	switch {
	case !outcome.Over:
		fmt.Fprintln(cmd.OutOrStdout(), "Battle abandoned.")
	case outcome.Loser == states.SideOpponent:
		fmt.Fprintf(cmd.OutOrStdout(), "You sank the unicorn's fleet in %d shots.\n", battle.Shots())
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "The unicorn sank your fleet in %d shots.\n", battle.Shots())
	}
	return nil
}

func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// newEventBus wires the structured event logger onto a fresh bus.
func newEventBus(cfg *config.Config) *events.EventBus {
	bus := events.NewEventBus(logger)
	sub := subscribers.NewLoggerSubscriber("battle-events", logger, zerolog.DebugLevel)
	sub.SetDevMode(cfg.Development.VerboseLogging)
	bus.Subscribe(sub)
	return bus
}

func battleOptions(cfg *config.Config, seed int64, clk clock.Clock, bus events.Publisher) states.Options {
	opts := states.DefaultOptions()
	opts.Clock = clk
	opts.RNG = rand.New(rand.NewSource(seed))
	opts.Logger = logger
	opts.Bus = bus
	opts.ProjectileDelay = cfg.Battle.ProjectileDelay
	opts.DefeatDelay = cfg.Battle.DefeatDelay
	opts.CheatProbability = cfg.Battle.CheatProbability
	opts.TauntCapacity = cfg.Battle.TauntCapacity
	opts.MaxPlacementAttempts = cfg.Battle.MaxPlacementAttempts
	return opts
}
