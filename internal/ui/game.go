package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/common"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/core"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/states"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/ui/input"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/ui/renderer"
)

// Settings holds the window and rendering options for a Game
type Settings struct {
	Width, Height  int
	Title          string
	TPS            int
	WrapWidth      int
	RevealOpponent bool
}

// Game hosts a battle in an ebiten window. It forwards pointer input, ticks
// the battle once per frame and draws whatever the battle exposes.
type Game struct {
	battle        *states.Battle
	settings      Settings
	inputHandler  *input.Handler
	boardRenderer *renderer.BoardRenderer
	dialog        *renderer.DialogBox
	defaultFont   font.Face
	logger        zerolog.Logger

	outcome     states.Outcome
	status      string
	statusTicks int
}

// NewGame creates a new ebiten game around battle.
func NewGame(battle *states.Battle, settings Settings, logger zerolog.Logger) *Game {
	g := &Game{
		battle:       battle,
		settings:     settings,
		inputHandler: input.NewHandler(),
		defaultFont:  basicfont.Face7x13,
		logger:       logger.With().Str("component", "ui").Logger(),
	}
	g.boardRenderer = renderer.NewBoardRenderer(g.defaultFont)
	g.dialog = renderer.NewDialogBox(g.defaultFont, settings.WrapWidth)
	return g
}

// Run opens the window and blocks until it is closed. It returns the
// battle's outcome, which is only Over if the battle finished.
func Run(g *Game) (states.Outcome, error) {
	ebiten.SetWindowSize(g.settings.Width, g.settings.Height)
	ebiten.SetWindowTitle(g.settings.Title)
	ebiten.SetTPS(g.settings.TPS)

	if err := ebiten.RunGame(g); err != nil {
		return g.outcome, fmt.Errorf("ebiten run failed: %w", err)
	}
	return g.outcome, nil
}

// Update proceeds the game state.
func (g *Game) Update() error {
	if g.inputHandler.QuitRequested() {
		return ebiten.Termination
	}

	for _, ev := range g.inputHandler.Update() {
		g.battle.HandlePointer(ev)
	}

	if g.statusTicks > 0 {
		g.statusTicks--
	}
	if g.inputHandler.CopyRequested() {
		g.copyReport()
	}

	if !g.outcome.Over {
		g.outcome = g.battle.Tick()
		if g.outcome.Over {
			g.logger.Info().Str("loser", g.outcome.Loser.String()).Msg("Battle finished")
		}
	}
	return nil
}

// copyReport puts the YAML snapshot on the clipboard and shows the result in
// the status line for two seconds.
func (g *Game) copyReport() {
	g.statusTicks = 2 * g.settings.TPS

	report, err := g.battle.Snapshot().YAML()
	if err == nil {
		err = clipboard.WriteAll(report)
	}
	if err != nil {
		g.logger.Warn().Err(err).Msg("Failed to copy battle report")
		g.status = "Could not copy the battle report"
		return
	}
	g.status = "Battle report copied to clipboard"
}

// Draw renders the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(common.BackgroundColor)

	g.boardRenderer.Draw(screen, core.PlayerBoardX, g.battle.PlayerBoard(), true, "Your fleet")
	g.boardRenderer.Draw(screen, core.OpponentBoardX, g.battle.OpponentBoard(), g.settings.RevealOpponent, "The unicorn's fleet")

	if g.battle.Phase() == states.PhasePlayerAiming {
		if cursor, ok := g.battle.Cursor(); ok {
			g.boardRenderer.DrawCursor(screen, cursor)
		}
	}

	g.dialog.Draw(screen, g.battle.Taunts())

	ebitenutil.DebugPrintAt(screen, g.statusLine(), 5, 5)
}

func (g *Game) statusLine() string {
	switch {
	case g.outcome.Over && g.outcome.Loser == states.SideOpponent:
		return "You won! Press Esc to leave."
	case g.outcome.Over:
		return "The unicorn won. Press Esc to leave."
	case g.statusTicks > 0:
		return g.status
	case g.battle.Phase() == states.PhasePlayerAiming:
		return "Your turn: click a cell on the unicorn's board (C copies a report)"
	default:
		return "The unicorn is taking aim..."
	}
}

// Layout defines the Ebitengine screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.settings.Width, g.settings.Height
}
