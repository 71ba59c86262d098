package renderer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/common"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/core"
)

// -----------------------------------------------------------------------------
// Renderer
// -----------------------------------------------------------------------------

type BoardRenderer struct {
	cellSize    int
	defaultFont font.Face
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(f font.Face) *BoardRenderer {
	return &BoardRenderer{cellSize: core.CellPixels, defaultFont: f}
}

// Draw renders a board with its top-left corner at (boardX, core.BoardOriginY).
// Ship cells that have not been hit are only drawn when revealShips is set.
func (br *BoardRenderer) Draw(screen *ebiten.Image, boardX int, board core.Board, revealShips bool, label string) {
	size := float32(br.cellSize)

	for i, tile := range board.Tiles() {
		x, y := core.CellOrigin(boardX, core.FromIndex(i))
		fx, fy := float32(x), float32(y)

		vector.DrawFilledRect(screen, fx, fy, size, size, common.WaterColor, false)
		if overlay, ok := common.TileOverlay(tile, revealShips); ok {
			vector.DrawFilledRect(screen, fx+2, fy+2, size-4, size-4, overlay, false)
		}
		vector.StrokeRect(screen, fx, fy, size, size, 1, common.GridLineColor, false)
	}

	if label != "" && br.defaultFont != nil {
		text.Draw(screen, label, br.defaultFont, boardX, core.BoardOriginY-12, common.LabelTextColor)
	}
}

// DrawCursor outlines the opponent cell under the pointer.
func (br *BoardRenderer) DrawCursor(screen *ebiten.Image, c core.Coordinate) {
	x, y := core.CellOrigin(core.OpponentBoardX, c)
	size := float32(br.cellSize)
	vector.StrokeRect(screen, float32(x), float32(y), size, size, 2, common.CursorColor, false)
}
