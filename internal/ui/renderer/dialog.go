package renderer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/common"
	"github.com/mitchelldurbincs/UnicornBattleships/internal/ui/layout"
)

// DialogBox draws the opponent's taunts under the boards
type DialogBox struct {
	defaultFont font.Face
	wrapWidth   uint
}

func NewDialogBox(f font.Face, wrapWidth int) *DialogBox {
	return &DialogBox{defaultFont: f, wrapWidth: uint(wrapWidth)}
}

// Draw renders the portrait slot, the box outline, the title and the newest
// wrapped taunt rows.
func (d *DialogBox) Draw(screen *ebiten.Image, taunts []string) {
	vector.StrokeRect(screen,
		layout.PortraitX, layout.PortraitY, layout.PortraitSize, layout.PortraitSize,
		2, common.PortraitColor, false)
	vector.StrokeRect(screen,
		layout.DialogX, layout.DialogY, layout.DialogWidth, layout.DialogHeight,
		1, common.DialogBorderColor, false)

	if d.defaultFont == nil {
		return
	}

	text.Draw(screen, "UNI", d.defaultFont,
		layout.PortraitX+layout.PortraitSize/2-10, layout.PortraitY+layout.PortraitSize/2, common.PortraitColor)

	x := layout.DialogX + layout.DialogPadding
	text.Draw(screen, layout.DialogTitle, d.defaultFont, x, layout.LineY(0), common.DialogTextColor)
	for i, row := range layout.WrapTaunts(taunts, d.wrapWidth, layout.MaxDialogLines) {
		text.Draw(screen, row, d.defaultFont, x, layout.LineY(i+1), common.DialogTextColor)
	}
}
