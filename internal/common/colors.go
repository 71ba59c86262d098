package common

import (
	"image/color"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/core"
)

// Tile colors
var (
	WaterColor = color.RGBA{30, 70, 140, 255}
	MissColor  = color.RGBA{40, 180, 60, 200}
	HitColor   = color.RGBA{210, 40, 40, 220}
	ShipColor  = color.RGBA{150, 150, 150, 200}
)

// UI colors
var (
	BackgroundColor   = color.RGBA{10, 20, 40, 255}
	GridLineColor     = color.RGBA{20, 40, 90, 255}
	CursorColor       = color.RGBA{255, 220, 60, 255}
	LabelTextColor    = color.White
	DialogBorderColor = color.White
	DialogTextColor   = color.White
	PortraitColor     = color.RGBA{230, 140, 220, 255}
)

// TileOverlay returns the color drawn over the water for tile, if any.
// Unhit ships only show when revealShips is set.
func TileOverlay(tile core.TileState, revealShips bool) (color.Color, bool) {
	switch tile {
	case core.ShotAt:
		return MissColor, true
	case core.ShotAndHit:
		return HitColor, true
	case core.HasShip:
		return ShipColor, revealShips
	default:
		return nil, false
	}
}
