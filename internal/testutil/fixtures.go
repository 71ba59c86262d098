package testutil

import (
	"fmt"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/core"
)

// BoardFromRows builds a board from the symbols produced by core.Board.Rows:
// '.' empty, '#' ship, 'o' miss, 'X' hit. Missing rows are left empty.
func BoardFromRows(rows ...string) core.Board {
	board := core.NewBoard()
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			c := core.NewCoordinate(x, y)
			switch row[x] {
			case '.':
			case '#':
				board.PlaceShip(c)
			case 'o':
				board.MarkShot(c)
			case 'X':
				board.PlaceShip(c)
				board.MarkShot(c)
			default:
				panic(fmt.Sprintf("BoardFromRows: unknown symbol %q at %s", row[x], c))
			}
		}
	}
	return board
}

// BoardWithShips returns an empty board with HasShip at every given cell.
func BoardWithShips(cells ...core.Coordinate) core.Board {
	board := core.NewBoard()
	for _, c := range cells {
		board.PlaceShip(c)
	}
	return board
}

// FullyShotBoard returns a board where every cell has been fired at.
func FullyShotBoard() core.Board {
	board := core.NewBoard()
	for i := 0; i < core.NumCells; i++ {
		board.MarkShot(core.FromIndex(i))
	}
	return board
}
