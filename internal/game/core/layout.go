package core

// Screen layout of the two boards, in pixels.
const (
	CellPixels        = 32
	BoardPixels       = BoardSize * CellPixels
	BoardOriginY      = 60
	PlayerBoardX      = 40
	OpponentBoardX    = 420
	opponentBoardMaxX = OpponentBoardX + BoardPixels
	boardMaxY         = BoardOriginY + BoardPixels
)

// OpponentBoardCell hit-tests a screen position against the opponent board.
// The rectangle is half-open: [420,740) x [60,380).
func OpponentBoardCell(x, y int) (Coordinate, bool) {
	if x < OpponentBoardX || x >= opponentBoardMaxX || y < BoardOriginY || y >= boardMaxY {
		return Coordinate{}, false
	}
	return Coordinate{
		X: (x - OpponentBoardX) / CellPixels,
		Y: (y - BoardOriginY) / CellPixels,
	}, true
}

// CellOrigin returns the top-left pixel of cell c on the board drawn at boardX.
func CellOrigin(boardX int, c Coordinate) (int, int) {
	return boardX + c.X*CellPixels, BoardOriginY + c.Y*CellPixels
}

// CellCenter returns the centre pixel of cell c on the board drawn at boardX.
func CellCenter(boardX int, c Coordinate) (int, int) {
	x, y := CellOrigin(boardX, c)
	return x + CellPixels/2, y + CellPixels/2
}
