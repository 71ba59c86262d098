package core

import (
	"fmt"
	"strings"
)

// BoardSize is the edge length of every board.
const BoardSize = 10

// NumCells is the number of tiles on a board.
const NumCells = BoardSize * BoardSize

// TileState is the state of a single cell. Exactly one value applies at a time.
type TileState int

const (
	Empty TileState = iota
	ShotAt
	ShotAndHit
	HasShip
)

// String returns the string representation of a TileState
func (t TileState) String() string {
	switch t {
	case Empty:
		return "Empty"
	case ShotAt:
		return "ShotAt"
	case ShotAndHit:
		return "ShotAndHit"
	case HasShip:
		return "HasShip"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// IsShot reports whether the cell has already been targeted.
func (t TileState) IsShot() bool { return t == ShotAt || t == ShotAndHit }

// Symbol is the single-character form used by Rows.
func (t TileState) Symbol() byte {
	switch t {
	case ShotAt:
		return 'o'
	case ShotAndHit:
		return 'X'
	case HasShip:
		return '#'
	default:
		return '.'
	}
}

// Board is one side's grid. It is a value type: assigning a Board copies
// every cell, so callers never share tiles with the game.
type Board struct {
	tiles [NumCells]TileState
}

func NewBoard() Board {
	return Board{}
}

// TileAt returns the state of the cell at c. Panics when c is off the grid.
func (b *Board) TileAt(c Coordinate) TileState {
	return b.tiles[mustIndex(c)]
}

// MarkShot fires at c and returns the resulting state.
// Empty becomes ShotAt and HasShip becomes ShotAndHit. Shooting a cell that
// was already shot changes nothing.
func (b *Board) MarkShot(c Coordinate) TileState {
	idx := mustIndex(c)
	switch b.tiles[idx] {
	case Empty:
		b.tiles[idx] = ShotAt
	case HasShip:
		b.tiles[idx] = ShotAndHit
	}
	return b.tiles[idx]
}

// PlaceShip marks c as holding an undiscovered ship.
func (b *Board) PlaceShip(c Coordinate) {
	b.tiles[mustIndex(c)] = HasShip
}

// AliveCount is the number of ship cells not yet hit.
func (b *Board) AliveCount() int {
	alive := 0
	for _, t := range b.tiles {
		if t == HasShip {
			alive++
		}
	}
	return alive
}

// Untargeted returns every cell that has not been shot yet, in row-major order.
func (b *Board) Untargeted() []Coordinate {
	cells := make([]Coordinate, 0, NumCells)
	for i, t := range b.tiles {
		if !t.IsShot() {
			cells = append(cells, FromIndex(i))
		}
	}
	return cells
}

// Tiles returns a copy of the grid in row-major order.
func (b *Board) Tiles() [NumCells]TileState {
	return b.tiles
}

// Rows renders the board one string per row.
func (b *Board) Rows() []string {
	rows := make([]string, BoardSize)
	for y := 0; y < BoardSize; y++ {
		var sb strings.Builder
		for x := 0; x < BoardSize; x++ {
			sb.WriteByte(b.tiles[y*BoardSize+x].Symbol())
		}
		rows[y] = sb.String()
	}
	return rows
}

func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}

func mustIndex(c Coordinate) int {
	if !c.IsValid() {
		panic(fmt.Errorf("%w: %s", ErrOutOfBounds, c))
	}
	return c.ToIndex()
}
