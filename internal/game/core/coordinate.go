package core

import "fmt"

// Coordinate represents a cell on a board. X is the column, Y is the row.
type Coordinate struct {
	X, Y int
}

// NewCoordinate creates a new coordinate with the given column and row
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// FromIndex creates a coordinate from a board array index using row-major ordering
func FromIndex(idx int) Coordinate {
	return Coordinate{
		X: idx % BoardSize,
		Y: idx / BoardSize,
	}
}

// IsValid checks if the coordinate lies on the 10x10 grid
func (c Coordinate) IsValid() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// ToIndex converts the coordinate to a board array index using row-major ordering
func (c Coordinate) ToIndex() int {
	return c.Y*BoardSize + c.X
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

// Scale returns the coordinate multiplied by n on both axes
func (c Coordinate) Scale(n int) Coordinate {
	return Coordinate{X: c.X * n, Y: c.Y * n}
}

// Equal checks if two coordinates are equal
func (c Coordinate) Equal(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
