package fleet

import (
	"fmt"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/core"
)

// ShipLengths is the fixed fleet placed on every board (17 cells in total).
var ShipLengths = []int{2, 3, 3, 4, 5}

// TotalShipCells is the number of ship cells when no two ships overlap.
const TotalShipCells = 17

// DefaultMaxAttempts bounds the retries per ship.
const DefaultMaxAttempts = 5000

// Config holds configuration for fleet placement
type Config struct {
	// MaxAttempts is how many random origins are tried per ship before
	// placement is considered broken.
	MaxAttempts int
}

// DefaultConfig returns the standard placement configuration
func DefaultConfig() Config {
	return Config{MaxAttempts: DefaultMaxAttempts}
}

// Placement records where one ship went.
type Placement struct {
	Length     int
	Origin     core.Coordinate
	Horizontal bool
	Attempts   int
}

// Cells returns the run of cells the ship occupies.
func (p Placement) Cells() []core.Coordinate {
	step := core.Coordinate{X: 0, Y: 1}
	if p.Horizontal {
		step = core.Coordinate{X: 1, Y: 0}
	}
	cells := make([]core.Coordinate, p.Length)
	for i := range cells {
		cells[i] = p.Origin.Add(step.Scale(i))
	}
	return cells
}

// Generator places the fleet with an injected RNG
type Generator struct {
	config Config
	rng    core.RNG
}

// NewGenerator creates a new fleet generator
func NewGenerator(config Config, rng core.RNG) *Generator {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultMaxAttempts
	}
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// Generate returns a board populated with every ship in ShipLengths.
//
// Ships are not checked against each other, so two runs may share cells and
// the board then holds fewer than TotalShipCells ship cells.
func (g *Generator) Generate() (core.Board, []Placement) {
	board := core.NewBoard()
	placements := make([]Placement, 0, len(ShipLengths))

	for _, length := range ShipLengths {
		p := g.placeShip(length)
		for _, c := range p.Cells() {
			board.PlaceShip(c)
		}
		placements = append(placements, p)
	}

	return board, placements
}

func (g *Generator) placeShip(length int) Placement {
	for attempts := 1; attempts <= g.config.MaxAttempts; attempts++ {
		p := Placement{
			Length: length,
			Origin: core.NewCoordinate(g.rng.Intn(core.BoardSize), g.rng.Intn(core.BoardSize)),
			// 0 = horizontal, 1 = vertical
			Horizontal: g.rng.Intn(2) == 0,
			Attempts:   attempts,
		}

		cells := p.Cells()
		if !cells[len(cells)-1].IsValid() {
			continue
		}
		return p
	}

	panic(fmt.Errorf("%w: ship of length %d after %d attempts",
		core.ErrPlacementExhausted, length, g.config.MaxAttempts))
}

// Generate is shorthand for NewGenerator(DefaultConfig(), rng).Generate().
func Generate(rng core.RNG) core.Board {
	board, _ := NewGenerator(DefaultConfig(), rng).Generate()
	return board
}
