package taunts

import (
	"fmt"

	"github.com/gammazero/deque"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/core"
)

// DefaultCapacity is how many lines the dialog box shows.
const DefaultCapacity = 4

// Feed is a bounded FIFO of opponent lines, oldest first.
type Feed struct {
	rng      core.RNG
	capacity int
	lines    deque.Deque[string]
}

// NewFeed creates an empty feed. A non-positive capacity uses DefaultCapacity.
func NewFeed(rng core.RNG, capacity int) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{
		rng:      rng,
		capacity: capacity,
	}
}

// Push turns *ev into a line drawn uniformly from the matching pool, appends
// it and resets *ev to None. None is a no-op. It returns the appended line
// and whether anything was appended.
//
// The ship-sunk events have no pool yet and panic with ErrUnsupportedEvent.
func (f *Feed) Push(ev *TurnEvent) (string, bool) {
	var pool []string
	switch *ev {
	case None:
		return "", false
	case RandomTaunt:
		pool = RandomPool
	case OpponentWasHit:
		pool = AfterOpponentHitPool
	case PlayerWasHit:
		pool = AfterPlayerHitPool
	default:
		// OpponentShipSunk, PlayerShipSunk
		panic(fmt.Errorf("%w: %s", core.ErrUnsupportedEvent, *ev))
	}

	line := pool[f.rng.Intn(len(pool))]
	f.Append(line)
	*ev = None
	return line, true
}

// Append adds a line verbatim, evicting from the front beyond capacity.
func (f *Feed) Append(line string) {
	f.lines.PushBack(line)
	for f.lines.Len() > f.capacity {
		f.lines.PopFront()
	}
}

// Lines returns a copy of the feed, oldest first.
func (f *Feed) Lines() []string {
	out := make([]string, f.lines.Len())
	for i := range out {
		out[i] = f.lines.At(i)
	}
	return out
}

func (f *Feed) Len() int {
	return f.lines.Len()
}

func (f *Feed) Capacity() int {
	return f.capacity
}
