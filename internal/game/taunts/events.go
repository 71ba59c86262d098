package taunts

import "fmt"

// TurnEvent is the noteworthy thing that happened since the opponent last
// spoke. The feed turns it into a line and resets it to None.
type TurnEvent int

const (
	None TurnEvent = iota
	RandomTaunt
	OpponentWasHit
	PlayerWasHit
	OpponentShipSunk
	PlayerShipSunk
)

// String returns the string representation of a TurnEvent
func (e TurnEvent) String() string {
	switch e {
	case None:
		return "None"
	case RandomTaunt:
		return "RandomTaunt"
	case OpponentWasHit:
		return "OpponentWasHit"
	case PlayerWasHit:
		return "PlayerWasHit"
	case OpponentShipSunk:
		return "OpponentShipSunk"
	case PlayerShipSunk:
		return "PlayerShipSunk"
	default:
		return fmt.Sprintf("Unknown(%d)", int(e))
	}
}
