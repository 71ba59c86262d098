package states

import "fmt"

// Phase is the turn phase of a battle
type Phase int

const (
	// PhasePlayerAiming - waiting for the player to click an opponent cell
	PhasePlayerAiming Phase = iota

	// PhasePlayerShotResolving - the player's shot has landed
	PhasePlayerShotResolving

	// PhaseOpponentAiming - the opponent speaks and fires
	PhaseOpponentAiming

	// PhaseOpponentShotResolving - the opponent's projectile is in flight
	PhaseOpponentShotResolving

	// PhaseOpponentDefeated - every opponent ship cell has been hit
	PhaseOpponentDefeated

	// PhasePlayerDefeated - every player ship cell has been hit
	PhasePlayerDefeated
)

// String returns the string representation of a Phase
func (p Phase) String() string {
	switch p {
	case PhasePlayerAiming:
		return "PlayerAiming"
	case PhasePlayerShotResolving:
		return "PlayerShotResolving"
	case PhaseOpponentAiming:
		return "OpponentAiming"
	case PhaseOpponentShotResolving:
		return "OpponentShotResolving"
	case PhaseOpponentDefeated:
		return "OpponentDefeated"
	case PhasePlayerDefeated:
		return "PlayerDefeated"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// IsTerminal returns true if the phase ends the battle
func (p Phase) IsTerminal() bool {
	return p == PhaseOpponentDefeated || p == PhasePlayerDefeated
}

// AcceptsInput returns true if pointer events are processed in this phase
func (p Phase) AcceptsInput() bool {
	return p == PhasePlayerAiming
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p Phase) AllowedTransitions() []Phase {
	switch p {
	case PhasePlayerAiming:
		return []Phase{PhasePlayerShotResolving}
	case PhasePlayerShotResolving:
		return []Phase{PhaseOpponentAiming, PhaseOpponentDefeated}
	case PhaseOpponentAiming:
		return []Phase{PhaseOpponentShotResolving}
	case PhaseOpponentShotResolving:
		return []Phase{PhasePlayerAiming, PhasePlayerDefeated}
	default:
		return []Phase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p Phase) CanTransitionTo(target Phase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// Side identifies one of the two fleets
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideOpponent
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return "none"
	}
}

// Outcome is what Tick reports to the host. Loser is only meaningful when
// Over is set.
type Outcome struct {
	Over  bool
	Loser Side
}
