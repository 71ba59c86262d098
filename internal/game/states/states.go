package states

import "time"

// State is one of the per-phase structs below. Only the timed phases carry
// a timestamp.
type State interface {
	Phase() Phase
}

// PlayerAimingState waits for a click on the opponent board
type PlayerAimingState struct{}

// PlayerShotResolvingState checks whether the player's shot ended the battle
type PlayerShotResolvingState struct{}

// OpponentAimingState has the opponent speak and fire
type OpponentAimingState struct {
	Entered time.Time
}

// OpponentShotResolvingState waits out the projectile delay. AimingEntered
// is when the preceding OpponentAimingState was entered.
type OpponentShotResolvingState struct {
	AimingEntered time.Time
}

// OpponentDefeatedState holds for the defeat delay before signalling the end
type OpponentDefeatedState struct {
	Entered time.Time
}

// PlayerDefeatedState holds for the defeat delay before signalling the end
type PlayerDefeatedState struct {
	Entered time.Time
}

func (PlayerAimingState) Phase() Phase          { return PhasePlayerAiming }
func (PlayerShotResolvingState) Phase() Phase   { return PhasePlayerShotResolving }
func (OpponentAimingState) Phase() Phase        { return PhaseOpponentAiming }
func (OpponentShotResolvingState) Phase() Phase { return PhaseOpponentShotResolving }
func (OpponentDefeatedState) Phase() Phase      { return PhaseOpponentDefeated }
func (PlayerDefeatedState) Phase() Phase        { return PhasePlayerDefeated }
