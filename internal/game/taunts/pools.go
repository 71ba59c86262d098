package taunts

// RandomPool is used when the opponent has nothing better to say.
var RandomPool = []string{
	"I will end you",
	"Your puny fleet is no match for me",
	"Mess with the best and die like the rest",
	"Don't bring a knife to a gunfight",
	"Stop playing hide and seek",
}

// AfterPlayerHitPool is used after the opponent hit one of the player's ships.
var AfterPlayerHitPool = []string{
	"There's nothing like the smell of napalm in the morning",
	"You should've stayed at home",
	"Go home and be a family man!",
	"I salute my fallen enemy!",
}

// AfterOpponentHitPool is used after the player hit one of the opponent's
// ships. It currently shares its lines with AfterPlayerHitPool.
var AfterOpponentHitPool = []string{
	"There's nothing like the smell of napalm in the morning",
	"You should've stayed at home",
	"Go home and be a family man!",
	"I salute my fallen enemy!",
}

// Defeat lines appended when a fleet is wiped out.
const (
	OpponentDefeatedText = "You definitely cheated."
	PlayerDefeatedText   = "I broke all of your toys. You cryin' now?"
)
