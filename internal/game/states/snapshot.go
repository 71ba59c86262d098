package states

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/core"
)

// BoardSnapshot is one board rendered as text rows ('.' empty, '#' ship,
// 'o' miss, 'X' hit).
type BoardSnapshot struct {
	Alive int      `yaml:"alive"`
	Rows  []string `yaml:"rows"`
}

// Snapshot is a read-only report of a battle
type Snapshot struct {
	GameID   string        `yaml:"game_id"`
	Phase    string        `yaml:"phase"`
	Shots    int           `yaml:"shots"`
	LastHit  string        `yaml:"last_hit,omitempty"`
	Pending  string        `yaml:"pending_event"`
	Player   BoardSnapshot `yaml:"player"`
	Opponent BoardSnapshot `yaml:"opponent"`
	Taunts   []string      `yaml:"taunts"`
}

// Snapshot captures the current battle state
func (b *Battle) Snapshot() Snapshot {
	s := Snapshot{
		GameID:   b.id,
		Phase:    b.state.Phase().String(),
		Shots:    b.shots,
		Pending:  b.event.String(),
		Player:   snapshotBoard(&b.playerBoard),
		Opponent: snapshotBoard(&b.opponentBoard),
		Taunts:   b.feed.Lines(),
	}
	if b.lastHit != nil {
		s.LastHit = b.lastHit.String()
	}
	return s
}

func snapshotBoard(board *core.Board) BoardSnapshot {
	return BoardSnapshot{
		Alive: board.AliveCount(),
		Rows:  board.Rows(),
	}
}

// YAML renders the snapshot as a YAML document
func (s Snapshot) YAML() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return string(out), nil
}
