package states

import "github.com/mitchelldurbincs/UnicornBattleships/internal/game/core"

// PointerKind distinguishes pointer movement from a completed click
type PointerKind int

const (
	PointerMotion PointerKind = iota
	PointerClick
)

func (k PointerKind) String() string {
	if k == PointerClick {
		return "click"
	}
	return "motion"
}

// PointerEvent is a pointer position in screen pixels
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// HandlePointer records the cursor cell and, for clicks, arms the shot.
// Events outside PlayerAiming or outside the opponent board are dropped.
func (b *Battle) HandlePointer(ev PointerEvent) {
	phase := b.state.Phase()
	if !phase.AcceptsInput() {
		b.logger.Trace().
			Str("kind", ev.Kind.String()).
			Str("phase", phase.String()).
			Msg("Pointer event ignored outside aiming phase")
		return
	}

	cell, ok := core.OpponentBoardCell(ev.X, ev.Y)
	if !ok {
		b.logger.Trace().
			Str("kind", ev.Kind.String()).
			Int("x", ev.X).
			Int("y", ev.Y).
			Msg("Pointer event outside opponent board")
		return
	}

	b.cursor = cell
	b.hasCursor = true
	if ev.Kind == PointerClick {
		b.click = cell
		b.pendingClick = true
	}
}

// Cursor returns the last opponent cell the pointer was over, if any
func (b *Battle) Cursor() (core.Coordinate, bool) {
	return b.cursor, b.hasCursor
}
