package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mitchelldurbincs/UnicornBattleships/internal/game/states"
)

// Handler turns ebiten's polled mouse and keyboard state into battle input
type Handler struct {
	mouseX, mouseY int
	seen           bool
}

func NewHandler() *Handler {
	return &Handler{}
}

// Update polls the cursor and returns the pointer events for this frame: a
// motion when the cursor moved, then a click when the left button was
// released.
func (h *Handler) Update() []states.PointerEvent {
	x, y := ebiten.CursorPosition()
	var out []states.PointerEvent

	if !h.seen || x != h.mouseX || y != h.mouseY {
		out = append(out, states.PointerEvent{Kind: states.PointerMotion, X: x, Y: y})
	}
	h.mouseX, h.mouseY = x, y
	h.seen = true

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		out = append(out, states.PointerEvent{Kind: states.PointerClick, X: x, Y: y})
	}
	return out
}

// CopyRequested reports a press of C (copy battle report)
func (h *Handler) CopyRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyC)
}

// QuitRequested reports a press of Escape
func (h *Handler) QuitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
