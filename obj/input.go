package obj

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input polls the host devices once per frame and exposes discrete intents.
// The simulation only ever reads these flags; nothing here mutates game state,
// so the same intent means the same thing whether it came from a key, a click,
// a touch, or a gamepad button.
type Input struct {
	// JumpPressed is true only on the frame the jump input went down.
	JumpPressed bool
	// JumpHeld is true while any jump input is held.
	JumpHeld bool
	// PausePressed toggles pause/resume.
	PausePressed bool
	// RestartPressed requests a fresh run (or resume-and-restart while paused).
	RestartPressed bool
	// MenuPressed requests the menu from any state.
	MenuPressed bool

	touchIDs []ebiten.TouchID
}

func NewInput() *Input {
	return &Input{}
}

// Update polls keyboard, mouse, touch, and gamepad.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	jumpKeyPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW)
	jumpKeyHeld := ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyUp) ||
		ebiten.IsKeyPressed(ebiten.KeyW)

	mousePressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	mouseHeld := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	touchPressed := len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	i.touchIDs = ebiten.AppendTouchIDs(i.touchIDs[:0])
	touchHeld := len(i.touchIDs) > 0

	var gpPressed, gpHeld bool
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		gpPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpHeld = ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	}

	i.JumpPressed = jumpKeyPressed || mousePressed || touchPressed || gpPressed
	i.JumpHeld = jumpKeyHeld || mouseHeld || touchHeld || gpHeld

	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	i.RestartPressed = inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	i.MenuPressed = inpututil.IsKeyJustPressed(ebiten.KeyM)
}
