package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// axis values inside the deadzone are noise on most sticks
const gamepadDeadzone = 0.3

// panSpeed is the camera pan in world pixels per tick at full stick
// deflection.
const panSpeed = 10.0

// Input holds the per-frame input state the game consumes.
type Input struct {
	// MouseLeftPressed is true on the frame the left mouse button was
	// pressed.
	MouseLeftPressed bool
	// MouseWorldX/Y are the cursor position in world coordinates.
	MouseWorldX float64
	MouseWorldY float64
	// PausePressed is true on the frame the pause key was pressed.
	PausePressed bool
	// ResetPressed is true on the frame the reset key was pressed.
	ResetPressed bool
	// PanX/PanY are the camera pan deltas from the gamepad left stick,
	// in world pixels for this tick.
	PanX float64
	PanY float64

	camera *Camera
}

func NewInput(camera *Camera) *Input {
	return &Input{camera: camera}
}

// Update polls the mouse, keyboard, and gamepad.
func (i *Input) Update() {
	mx, my := ebiten.CursorPosition()
	i.MouseWorldX, i.MouseWorldY = i.camera.ScreenToWorld(mx, my)

	i.MouseLeftPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.ResetPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)

	i.PanX, i.PanY = 0, 0
	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return
	}
	gid := ids[0]

	lx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ly := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
	if lx > gamepadDeadzone || lx < -gamepadDeadzone {
		i.PanX = lx * panSpeed
	}
	if ly > gamepadDeadzone || ly < -gamepadDeadzone {
		i.PanY = ly * panSpeed
	}

	i.PausePressed = i.PausePressed ||
		inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
}
