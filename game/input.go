package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/platformer/input"
)

// gamepadDeadzone filters stick noise around centre.
const gamepadDeadzone = 0.2

// keyboardSource reads arrows/WASD and Space/Z, or the first gamepad.
type keyboardSource struct {
	jump input.Edge
}

func newKeyboardSource() *keyboardSource {
	return &keyboardSource{}
}

func (k *keyboardSource) Sample() input.State {
	left := keyStrength(rl.KeyLeft, rl.KeyA)
	right := keyStrength(rl.KeyRight, rl.KeyD)
	up := keyStrength(rl.KeyUp, rl.KeyW)
	down := keyStrength(rl.KeyDown, rl.KeyS)
	jumpDown := rl.IsKeyDown(rl.KeySpace) || rl.IsKeyDown(rl.KeyZ)

	if rl.IsGamepadAvailable(0) {
		ax := rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftX)
		ay := rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftY)
		if ax < -gamepadDeadzone {
			left = max(left, -ax)
		} else if ax > gamepadDeadzone {
			right = max(right, ax)
		}
		if ay < -gamepadDeadzone {
			up = max(up, -ay)
		} else if ay > gamepadDeadzone {
			down = max(down, ay)
		}
		jumpDown = jumpDown || rl.IsGamepadButtonDown(0, rl.GamepadButtonRightFaceDown)
	}

	return input.State{
		Direction:   input.Vector(left, right, up, down),
		JumpPressed: k.jump.Update(jumpDown),
	}
}

func keyStrength(keys ...int32) float32 {
	for _, k := range keys {
		if rl.IsKeyDown(k) {
			return 1
		}
	}
	return 0
}

// handleInput processes keyboard shortcuts that are not player movement.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
		g.logState("pause toggled")
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.debugPanel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Respawn()
	}

	g.handleOverlayKeys()
	g.handleCameraInput()

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)
		g.inspector.HandleClick(wx, wy, g.body.Entity())
	}
}

// handleOverlayKeys toggles overlays bound to keys pressed this frame.
func (g *Game) handleOverlayKeys() {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		g.overlays.HandleKeyPress(key)
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.camera.Resize(w, h)
	g.perfPanel.SetPosition(int32(w)-240, int32(h)-110)
	g.inspector.Resize(int32(w))
}

func (g *Game) handleCameraInput() {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
