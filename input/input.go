// Package input turns device state into the direction and jump signals the
// controller consumes.
package input

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// State is one input sample.
type State struct {
	// Direction has components in [-1, 1] with length at most 1.
	Direction mgl32.Vec2
	// JumpPressed is true only on the sample where the jump button went down.
	JumpPressed bool
}

// Vector combines four directional strengths in [0, 1] into a direction.
// X is right-left, Y is down-up (screen space), and the result is limited to unit length
// so diagonals are not faster than straight moves.
func Vector(left, right, up, down float32) mgl32.Vec2 {
	v := mgl32.Vec2{right - left, down - up}
	lenSq := v.X()*v.X() + v.Y()*v.Y()
	if lenSq > 1 {
		v = v.Mul(1 / math32.Sqrt(lenSq))
	}
	return v
}

// Edge reports rising edges of a held button.
type Edge struct {
	held bool
}

// Update records the current held state and returns true if the button was just pressed.
func (e *Edge) Update(down bool) bool {
	pressed := down && !e.held
	e.held = down
	return pressed
}

// Held reports the last recorded state.
func (e *Edge) Held() bool {
	return e.held
}
