// Package vecmath provides the small scalar and 2D vector helpers used by the
// character controller.
package vecmath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Up is the screen-space up direction (Y grows downward).
var Up = mgl32.Vec2{0, -1}

// Raw collapses each axis of v to -1, 0 or 1 by sign.
// Digital input ignores analog magnitude, so a half-tilted stick moves at full speed.
func Raw(v mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{Sign(v.X()), Sign(v.Y())}
}

// Sign returns 1 for positive x, -1 for negative x and 0 otherwise (including NaN).
func Sign(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// MoveToward steps from toward to by at most delta, never passing to.
func MoveToward(from, to, delta float32) float32 {
	if math32.Abs(to-from) <= delta {
		return to
	}
	return from + Sign(to-from)*delta
}

// Lerp interpolates between a and b by t. t is not clamped.
func Lerp(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// ClampMax caps x at max with no lower bound.
func ClampMax(x, max float32) float32 {
	return mgl32.Clamp(x, math32.Inf(-1), max)
}
