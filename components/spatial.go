// Package components defines ECS components for the platformer world.
package components

// Position is a body's world position: the bottom-centre of its collider.
type Position struct {
	X, Y float32 `inspect:"vec,fmt:%.1f"`
}

// Velocity is a body's velocity in world units per second.
type Velocity struct {
	X, Y float32 `inspect:"axis,max:600,fmt:%.1f,unit:px/s"`
}

// Collider is an axis-aligned box anchored at the body's Position.
type Collider struct {
	Width  float32 `inspect:"vec,fmt:%.0f"`
	Height float32 `inspect:"vec,fmt:%.0f"`
}

// Contact records what the last move collided with.
type Contact struct {
	OnFloor   bool `inspect:"flag"`
	OnCeiling bool `inspect:"flag"`
	OnWall    bool `inspect:"flag"`
}
