// Package controller resolves a platformer character's motion.
//
// A Controller is driven by two callbacks: OnRenderTick once per rendered
// frame (input sampling, facing, sprite smoothing) and OnPhysicsTick once per
// fixed physics step (gravity, jump, horizontal speed, collision move).
// Both are expected on the same goroutine.
package controller

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/platformer/input"
	"github.com/pthm-cable/platformer/vecmath"
)

// MovableBody is a physics body that owns velocity between ticks and performs
// collision-aware movement.
type MovableBody interface {
	Position() mgl32.Vec2
	Velocity() mgl32.Vec2
	SetVelocity(v mgl32.Vec2)
	// IsOnFloor reports floor contact from the most recent move.
	IsOnFloor() bool
	// MoveAndSlide displaces the body by its velocity over dt, sliding along
	// whatever it hits.
	MoveAndSlide(dt float32)
}

// VisualProxy is the rendered representation of the character.
type VisualProxy interface {
	Position() mgl32.Vec2
	SetPosition(p mgl32.Vec2)
	FlipH() bool
	SetFlipH(flip bool)
}

// InputSource yields one input sample per render frame.
type InputSource interface {
	Sample() input.State
}

// Params are the movement tunables. They are fixed for the life of a Controller.
type Params struct {
	UseRawInput      bool
	Gravity          float32
	TerminalVelocity float32
	MoveSpeed        float32
	Acceleration     float32
	Deceleration     float32
	JumpForce        float32 // negative is up
	// VisualOffset is added to the body position to get the sprite target.
	VisualOffset mgl32.Vec2
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		UseRawInput:      true,
		Gravity:          800,
		TerminalVelocity: 600,
		MoveSpeed:        100,
		Acceleration:     7,
		Deceleration:     10,
		JumpForce:        -300,
		VisualOffset:     vecmath.Up.Mul(16),
	}
}

// Controller is the per-entity motion resolver.
type Controller struct {
	params Params
	body   MovableBody
	visual VisualProxy
	source InputSource

	input    mgl32.Vec2
	jumpWant bool
}

// New creates a controller bound to its collaborators.
func New(params Params, body MovableBody, visual VisualProxy, source InputSource) *Controller {
	return &Controller{
		params: params,
		body:   body,
		visual: visual,
		source: source,
	}
}

// OnInit snaps the visual onto the body. The visual is positioned
// independently afterwards.
func (c *Controller) OnInit() {
	c.visual.SetPosition(c.body.Position().Add(c.params.VisualOffset))
}

// OnRenderTick samples input and updates the visual. fraction is the
// progress in [0, 1] between the last two physics ticks.
func (c *Controller) OnRenderTick(dt, fraction float32) {
	c.gatherInput()
	c.flipVisual()

	target := c.body.Position().Add(c.params.VisualOffset)
	c.visual.SetPosition(vecmath.Lerp(c.visual.Position(), target, fraction))
}

// OnPhysicsTick resolves velocity and moves the body.
func (c *Controller) OnPhysicsTick(dt float32) {
	c.CalculateVelocity(dt)
	c.body.MoveAndSlide(dt)
}

// CalculateVelocity computes this tick's velocity and writes it to the body.
// Vertical is resolved before horizontal.
func (c *Controller) CalculateVelocity(dt float32) {
	vel := c.body.Velocity()
	onFloor := c.body.IsOnFloor()

	vel[1] = c.velocityY(vel.Y(), onFloor, dt)
	vel[0] = c.velocityX(vel.X())

	c.body.SetVelocity(vel)
}

func (c *Controller) velocityY(vy float32, onFloor bool, dt float32) float32 {
	if !onFloor {
		return c.applyGravity(vy, dt)
	}
	// The latch survives airborne ticks and is only spent on the floor.
	if c.jumpWant {
		c.jumpWant = false
		return c.params.JumpForce
	}
	return vy
}

// applyGravity integrates one step using the average of the old and new
// velocity, which lands closer to the analytic arc than plain Euler.
// Only downward speed is capped.
func (c *Controller) applyGravity(vy, dt float32) float32 {
	next := vecmath.ClampMax(vy+c.params.Gravity*dt, c.params.TerminalVelocity)
	return vecmath.ClampMax((vy+next)*0.5, c.params.TerminalVelocity)
}

func (c *Controller) velocityX(vx float32) float32 {
	target := c.input.X() * c.params.MoveSpeed
	return vecmath.MoveToward(vx, target, c.stepX(vx))
}

// stepX picks acceleration when pushing along the current motion (or from
// rest) and deceleration when reversing or releasing.
func (c *Controller) stepX(vx float32) float32 {
	if vx == 0 || vecmath.Sign(c.input.X()) == vecmath.Sign(vx) {
		return c.params.Acceleration
	}
	return c.params.Deceleration
}

func (c *Controller) gatherInput() {
	s := c.source.Sample()
	c.input = s.Direction
	if c.params.UseRawInput {
		c.input = vecmath.Raw(c.input)
	}
	if s.JumpPressed {
		c.jumpWant = true
	}
}

func (c *Controller) flipVisual() {
	switch {
	case c.input.X() < 0:
		c.visual.SetFlipH(true)
	case c.input.X() > 0:
		c.visual.SetFlipH(false)
	}
}

// Params returns the controller's tuning.
func (c *Controller) Params() Params {
	return c.params
}

// Input returns the direction sampled on the last render tick, after quantization.
func (c *Controller) Input() mgl32.Vec2 {
	return c.input
}

// JumpLatched reports whether a jump press is waiting for a grounded tick.
func (c *Controller) JumpLatched() bool {
	return c.jumpWant
}
