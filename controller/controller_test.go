package controller

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/platformer/input"
)

type fakeBody struct {
	pos     mgl32.Vec2
	vel     mgl32.Vec2
	onFloor bool
	moves   []mgl32.Vec2 // velocity seen by each MoveAndSlide
}

func (b *fakeBody) Position() mgl32.Vec2     { return b.pos }
func (b *fakeBody) Velocity() mgl32.Vec2     { return b.vel }
func (b *fakeBody) SetVelocity(v mgl32.Vec2) { b.vel = v }
func (b *fakeBody) IsOnFloor() bool          { return b.onFloor }
func (b *fakeBody) MoveAndSlide(dt float32) {
	b.moves = append(b.moves, b.vel)
	b.pos = b.pos.Add(b.vel.Mul(dt))
}

type fakeVisual struct {
	pos  mgl32.Vec2
	flip bool
}

func (v *fakeVisual) Position() mgl32.Vec2     { return v.pos }
func (v *fakeVisual) SetPosition(p mgl32.Vec2) { v.pos = p }
func (v *fakeVisual) FlipH() bool              { return v.flip }
func (v *fakeVisual) SetFlipH(flip bool)       { v.flip = flip }

// queue returns queued samples in order, then zero input.
type queue struct {
	states []input.State
}

func (q *queue) Sample() input.State {
	if len(q.states) == 0 {
		return input.State{}
	}
	s := q.states[0]
	q.states = q.states[1:]
	return s
}

func (q *queue) push(dir mgl32.Vec2, jump bool) {
	q.states = append(q.states, input.State{Direction: dir, JumpPressed: jump})
}

func newTestController(p Params) (*Controller, *fakeBody, *fakeVisual, *queue) {
	body := &fakeBody{}
	visual := &fakeVisual{}
	q := &queue{}
	return New(p, body, visual, q), body, visual, q
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestGroundedJumpFromRest(t *testing.T) {
	c, body, _, q := newTestController(DefaultParams())
	body.onFloor = true
	q.push(mgl32.Vec2{1, 0}, true)

	c.OnRenderTick(1.0/144, 0)
	c.OnPhysicsTick(1.0 / 60)

	if len(body.moves) != 1 {
		t.Fatalf("expected 1 move, got %d", len(body.moves))
	}
	got := body.moves[0]
	if !approx(got.X(), 7) || got.Y() != -300 {
		t.Errorf("velocity = %v, want (7, -300)", got)
	}
	if c.JumpLatched() {
		t.Error("expected jump latch to be cleared")
	}
}

func TestJumpLatchConsumedOnce(t *testing.T) {
	c, body, _, q := newTestController(DefaultParams())
	body.onFloor = true
	q.push(mgl32.Vec2{}, true)
	c.OnRenderTick(0, 0)

	c.CalculateVelocity(1.0 / 60)
	if body.vel.Y() != -300 {
		t.Fatalf("first tick vy = %f, want -300", body.vel.Y())
	}

	// Engine collision response zeroes vertical speed on the floor.
	body.vel[1] = 0
	c.CalculateVelocity(1.0 / 60)
	if body.vel.Y() != 0 {
		t.Errorf("second tick vy = %f, want 0 (no new press)", body.vel.Y())
	}
}

func TestJumpLatchSurvivesAirborneTicksAndFrames(t *testing.T) {
	c, body, _, q := newTestController(DefaultParams())
	body.onFloor = false
	q.push(mgl32.Vec2{}, true)

	c.OnRenderTick(0, 0)
	// Several frames without a new press.
	c.OnRenderTick(0, 0.3)
	c.OnRenderTick(0, 0.6)

	for i := 0; i < 3; i++ {
		c.CalculateVelocity(1.0 / 60)
		if body.vel.Y() < 0 {
			t.Fatalf("airborne tick %d jumped: vy = %f", i, body.vel.Y())
		}
	}
	if !c.JumpLatched() {
		t.Fatal("latch lost while airborne")
	}

	body.onFloor = true
	body.vel[1] = 0
	c.CalculateVelocity(1.0 / 60)
	if body.vel.Y() != -300 {
		t.Errorf("landing tick vy = %f, want -300", body.vel.Y())
	}
	if c.JumpLatched() {
		t.Error("expected latch to be cleared after landing jump")
	}
}

func TestGroundedWithoutJumpLeavesVerticalVelocity(t *testing.T) {
	for _, vy := range []float32{0, 12.5, -40} {
		c, body, _, _ := newTestController(DefaultParams())
		body.onFloor = true
		body.vel = mgl32.Vec2{0, vy}

		c.CalculateVelocity(1.0 / 60)
		if body.vel.Y() != vy {
			t.Errorf("grounded vy %f changed to %f", vy, body.vel.Y())
		}
	}
}

func TestAirborneTrapezoidalGravity(t *testing.T) {
	c, body, _, _ := newTestController(DefaultParams())
	body.vel = mgl32.Vec2{0, 100}

	c.CalculateVelocity(0.1)

	// candidate = 100 + 800*0.1 = 180, result = (100+180)/2
	if !approx(body.vel.Y(), 140) {
		t.Errorf("vy = %f, want 140", body.vel.Y())
	}
}

func TestAirborneGravityClampsAtTerminal(t *testing.T) {
	c, body, _, _ := newTestController(DefaultParams())
	body.vel = mgl32.Vec2{0, 590}

	c.CalculateVelocity(0.1)

	// candidate 670 clamps to 600, result (590+600)/2
	if !approx(body.vel.Y(), 595) {
		t.Errorf("vy = %f, want 595", body.vel.Y())
	}
}

func TestAirborneVerticalProperties(t *testing.T) {
	p := DefaultParams()
	for _, vy := range []float32{-5000, -300, -1, 0, 1, 250, 599, 600, 900} {
		for _, dt := range []float32{1.0 / 240, 1.0 / 60, 0.1, 1} {
			c, body, _, _ := newTestController(p)
			body.vel = mgl32.Vec2{0, vy}

			c.CalculateVelocity(dt)
			got := body.vel.Y()

			if got > p.TerminalVelocity {
				t.Errorf("vy0=%f dt=%f: vy=%f exceeds terminal %f", vy, dt, got, p.TerminalVelocity)
			}
			if vy < p.TerminalVelocity && got <= vy {
				t.Errorf("vy0=%f dt=%f: vy=%f did not increase", vy, dt, got)
			}
		}
	}
}

func TestUpwardVelocityIsNotClamped(t *testing.T) {
	c, body, _, _ := newTestController(DefaultParams())
	body.vel = mgl32.Vec2{0, -10000}

	c.CalculateVelocity(1.0 / 60)

	if body.vel.Y() > -9990 || body.vel.Y() < -10000 {
		t.Errorf("vy = %f, want just above -10000", body.vel.Y())
	}
}

func TestHorizontalStepSelection(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		name   string
		inputX float32
		vx     float32
		want   float32
	}{
		{"from rest accelerates", 1, 0, 7},
		{"continuing accelerates", 1, 20, 27},
		{"continuing left accelerates", -1, -20, -27},
		{"reversal decelerates", -1, 20, 10},
		{"release decelerates", 0, 20, 10},
		{"release snaps to zero", 0, 4, 0},
		{"capped at move speed", 1, 98, 100},
		{"above move speed slows by acceleration", 1, 150, 143},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, body, _, q := newTestController(p)
			body.onFloor = true
			body.vel = mgl32.Vec2{tc.vx, 0}
			q.push(mgl32.Vec2{tc.inputX, 0}, false)
			c.OnRenderTick(0, 0)

			c.CalculateVelocity(1.0 / 60)
			if !approx(body.vel.X(), tc.want) {
				t.Errorf("vx = %f, want %f", body.vel.X(), tc.want)
			}
		})
	}
}

func TestHorizontalNeverOvershoots(t *testing.T) {
	p := DefaultParams()
	for _, in := range []float32{-1, 0, 1} {
		for _, vx := range []float32{-250, -100, -3, 0, 5, 96, 100, 180} {
			c, body, _, q := newTestController(p)
			body.onFloor = true
			body.vel = mgl32.Vec2{vx, 0}
			q.push(mgl32.Vec2{in, 0}, false)
			c.OnRenderTick(0, 0)

			c.CalculateVelocity(1.0 / 60)

			target := in * p.MoveSpeed
			before := absf(vx - target)
			after := absf(body.vel.X() - target)
			if after > before {
				t.Errorf("in=%v vx=%v: moved away from target (%v -> %v)", in, vx, vx, body.vel.X())
			}
			if step := absf(body.vel.X() - vx); step > p.Deceleration+1e-4 {
				t.Errorf("in=%v vx=%v: step %v larger than any configured step", in, vx, step)
			}
		}
	}
}

func TestAnalogInputWhenRawDisabled(t *testing.T) {
	p := DefaultParams()
	p.UseRawInput = false
	p.Acceleration = 1000

	c, body, _, q := newTestController(p)
	body.onFloor = true
	q.push(mgl32.Vec2{0.5, 0}, false)
	c.OnRenderTick(0, 0)
	c.CalculateVelocity(1.0 / 60)

	if !approx(body.vel.X(), 50) {
		t.Errorf("vx = %f, want 50 (half stick)", body.vel.X())
	}
	if c.Input() != (mgl32.Vec2{0.5, 0}) {
		t.Errorf("Input() = %v, want unquantized (0.5, 0)", c.Input())
	}
}

func TestRawInputQuantizes(t *testing.T) {
	c, _, _, q := newTestController(DefaultParams())
	q.push(mgl32.Vec2{0.2, -0.7}, false)
	c.OnRenderTick(0, 0)

	if c.Input() != (mgl32.Vec2{1, -1}) {
		t.Errorf("Input() = %v, want (1, -1)", c.Input())
	}
}

func TestFacingFlip(t *testing.T) {
	p := DefaultParams()
	p.UseRawInput = false
	c, _, visual, q := newTestController(p)

	q.push(mgl32.Vec2{-5, 0}, false)
	c.OnRenderTick(0, 0)
	if !visual.flip {
		t.Error("input -5: expected flip")
	}

	q.push(mgl32.Vec2{5, 0}, false)
	c.OnRenderTick(0, 0)
	if visual.flip {
		t.Error("input 5: expected no flip")
	}

	visual.flip = true
	q.push(mgl32.Vec2{0, 0}, false)
	c.OnRenderTick(0, 0)
	if !visual.flip {
		t.Error("input 0: expected previous flip to be kept")
	}
}

func TestVisualSmoothing(t *testing.T) {
	c, body, visual, _ := newTestController(DefaultParams())
	body.pos = mgl32.Vec2{100, 200}
	c.OnInit()

	if visual.pos != (mgl32.Vec2{100, 184}) {
		t.Fatalf("after init visual = %v, want (100, 184)", visual.pos)
	}

	body.pos = mgl32.Vec2{120, 200}
	c.OnRenderTick(1.0/144, 0.5)
	if !approx(visual.pos.X(), 110) || !approx(visual.pos.Y(), 184) {
		t.Errorf("visual = %v, want (110, 184)", visual.pos)
	}

	c.OnRenderTick(1.0/144, 0)
	if !approx(visual.pos.X(), 110) {
		t.Errorf("fraction 0 moved visual to %v", visual.pos)
	}

	c.OnRenderTick(1.0/144, 1)
	if visual.pos != (mgl32.Vec2{120, 184}) {
		t.Errorf("fraction 1: visual = %v, want (120, 184)", visual.pos)
	}
}

func TestPhysicsTickCommitsBeforeMove(t *testing.T) {
	c, body, _, q := newTestController(DefaultParams())
	body.onFloor = true
	q.push(mgl32.Vec2{1, 0}, false)
	c.OnRenderTick(0, 0)

	c.OnPhysicsTick(0.5)

	if len(body.moves) != 1 || !approx(body.moves[0].X(), 7) {
		t.Fatalf("moves = %v, want one move at vx=7", body.moves)
	}
	if !approx(body.pos.X(), 3.5) {
		t.Errorf("position x = %f, want 3.5", body.pos.X())
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
