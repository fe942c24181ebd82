package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/platformer/camera"
)

// Trail remembers the most recent body positions in a ring buffer.
type Trail struct {
	points []mgl32.Vec2
	head   int
	count  int
}

// NewTrail creates a trail holding up to capacity points.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{points: make([]mgl32.Vec2, capacity)}
}

// Push records a position, overwriting the oldest when full.
func (t *Trail) Push(p mgl32.Vec2) {
	t.points[t.head] = p
	t.head = (t.head + 1) % len(t.points)
	if t.count < len(t.points) {
		t.count++
	}
}

// Reset forgets all points.
func (t *Trail) Reset() {
	t.head = 0
	t.count = 0
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return t.count
}

// Points returns the stored points from oldest to newest.
func (t *Trail) Points() []mgl32.Vec2 {
	out := make([]mgl32.Vec2, 0, t.count)
	start := (t.head - t.count + len(t.points)) % len(t.points)
	for i := 0; i < t.count; i++ {
		out = append(out, t.points[(start+i)%len(t.points)])
	}
	return out
}

// Draw renders the trail as a fading line strip.
func (t *Trail) Draw(cam *camera.Camera) {
	pts := t.Points()
	for i := 1; i < len(pts); i++ {
		ax, ay := cam.WorldToScreen(pts[i-1].X(), pts[i-1].Y())
		bx, by := cam.WorldToScreen(pts[i].X(), pts[i].Y())
		alpha := uint8(40 + 200*i/len(pts))
		rl.DrawLineV(rl.Vector2{X: ax, Y: ay}, rl.Vector2{X: bx, Y: by}, rl.Color{R: 255, G: 200, B: 80, A: alpha})
	}
}
