package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/platformer/camera"
	"github.com/pthm-cable/platformer/components"
)

// velocityScale converts world units per second to a drawn arrow length.
const velocityScale = 0.1

// PlayerRenderer draws every body that has a sprite.
type PlayerRenderer struct {
	filter *ecs.Filter4[components.Position, components.Velocity, components.Collider, components.Sprite]
}

// NewPlayerRenderer creates a renderer over w.
func NewPlayerRenderer(w *ecs.World) *PlayerRenderer {
	return &PlayerRenderer{
		filter: ecs.NewFilter4[components.Position, components.Velocity, components.Collider, components.Sprite](w),
	}
}

// DrawOptions selects the debug overlays drawn with the sprites.
type DrawOptions struct {
	Colliders bool
	Velocity  bool
}

// Draw renders sprites at their smoothed positions. The sprite position is
// the centre of the drawn box; a notch marks the facing side.
func (r *PlayerRenderer) Draw(cam *camera.Camera, opts DrawOptions) {
	query := r.filter.Query()
	for query.Next() {
		pos, vel, col, spr := query.Get()

		color := rl.GetColor(uint(spr.Color))
		sx, sy := cam.WorldToScreen(spr.X-col.Width/2, spr.Y-col.Height/2)
		w, h := col.Width*cam.Zoom, col.Height*cam.Zoom
		rl.DrawRectangleRec(rl.Rectangle{X: sx, Y: sy, Width: w, Height: h}, color)

		notchW := w / 4
		notchX := sx + w - notchW
		if spr.FlipH {
			notchX = sx
		}
		rl.DrawRectangleRec(rl.Rectangle{X: notchX, Y: sy + h/4, Width: notchW, Height: h / 5}, rl.White)

		if opts.Colliders {
			bx, by := cam.WorldToScreen(pos.X-col.Width/2, pos.Y-col.Height)
			rl.DrawRectangleLinesEx(rl.Rectangle{X: bx, Y: by, Width: w, Height: h}, 1, rl.Lime)
			fx, fy := cam.WorldToScreen(pos.X, pos.Y)
			rl.DrawCircleV(rl.Vector2{X: fx, Y: fy}, 2, rl.Red)
		}

		if opts.Velocity {
			cx, cy := cam.WorldToScreen(pos.X, pos.Y-col.Height/2)
			ex, ey := cam.WorldToScreen(pos.X+vel.X*velocityScale, pos.Y-col.Height/2+vel.Y*velocityScale)
			rl.DrawLineEx(rl.Vector2{X: cx, Y: cy}, rl.Vector2{X: ex, Y: ey}, 2, rl.SkyBlue)
		}
	}
}
