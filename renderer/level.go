package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/platformer/camera"
	"github.com/pthm-cable/platformer/systems"
)

// LevelRenderer draws solid tiles.
type LevelRenderer struct {
	fill    rl.Color
	edge    rl.Color
	gridCol rl.Color
}

// NewLevelRenderer creates a level renderer with the default palette.
func NewLevelRenderer() *LevelRenderer {
	return &LevelRenderer{
		fill:    rl.Color{R: 74, G: 84, B: 98, A: 255},
		edge:    rl.Color{R: 120, G: 134, B: 150, A: 255},
		gridCol: rl.Color{R: 255, G: 255, B: 255, A: 24},
	}
}

// Draw renders every solid run that intersects the view.
func (r *LevelRenderer) Draw(level *systems.Level, cam *camera.Camera) {
	for _, o := range level.GetOccluders() {
		if !cam.IsVisible(o.X, o.Y, o.Width, o.Height) {
			continue
		}
		sx, sy := cam.WorldToScreen(o.X, o.Y)
		rect := rl.Rectangle{X: sx, Y: sy, Width: o.Width * cam.Zoom, Height: o.Height * cam.Zoom}
		rl.DrawRectangleRec(rect, r.fill)
		rl.DrawRectangleLinesEx(rect, 1, r.edge)
	}
}

// DrawGrid outlines the tile grid over the visible area.
func (r *LevelRenderer) DrawGrid(level *systems.Level, cam *camera.Camera) {
	size := level.CellSize()
	w, h := level.Bounds()
	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > w {
		maxX = w
	}
	if maxY > h {
		maxY = h
	}

	for x := float32(int(minX/size)) * size; x <= maxX; x += size {
		x0, y0 := cam.WorldToScreen(x, minY)
		x1, y1 := cam.WorldToScreen(x, maxY)
		rl.DrawLineV(rl.Vector2{X: x0, Y: y0}, rl.Vector2{X: x1, Y: y1}, r.gridCol)
	}
	for y := float32(int(minY/size)) * size; y <= maxY; y += size {
		x0, y0 := cam.WorldToScreen(minX, y)
		x1, y1 := cam.WorldToScreen(maxX, y)
		rl.DrawLineV(rl.Vector2{X: x0, Y: y0}, rl.Vector2{X: x1, Y: y1}, r.gridCol)
	}
}
