package inspector

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Widget colors
var (
	ColorBarBg   = rl.Color{R: 40, G: 40, B: 40, A: 255}
	ColorBarPos  = rl.Color{R: 100, G: 180, B: 100, A: 255}
	ColorBarNeg  = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorText    = rl.Color{R: 220, G: 220, B: 220, A: 255}
	ColorTextDim = rl.Color{R: 150, G: 150, B: 150, A: 255}
	ColorFlagOn  = rl.Color{R: 100, G: 200, B: 100, A: 255}
	ColorFlagOff = rl.Color{R: 80, G: 80, B: 80, A: 255}
)

const (
	rowHeight  = 18
	valueX     = 80
	barWidth   = 120
	barHeight  = 14
	fontSize   = 14
	flagSwatch = 14
)

// DrawField renders one row and returns its height.
func DrawField(x, y int32, f Field) int32 {
	rl.DrawText(f.Name, x, y, fontSize, ColorTextDim)
	switch f.Tag.Kind {
	case KindAxis:
		drawAxisBar(x+valueX, y, f)
	case KindFlag:
		drawFlag(x+valueX, y, f)
	default:
		rl.DrawText(f.Text(), x+valueX, y, fontSize, ColorText)
	}
	return rowHeight
}

// drawAxisBar fills right of the centre line for positive values and left
// for negative ones.
func drawAxisBar(x, y int32, f Field) {
	rl.DrawRectangle(x, y, barWidth, barHeight, ColorBarBg)
	ratio, neg := f.AxisFill()
	half := int32(barWidth / 2)
	fill := int32(float32(half) * ratio)
	if neg {
		rl.DrawRectangle(x+half-fill, y, fill, barHeight, ColorBarNeg)
	} else {
		rl.DrawRectangle(x+half, y, fill, barHeight, ColorBarPos)
	}
	rl.DrawLine(x+half, y, x+half, y+barHeight, ColorTextDim)
	rl.DrawText(f.Text(), x+barWidth+5, y, fontSize, ColorTextDim)
}

func drawFlag(x, y int32, f Field) {
	color := ColorFlagOff
	if f.On {
		color = ColorFlagOn
	}
	rl.DrawRectangle(x, y, flagSwatch, flagSwatch, color)
	rl.DrawText(f.Text(), x+flagSwatch+5, y, fontSize, color)
}
