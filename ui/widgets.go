package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawFlag draws a label with an on/off indicator.
func (r *Renderer) DrawFlag(x, y int32, label string, on bool) int32 {
	c := rl.Color{R: 80, G: 80, B: 80, A: 255}
	if on {
		c = r.Theme.ActiveColor
	}
	rl.DrawRectangle(x, y+2, 8, 8, c)
	rl.DrawText(label, x+14, y, r.Theme.FontSize, r.Theme.LabelColor)
	return y + r.Theme.LineHeight
}

// DrawCenteredBar draws a bar that fills left or right of its centre.
func (r *Renderer) DrawCenteredBar(x, y int32, label string, value, minVal, maxVal float32, width int32) int32 {
	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 50
	centerX := barX + barWidth/2

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawRectangle(barX, y+2, barWidth, r.Theme.BarHeight, r.Theme.BarBg)
	rl.DrawLine(centerX, y, centerX, y+r.Theme.BarHeight+4, r.Theme.PanelBorder)

	if value < 0 && minVal < 0 {
		t := value / minVal
		if t > 1 {
			t = 1
		}
		w := int32(float32(barWidth/2) * t)
		rl.DrawRectangle(centerX-w, y+2, w, r.Theme.BarHeight, r.Theme.BarFillNegative)
	} else if value > 0 && maxVal > 0 {
		t := value / maxVal
		if t > 1 {
			t = 1
		}
		w := int32(float32(barWidth/2) * t)
		rl.DrawRectangle(centerX, y+2, w, r.Theme.BarHeight, r.Theme.BarFillPositive)
	}

	rl.DrawText(fmt.Sprintf("%.0f", value), barX+barWidth+5, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight + 2
}
