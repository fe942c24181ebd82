package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/platformer/controller"
)

// DebugActions reports what the user asked for in the debug panel this frame.
type DebugActions struct {
	Respawn bool
	Zoom    float32
}

// DebugPanel is a raygui panel with overlay toggles, a respawn button, a zoom
// slider and the controller tunables.
type DebugPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewDebugPanel creates a hidden debug panel.
func NewDebugPanel(x, y, width int32) *DebugPanel {
	return &DebugPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (d *DebugPanel) SetPosition(x, y int32) {
	d.x = x
	d.y = y
}

// IsVisible returns whether the panel is shown.
func (d *DebugPanel) IsVisible() bool {
	return d.visible
}

// Toggle switches panel visibility.
func (d *DebugPanel) Toggle() bool {
	d.visible = !d.visible
	return d.visible
}

// Draw renders the panel and returns the user's actions. zoom is the current
// camera zoom and is returned unchanged unless the slider moved.
func (d *DebugPanel) Draw(params controller.Params, overlays *OverlayRegistry, zoom, minZoom, maxZoom float32) DebugActions {
	actions := DebugActions{Zoom: zoom}
	if !d.visible {
		return actions
	}

	r := d.renderer
	pad := r.Theme.Padding
	line := r.Theme.LineHeight
	inner := d.width - pad*2

	all := overlays.All()
	height := pad*2 + line + int32(len(all))*26 + 40 + 30 + line*9
	r.DrawPanel(d.x, d.y, d.width, height)

	x := float32(d.x + pad)
	y := d.y + pad
	rl.DrawText("Debug", d.x+pad, y, 16, rl.White)
	y += line + 4

	for _, desc := range all {
		label := fmt.Sprintf("%s [%s]", desc.Name, desc.KeyLabel)
		if overlays.IsEnabled(desc.ID) {
			label = "* " + label
		}
		if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: float32(inner), Height: 22}, label) {
			overlays.Toggle(desc.ID)
		}
		y += 26
	}

	y += 4
	rl.DrawText(fmt.Sprintf("Zoom %.2f", zoom), d.x+pad, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += 14
	actions.Zoom = gui.SliderBar(
		rl.Rectangle{X: x, Y: float32(y), Width: float32(inner), Height: 16},
		"", "",
		zoom, minZoom, maxZoom,
	)
	y += 22

	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: 120, Height: 24}, "Respawn [R]") {
		actions.Respawn = true
	}
	y += 30

	y = r.DrawSectionHeader(d.x+pad, y, "Tunables")
	y = r.DrawLabelValue(d.x+pad, y, "Raw input", fmt.Sprintf("%v", params.UseRawInput))
	y = r.DrawLabelValue(d.x+pad, y, "Gravity", fmt.Sprintf("%.0f", params.Gravity))
	y = r.DrawLabelValue(d.x+pad, y, "Terminal", fmt.Sprintf("%.0f", params.TerminalVelocity))
	y = r.DrawLabelValue(d.x+pad, y, "Move speed", fmt.Sprintf("%.0f", params.MoveSpeed))
	y = r.DrawLabelValue(d.x+pad, y, "Accel", fmt.Sprintf("%.1f", params.Acceleration))
	y = r.DrawLabelValue(d.x+pad, y, "Decel", fmt.Sprintf("%.1f", params.Deceleration))
	y = r.DrawLabelValue(d.x+pad, y, "Jump force", fmt.Sprintf("%.0f", params.JumpForce))
	r.DrawLabelValue(d.x+pad, y, "Sprite offset", fmt.Sprintf("(%.0f, %.0f)", params.VisualOffset.X(), params.VisualOffset.Y()))

	return actions
}
