package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/platformer/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title       string
	Tick        int64
	FPS         int32
	Paused      bool
	Position    mgl32.Vec2
	Velocity    mgl32.Vec2
	Direction   mgl32.Vec2
	OnFloor     bool
	JumpLatched bool
	FacingLeft  bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | FPS: %d", data.Tick, data.FPS),
		10, 35, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("Pos: (%.1f, %.1f) | Vel: (%.1f, %.1f)", data.Position.X(), data.Position.Y(), data.Velocity.X(), data.Velocity.Y()),
		10, 55, 16, rl.LightGray,
	)

	facing := "right"
	if data.FacingLeft {
		facing = "left"
	}
	rl.DrawText(
		fmt.Sprintf("Input: (%.2f, %.2f) | Facing: %s", data.Direction.X(), data.Direction.Y(), facing),
		10, 75, 16, rl.LightGray,
	)

	y := int32(97)
	y = h.renderer.DrawFlag(10, y, "On floor", data.OnFloor)
	h.renderer.DrawFlag(10, y, "Jump latched", data.JumpLatched)

	if data.Paused {
		rl.DrawText("PAUSED", 10, y+22, 16, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders frame phase timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

var perfPhases = []string{
	telemetry.PhaseInput,
	telemetry.PhasePhysics,
	telemetry.PhaseRender,
	telemetry.PhaseTelemetry,
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x := p.x
	y := p.y

	p.renderer.DrawPanel(x-6, y-6, 230, 96)

	rl.DrawText("Frame Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Avg: %s | %.0f fps", stats.AvgTickDuration.Round(time.Microsecond), stats.FPS), x, y, 14, rl.Yellow)
	y += 16

	for _, name := range perfPhases {
		pct := stats.PhasePct[name]
		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}
		rl.DrawText(
			fmt.Sprintf("%-10s %6s %5.1f%%", name, stats.PhaseAvg[name].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
