package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/platformer/renderer"
	"github.com/pthm-cable/platformer/telemetry"
	"github.com/pthm-cable/platformer/ui"
)

var (
	skyTop    = rl.Color{R: 24, G: 32, B: 52, A: 255}
	skyBottom = rl.Color{R: 70, G: 96, B: 128, A: 255}
)

const controlsLegend = "Move: Arrows/WASD | Jump: Space/Z | R: Respawn | P: Pause | F1: Debug | C/T/G/V/F3: Overlays | +/-: Zoom"

// Update handles input and advances the loop by the last frame's duration.
// Draw must follow in the same frame.
func (g *Game) Update() {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseInput)
	g.handleInput()

	if g.paused {
		return
	}
	res := g.loop.Frame(rl.GetFrameTime(), g)
	if res.Dropped > 0 {
		slog.Warn("physics backlog dropped", "tick", g.tick, "dropped", res.Dropped)
	}
}

// Draw renders the frame.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseRender)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.background.Draw(int32(g.screenWidth), int32(g.screenHeight))
	g.levelRenderer.Draw(g.level, g.camera)
	if g.overlays.IsEnabled(ui.OverlayGrid) {
		g.levelRenderer.DrawGrid(g.level, g.camera)
	}
	if g.overlays.IsEnabled(ui.OverlayTrail) {
		g.trail.Draw(g.camera)
	}
	g.playerRenderer.Draw(g.camera, renderer.DrawOptions{
		Colliders: g.overlays.IsEnabled(ui.OverlayColliders),
		Velocity:  g.overlays.IsEnabled(ui.OverlayVelocity),
	})
	g.inspector.DrawSelectionHighlight(g.camera.WorldToScreen, g.camera.Zoom)

	g.drawUI()

	rl.EndDrawing()
	g.perf.EndTick()
}

func (g *Game) drawUI() {
	sp := g.sprite
	g.hud.Draw(ui.HUDData{
		Title:       "Platformer",
		Tick:        g.tick,
		FPS:         rl.GetFPS(),
		Paused:      g.paused,
		Position:    g.body.Position(),
		Velocity:    g.body.Velocity(),
		Direction:   g.ctrl.Input(),
		OnFloor:     g.body.IsOnFloor(),
		JumpLatched: g.ctrl.JumpLatched(),
		FacingLeft:  sp.FlipH(),
	})
	g.hud.DrawControls(int32(g.screenHeight), controlsLegend)

	actions := g.debugPanel.Draw(g.ctrl.Params(), g.overlays, g.camera.Zoom, g.camera.MinZoom, g.camera.MaxZoom)
	if actions.Zoom != g.camera.Zoom {
		g.camera.SetZoom(actions.Zoom)
	}
	if actions.Respawn {
		g.Respawn()
	}

	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.perfPanel.Draw(g.perf.Stats())
	}
	g.inspector.Draw()
}
