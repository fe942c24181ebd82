// Arc preview tool - interactive jump arc visualization with sliders.
//
// Usage: go run ./cmd/arcpreview [-config config.yaml]
package main

import (
	"flag"
	"fmt"
	"log"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/platformer/config"
	"github.com/pthm-cable/platformer/trial"
)

const (
	windowWidth  = 1100
	windowHeight = 720
	previewW     = 700
	previewH     = 460
	panelWidth   = windowWidth - previewW - 40

	trialTicks = 180
	jumpFrame  = 20
)

type sliderSpec struct {
	label    string
	field    *float64
	min, max float32
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	flag.Parse()

	base, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := *base

	rl.InitWindow(windowWidth, windowHeight, "Jump Arc Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	sliders := []sliderSpec{
		{"Jump force", &cfg.Controller.JumpForce, -800, -50},
		{"Gravity", &cfg.Controller.Gravity, 100, 3000},
		{"Terminal velocity", &cfg.Controller.TerminalVelocity, 50, 1500},
		{"Move speed", &cfg.Controller.MoveSpeed, 20, 400},
		{"Acceleration", &cfg.Controller.Acceleration, 0.5, 50},
		{"Deceleration", &cfg.Controller.Deceleration, 0.5, 50},
	}

	var res trial.Result
	needsRun := true

	for !rl.WindowShouldClose() {
		if needsRun {
			res, err = trial.Run(&cfg, trial.FlatTrack(80), trial.RunAndJump(jumpFrame), trialTicks)
			if err != nil {
				log.Fatalf("running trial: %v", err)
			}
			needsRun = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawArc(res, 10, 10)

		ws := res.Stats()
		statsY := int32(previewH + 25)
		rl.DrawText(fmt.Sprintf("Apex: %.1f  Airtime: %.2fs  Max fall: %.0f",
			float64(res.Spawn.Y())-ws.MinY, ws.AirborneFrac*float64(len(res.Samples))*res.DT, ws.MaxFallSpeed),
			15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Speed p90: %.1f  Jumps: %d  Landings: %d", ws.SpeedXP90, ws.Jumps, ws.Landings),
			15, statsY+20, 16, rl.DarkGray)

		panelX := float32(previewW + 30)
		panelY := float32(10)

		rl.DrawText("Controller Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		for _, s := range sliders {
			rl.DrawText(s.label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			v := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 70), Height: 20},
				"", "",
				float32(*s.field), s.min, s.max,
			)
			rl.DrawText(fmt.Sprintf("%.1f", *s.field), int32(panelX+float32(panelWidth-60)), int32(panelY+2), 16, rl.DarkGray)
			if v != float32(*s.field) {
				*s.field = float64(v)
				needsRun = true
			}
			panelY += 35
		}

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			cfg.Controller = base.Controller
			needsRun = true
		}
		panelY += 50

		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		text := controllerYAML(cfg.Controller)
		rl.DrawText(text, int32(panelX), int32(panelY), 14, rl.Gray)

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(text)
		}

		rl.EndDrawing()
	}
}

// drawArc plots the recorded body path, scaled to fit the preview box.
func drawArc(res trial.Result, x, y int32) {
	rl.DrawRectangle(x, y, previewW, previewH, rl.Color{R: 235, G: 240, B: 245, A: 255})
	rl.DrawRectangleLines(x, y, previewW, previewH, rl.DarkGray)
	if len(res.Samples) == 0 {
		return
	}

	floorY := res.Spawn.Y()
	minX, maxX := res.Spawn.X(), res.Spawn.X()
	minY := floorY
	for _, s := range res.Samples {
		minX = min(minX, s.X)
		maxX = max(maxX, s.X)
		minY = min(minY, s.Y)
	}
	spanX := max(maxX-minX, 1)
	spanY := max(floorY-minY, 1)
	scale := min(float32(previewW-40)/spanX, float32(previewH-60)/spanY)

	toScreen := func(wx, wy float32) rl.Vector2 {
		return rl.Vector2{
			X: float32(x) + 20 + (wx-minX)*scale,
			Y: float32(y) + previewH - 30 - (floorY-wy)*scale,
		}
	}

	floorL := toScreen(minX, floorY)
	floorR := toScreen(maxX, floorY)
	rl.DrawLineEx(floorL, floorR, 2, rl.DarkGray)

	for i := 1; i < len(res.Samples); i++ {
		a, b := res.Samples[i-1], res.Samples[i]
		color := rl.Blue
		if !b.OnFloor {
			color = rl.Orange
		}
		rl.DrawLineEx(toScreen(a.X, a.Y), toScreen(b.X, b.Y), 2, color)
		if b.Jumped {
			rl.DrawCircleV(toScreen(b.X, b.Y), 5, rl.Red)
		}
	}

	apex := res.Samples[0]
	for _, s := range res.Samples {
		if s.Y < apex.Y {
			apex = s
		}
	}
	p := toScreen(apex.X, apex.Y)
	rl.DrawCircleV(p, 4, rl.DarkGreen)
	rl.DrawText(fmt.Sprintf("apex %.1f", floorY-apex.Y), int32(p.X)+6, int32(p.Y)-16, 14, rl.DarkGreen)
}

func controllerYAML(c config.ControllerConfig) string {
	data, err := yaml.Marshal(map[string]config.ControllerConfig{"controller": c})
	if err != nil {
		return err.Error()
	}
	return string(data)
}
