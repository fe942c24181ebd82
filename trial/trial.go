// Package trial runs a controller on a scripted input without a window and
// records what the body did, for tuning tools.
package trial

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/platformer/config"
	"github.com/pthm-cable/platformer/controller"
	"github.com/pthm-cable/platformer/input"
	"github.com/pthm-cable/platformer/loop"
	"github.com/pthm-cable/platformer/systems"
	"github.com/pthm-cable/platformer/telemetry"
)

// FlatTrack is a level with a flat floor, eight tiles of headroom and the
// spawn two tiles from the left wall.
func FlatTrack(width int) []string {
	if width < 4 {
		width = 4
	}
	empty := strings.Repeat(".", width)
	spawn := "..P" + strings.Repeat(".", width-3)
	floor := strings.Repeat("#", width)
	return []string{empty, empty, empty, empty, empty, empty, spawn, floor}
}

// RunAndJump holds right from the first frame and taps jump on jumpFrame.
func RunAndJump(jumpFrame int) []input.ScriptRow {
	return []input.ScriptRow{
		{Frame: 0, Right: 1},
		{Frame: jumpFrame, Right: 1, Jump: true},
		{Frame: jumpFrame + 1, Right: 1},
	}
}

// Result is the outcome of one run.
type Result struct {
	Samples []telemetry.Sample
	Spawn   mgl32.Vec2
	Params  controller.Params
	DT      float64
}

// Stats aggregates all samples as a single window.
func (r Result) Stats() telemetry.WindowStats {
	return telemetry.ComputeWindow(r.Samples, true, r.DT)
}

// recorder drives a controller and samples the body after each physics tick.
type recorder struct {
	ctrl    *controller.Controller
	body    *systems.KinematicBody
	tick    int64
	samples []telemetry.Sample
}

func (r *recorder) OnPhysicsTick(dt float32) {
	latched := r.ctrl.JumpLatched()
	r.ctrl.OnPhysicsTick(dt)
	r.tick++
	pos, vel := r.body.Position(), r.body.Velocity()
	r.samples = append(r.samples, telemetry.Sample{
		Tick:    r.tick,
		X:       pos.X(),
		Y:       pos.Y(),
		VX:      vel.X(),
		VY:      vel.Y(),
		OnFloor: r.body.IsOnFloor(),
		Jumped:  latched && !r.ctrl.JumpLatched(),
	})
}

func (r *recorder) OnRenderTick(dt, fraction float32) {
	r.ctrl.OnRenderTick(dt, fraction)
}

// Run plays script on level for ticks physics ticks using cfg's controller,
// player and tick-rate settings.
func Run(cfg *config.Config, level []string, script []input.ScriptRow, ticks int) (Result, error) {
	lvl, err := systems.ParseLevel(level, float32(cfg.Level.TileSize))
	if err != nil {
		return Result{}, fmt.Errorf("building trial level: %w", err)
	}

	world := ecs.NewWorld()
	body, sprite := systems.SpawnPlayer(world, lvl, float32(cfg.Player.Width), float32(cfg.Player.Height))

	params := cfg.Controller.Params()
	rec := &recorder{
		ctrl:    controller.New(params, body, sprite, input.NewScript(script)),
		body:    body,
		samples: make([]telemetry.Sample, 0, ticks),
	}
	rec.ctrl.OnInit()

	lp := loop.New(cfg.Physics.TickRate, 0)
	for i := 0; i < ticks; i++ {
		lp.Step(rec)
	}

	return Result{
		Samples: rec.samples,
		Spawn:   lvl.Spawn(),
		Params:  params,
		DT:      float64(lp.StepDT()),
	}, nil
}
