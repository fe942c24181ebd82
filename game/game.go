// Package game wires the level, the player and the controller into a
// runnable game, with a graphical and a headless mode.
package game

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/platformer/camera"
	"github.com/pthm-cable/platformer/config"
	"github.com/pthm-cable/platformer/controller"
	"github.com/pthm-cable/platformer/input"
	"github.com/pthm-cable/platformer/inspector"
	"github.com/pthm-cable/platformer/loop"
	"github.com/pthm-cable/platformer/renderer"
	"github.com/pthm-cable/platformer/systems"
	"github.com/pthm-cable/platformer/telemetry"
	"github.com/pthm-cable/platformer/ui"
)

// trailLength is how many physics ticks of positions the trail overlay keeps.
const trailLength = 240

// Options configures a game run.
type Options struct {
	Headless   bool
	ScriptPath string // CSV input script; empty reads the keyboard (or idles when headless)
	OutputDir  string // empty disables CSV output
	LogStats   bool
}

// Game is the running platformer.
type Game struct {
	cfg  *config.Config
	opts Options

	world  *ecs.World
	level  *systems.Level
	body   *systems.KinematicBody
	sprite *systems.SpriteProxy
	ctrl   *controller.Controller
	script *input.Script
	loop   *loop.Loop

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	trace     []telemetry.Sample
	pending   []telemetry.Sample
	trail     *renderer.Trail

	// Graphical mode only.
	camera         *camera.Camera
	background     *renderer.BackgroundRenderer
	levelRenderer  *renderer.LevelRenderer
	playerRenderer *renderer.PlayerRenderer
	hud            *ui.HUD
	perfPanel      *ui.PerfPanel
	debugPanel     *ui.DebugPanel
	overlays       *ui.OverlayRegistry
	inspector      *inspector.Inspector
	screenWidth    float32
	screenHeight   float32

	paused bool
	tick   int64
}

// NewGame builds a game from cfg. The level, input script and output
// directory are opened here; any failure is returned.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	level, err := systems.ParseLevel(cfg.Level.Rows, float32(cfg.Level.TileSize))
	if err != nil {
		return nil, fmt.Errorf("loading level: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		opts:      opts,
		world:     ecs.NewWorld(),
		level:     level,
		loop:      loop.New(cfg.Physics.TickRate, cfg.Physics.MaxStepsPerFrame),
		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindow, float64(cfg.Derived.TickDT32)),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		trail:     renderer.NewTrail(trailLength),
	}

	g.body, g.sprite = systems.SpawnPlayer(g.world, level, float32(cfg.Player.Width), float32(cfg.Player.Height))

	var source controller.InputSource
	switch {
	case opts.ScriptPath != "":
		g.script, err = input.LoadScript(opts.ScriptPath)
		if err != nil {
			return nil, fmt.Errorf("loading script: %w", err)
		}
		source = g.script
	case opts.Headless:
		source = idleSource{}
	default:
		source = newKeyboardSource()
	}

	g.ctrl = controller.New(cfg.Derived.Params, g.body, g.sprite, source)
	g.ctrl.OnInit()

	g.output, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := g.output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	if !opts.Headless {
		g.initGraphics()
	}

	spawn := level.Spawn()
	slog.Info("game created",
		"headless", opts.Headless,
		"script", opts.ScriptPath,
		"spawn_x", spawn.X(),
		"spawn_y", spawn.Y(),
		"tick_rate", cfg.Physics.TickRate,
	)
	return g, nil
}

func (g *Game) initGraphics() {
	cfg := g.cfg
	g.screenWidth = cfg.Derived.ScreenW32
	g.screenHeight = cfg.Derived.ScreenH32

	worldW, worldH := g.level.Bounds()
	g.camera = camera.New(g.screenWidth, g.screenHeight, worldW, worldH, float32(cfg.Camera.Zoom))
	sp := g.sprite.Position()
	g.camera.SnapTo(sp.X(), sp.Y())

	g.background = renderer.NewBackgroundRenderer(skyTop, skyBottom)
	g.levelRenderer = renderer.NewLevelRenderer()
	g.playerRenderer = renderer.NewPlayerRenderer(g.world)
	g.hud = ui.NewHUD()
	g.perfPanel = ui.NewPerfPanel(int32(g.screenWidth)-240, int32(g.screenHeight)-110)
	g.debugPanel = ui.NewDebugPanel(10, 150, 220)
	g.overlays = ui.NewOverlayRegistry()
	g.inspector = inspector.NewInspector(g.world, int32(g.screenWidth))
}

// OnPhysicsTick advances the controller one fixed step and records telemetry.
func (g *Game) OnPhysicsTick(dt float32) {
	g.perf.StartPhase(telemetry.PhasePhysics)
	latched := g.ctrl.JumpLatched()
	g.ctrl.OnPhysicsTick(dt)
	g.tick++

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.recordSample(latched && !g.ctrl.JumpLatched())
}

// OnRenderTick samples input and smooths the sprite toward the body.
func (g *Game) OnRenderTick(dt, fraction float32) {
	g.perf.StartPhase(telemetry.PhaseInput)
	g.ctrl.OnRenderTick(dt, fraction)

	if g.camera != nil {
		sp := g.sprite.Position()
		g.camera.Follow(sp.X(), sp.Y(), dt, float32(g.cfg.Camera.FollowRate))
	}
}

// UpdateHeadless runs one physics tick and one render tick without a window.
func (g *Game) UpdateHeadless() {
	g.perf.StartTick()
	g.loop.Step(g)
	g.perf.EndTick()
}

// Respawn puts the player back at the level spawn, at rest.
func (g *Game) Respawn() {
	g.body.Teleport(g.level.Spawn())
	g.ctrl.OnInit()
	g.trail.Reset()
	g.logState("respawn")
}

// Finished reports whether a scripted run has played all of its keyframes.
func (g *Game) Finished() bool {
	return g.script != nil && g.script.Done()
}

// Tick returns the number of physics ticks run.
func (g *Game) Tick() int64 {
	return g.tick
}

// Controller returns the player's motion resolver.
func (g *Game) Controller() *controller.Controller {
	return g.ctrl
}

// Body returns the player's physics body.
func (g *Game) Body() *systems.KinematicBody {
	return g.body
}

// Sprite returns the player's visual.
func (g *Game) Sprite() *systems.SpriteProxy {
	return g.sprite
}

// Trace returns the most recent per-tick samples.
func (g *Game) Trace() []telemetry.Sample {
	return g.trace
}

// Unload flushes telemetry and closes output files.
func (g *Game) Unload() {
	g.flushTelemetry(true)
	g.flushTrace()
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	slog.Info("game unloaded", "tick", g.tick)
}

// idleSource never presses anything.
type idleSource struct{}

func (idleSource) Sample() input.State { return input.State{} }
