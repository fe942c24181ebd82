package game

import (
	"log/slog"

	"github.com/pthm-cable/platformer/telemetry"
)

// maxTraceSamples bounds the in-memory trace. When full, the oldest half is
// dropped. trace.csv still gets every sample through pending.
const maxTraceSamples = 1 << 13

// recordSample buffers this tick's body state and flushes a stats window
// when one fills.
func (g *Game) recordSample(jumped bool) {
	pos := g.body.Position()
	vel := g.body.Velocity()
	s := telemetry.Sample{
		Tick:    g.tick,
		X:       pos.X(),
		Y:       pos.Y(),
		VX:      vel.X(),
		VY:      vel.Y(),
		OnFloor: g.body.IsOnFloor(),
		Jumped:  jumped,
	}
	g.keepSample(s)
	g.trail.Push(pos)

	if stats, ok := g.collector.Record(s); ok {
		g.handleWindow(stats)
	}
}

func (g *Game) keepSample(s telemetry.Sample) {
	if len(g.trace) == maxTraceSamples {
		n := copy(g.trace, g.trace[maxTraceSamples/2:])
		g.trace = g.trace[:n]
	}
	g.trace = append(g.trace, s)
	if g.output != nil {
		g.pending = append(g.pending, s)
	}
}

// flushTrace appends samples not yet on disk to trace.csv.
func (g *Game) flushTrace() {
	if len(g.pending) == 0 {
		return
	}
	if err := g.output.WriteTrace(g.pending); err != nil {
		slog.Error("failed to write trace", "error", err)
	}
	g.pending = g.pending[:0]
}

// flushTelemetry emits any partial window. final is set at shutdown.
func (g *Game) flushTelemetry(final bool) {
	if stats, ok := g.collector.Flush(); ok {
		g.handleWindow(stats)
	}
	if final && g.opts.LogStats {
		slog.Info("run complete", "tick", g.tick)
	}
}

// handleWindow logs and persists one finished stats window.
func (g *Game) handleWindow(stats telemetry.WindowStats) {
	perfStats := g.perf.Stats()

	if g.opts.LogStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	g.flushTrace()
	if err := g.output.WriteStats(stats); err != nil {
		slog.Error("failed to write stats", "error", err)
	}
	if err := g.output.WritePerf(perfStats, g.tick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
