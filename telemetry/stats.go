// Package telemetry records controller motion and frame timing, aggregates it
// into windows, and writes CSV output.
package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Sample is the body state after one physics tick.
type Sample struct {
	Tick    int64   `csv:"tick"`
	X       float32 `csv:"x"`
	Y       float32 `csv:"y"`
	VX      float32 `csv:"vx"`
	VY      float32 `csv:"vy"`
	OnFloor bool    `csv:"on_floor"`
	Jumped  bool    `csv:"jumped"`
}

// WindowStats holds aggregated motion statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Horizontal speed distribution (absolute)
	SpeedXMean float64 `csv:"speed_x_mean"`
	SpeedXStd  float64 `csv:"speed_x_std"`
	SpeedXP50  float64 `csv:"speed_x_p50"`
	SpeedXP90  float64 `csv:"speed_x_p90"`

	// Vertical extremes (positive is down)
	MaxFallSpeed float64 `csv:"max_fall_speed"`
	MaxRiseSpeed float64 `csv:"max_rise_speed"`
	MinY         float64 `csv:"min_y"`
	MaxY         float64 `csv:"max_y"`

	// Ground contact
	AirborneFrac float64 `csv:"airborne_frac"`
	Jumps        int     `csv:"jumps"`
	Landings     int     `csv:"landings"`
}

// ComputeWindow aggregates samples. wasOnFloor is the floor state before the
// first sample, used to count landings across window boundaries.
func ComputeWindow(samples []Sample, wasOnFloor bool, tickDT float64) WindowStats {
	var ws WindowStats
	n := len(samples)
	if n == 0 {
		return ws
	}

	ws.WindowStartTick = samples[0].Tick
	ws.WindowEndTick = samples[n-1].Tick
	ws.SimTimeSec = float64(ws.WindowEndTick+1) * tickDT

	speeds := make([]float64, n)
	ws.MinY = math.Inf(1)
	ws.MaxY = math.Inf(-1)
	airborne := 0
	prev := wasOnFloor

	for i, s := range samples {
		speeds[i] = math.Abs(float64(s.VX))
		vy := float64(s.VY)
		if vy > ws.MaxFallSpeed {
			ws.MaxFallSpeed = vy
		}
		if -vy > ws.MaxRiseSpeed {
			ws.MaxRiseSpeed = -vy
		}
		ws.MinY = math.Min(ws.MinY, float64(s.Y))
		ws.MaxY = math.Max(ws.MaxY, float64(s.Y))

		if !s.OnFloor {
			airborne++
		}
		if s.Jumped {
			ws.Jumps++
		}
		if s.OnFloor && !prev {
			ws.Landings++
		}
		prev = s.OnFloor
	}

	ws.AirborneFrac = float64(airborne) / float64(n)
	ws.SpeedXMean = stat.Mean(speeds, nil)
	if n > 1 {
		ws.SpeedXStd = stat.StdDev(speeds, nil)
	}
	sort.Float64s(speeds)
	ws.SpeedXP50 = stat.Quantile(0.5, stat.Empirical, speeds, nil)
	ws.SpeedXP90 = stat.Quantile(0.9, stat.Empirical, speeds, nil)

	return ws
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Float64("speed_x_mean", s.SpeedXMean),
		slog.Float64("speed_x_std", s.SpeedXStd),
		slog.Float64("speed_x_p50", s.SpeedXP50),
		slog.Float64("speed_x_p90", s.SpeedXP90),
		slog.Float64("max_fall_speed", s.MaxFallSpeed),
		slog.Float64("max_rise_speed", s.MaxRiseSpeed),
		slog.Float64("min_y", s.MinY),
		slog.Float64("max_y", s.MaxY),
		slog.Float64("airborne_frac", s.AirborneFrac),
		slog.Int("jumps", s.Jumps),
		slog.Int("landings", s.Landings),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
