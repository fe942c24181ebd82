package main

import (
	"math"

	"github.com/pthm-cable/platformer/config"
	"github.com/pthm-cable/platformer/trial"
)

const (
	trialTicks = 240 // 4s at 60Hz
	jumpFrame  = 60  // input frame the jump is pressed on
	trackWidth = 100 // tiles
)

// Measurement is what one trial run observed.
type Measurement struct {
	Apex      float64 // jump height above the floor
	Airtime   float64 // seconds off the floor
	TopSpeed  float64 // largest |vx|
	AccelTime float64 // seconds from first input to 99% of top speed
}

// Targets is the feel the search aims for, in the same units as Measurement.
type Targets Measurement

// Measure runs the standard trial: hold right from the start, press jump
// once top speed is reached, and keep holding right until the end.
func Measure(cfg *config.Config) (Measurement, error) {
	res, err := trial.Run(cfg, trial.FlatTrack(trackWidth), trial.RunAndJump(jumpFrame), trialTicks)
	if err != nil {
		return Measurement{}, err
	}
	ws := res.Stats()

	m := Measurement{
		Apex:    float64(res.Spawn.Y()) - ws.MinY,
		Airtime: ws.AirborneFrac * float64(len(res.Samples)) * res.DT,
	}
	for _, s := range res.Samples {
		m.TopSpeed = math.Max(m.TopSpeed, math.Abs(float64(s.VX)))
	}
	// Input is first seen on tick 2, so tick 1 does not count.
	for i, s := range res.Samples {
		if math.Abs(float64(s.VX)) >= 0.99*float64(res.Params.MoveSpeed) {
			m.AccelTime = float64(i) * res.DT
			break
		}
	}
	return m, nil
}

// Fitness is the sum of squared relative errors against targets. Lower is better.
func Fitness(m Measurement, target Targets) float64 {
	rel := func(got, want float64) float64 {
		if want == 0 {
			return got * got
		}
		e := (got - want) / want
		return e * e
	}
	return rel(m.Apex, target.Apex) +
		rel(m.Airtime, target.Airtime) +
		rel(m.TopSpeed, target.TopSpeed) +
		rel(m.AccelTime, target.AccelTime)
}

// Evaluator scores raw parameter vectors against targets.
type Evaluator struct {
	params  *ParamVector
	base    *config.Config
	targets Targets
	last    Measurement
}

// NewEvaluator creates an evaluator that varies params on top of base.
func NewEvaluator(params *ParamVector, base *config.Config, targets Targets) *Evaluator {
	return &Evaluator{params: params, base: base, targets: targets}
}

// Evaluate applies raw values to a copy of the base config and scores one trial.
func (e *Evaluator) Evaluate(raw []float64) float64 {
	cfg := *e.base
	if err := e.params.ApplyToConfig(&cfg, raw); err != nil {
		return math.Inf(1)
	}
	m, err := Measure(&cfg)
	if err != nil {
		return math.Inf(1)
	}
	e.last = m
	return Fitness(m, e.targets)
}

// LastMeasurement returns what the most recent evaluation observed.
func (e *Evaluator) LastMeasurement() Measurement {
	return e.last
}
