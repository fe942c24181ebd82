package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/platformer/config"
)

func TestMeasureDefaults(t *testing.T) {
	m, err := Measure(config.Defaults())
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}

	// Averaged gravity makes the effective pull half the configured value:
	// apex is about 300^2 / (2*400) plus the launch tick, airtime 2*300/400.
	if m.Apex < 108 || m.Apex > 120 {
		t.Errorf("apex = %.2f, want about 115", m.Apex)
	}
	if m.Airtime < 1.4 || m.Airtime > 1.6 {
		t.Errorf("airtime = %.3f, want about 1.5", m.Airtime)
	}
	if m.TopSpeed != 100 {
		t.Errorf("top speed = %v, want 100", m.TopSpeed)
	}
	// 15 ticks of +7 reach 100.
	if math.Abs(m.AccelTime-15.0/60) > 1e-6 {
		t.Errorf("accel time = %v, want %v", m.AccelTime, 15.0/60)
	}
}

func TestFitnessIsZeroOnTarget(t *testing.T) {
	m := Measurement{Apex: 64, Airtime: 0.8, TopSpeed: 120, AccelTime: 0.2}
	if got := Fitness(m, Targets(m)); got != 0 {
		t.Errorf("Fitness on target = %v, want 0", got)
	}
	off := m
	off.Apex = 32
	if got := Fitness(off, Targets(m)); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("Fitness with half apex = %v, want 0.25", got)
	}
}

func TestEvaluatorPrefersTargetParams(t *testing.T) {
	base := config.Defaults()
	params := NewParamVector()
	defaults, err := params.ExtractFromConfig(base)
	if err != nil {
		t.Fatalf("ExtractFromConfig: %v", err)
	}

	want, err := Measure(base)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	ev := NewEvaluator(params, base, Targets(want))

	if got := ev.Evaluate(defaults); got > 1e-9 {
		t.Errorf("defaults scored %v against their own measurement, want 0", got)
	}
	worse := append([]float64(nil), defaults...)
	worse[0] = -200 // weaker jump
	if ev.Evaluate(worse) <= 0 {
		t.Error("weaker jump should score worse than defaults")
	}
	if base.Controller.JumpForce != -300 {
		t.Errorf("Evaluate mutated the base config: jump_force = %v", base.Controller.JumpForce)
	}
}

func TestParamVectorRoundTrip(t *testing.T) {
	pv := NewParamVector()
	def := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(def))
	for i := range def {
		if math.Abs(back[i]-def[i]) > 1e-9 {
			t.Errorf("%s: round trip %v -> %v", pv.Specs[i].Name, def[i], back[i])
		}
	}

	clamped := pv.Clamp([]float64{-1000, 0, 1000, 7})
	if clamped[0] != -600 || clamped[1] != 300 || clamped[2] != 250 || clamped[3] != 7 {
		t.Errorf("Clamp = %v", clamped)
	}

	cfg := config.Defaults()
	if err := pv.ApplyToConfig(cfg, []float64{-400, 1000, 150, 12}); err != nil {
		t.Fatalf("ApplyToConfig: %v", err)
	}
	if cfg.Controller.JumpForce != -400 || cfg.Derived.Params.JumpForce != -400 {
		t.Errorf("jump force not applied: %v / %v", cfg.Controller.JumpForce, cfg.Derived.Params.JumpForce)
	}
	got, err := pv.ExtractFromConfig(cfg)
	if err != nil {
		t.Fatalf("ExtractFromConfig: %v", err)
	}
	if got[1] != 1000 || got[3] != 12 {
		t.Errorf("ExtractFromConfig = %v", got)
	}
}
