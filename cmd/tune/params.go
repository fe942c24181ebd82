package main

import (
	"fmt"

	"github.com/pthm-cable/platformer/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "jump_force", Path: "controller.jump_force", Min: -600, Max: -150, Default: -300},
			{Name: "gravity", Path: "controller.gravity", Min: 300, Max: 2400, Default: 800},
			{Name: "move_speed", Path: "controller.move_speed", Min: 50, Max: 250, Default: 100},
			{Name: "acceleration", Path: "controller.acceleration", Min: 1, Max: 30, Default: 7},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig writes clamped parameter values into cfg.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) error {
	clamped := pv.Clamp(values)
	for i, spec := range pv.Specs {
		field, err := controllerField(cfg, spec.Path)
		if err != nil {
			return err
		}
		*field = clamped[i]
	}
	cfg.Derived.Params = cfg.Controller.Params()
	return nil
}

// ExtractFromConfig reads the current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) ([]float64, error) {
	values := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		field, err := controllerField(cfg, spec.Path)
		if err != nil {
			return nil, err
		}
		values[i] = *field
	}
	return values, nil
}

func controllerField(cfg *config.Config, path string) (*float64, error) {
	c := &cfg.Controller
	switch path {
	case "controller.jump_force":
		return &c.JumpForce, nil
	case "controller.gravity":
		return &c.Gravity, nil
	case "controller.terminal_velocity":
		return &c.TerminalVelocity, nil
	case "controller.move_speed":
		return &c.MoveSpeed, nil
	case "controller.acceleration":
		return &c.Acceleration, nil
	case "controller.deceleration":
		return &c.Deceleration, nil
	}
	return nil, fmt.Errorf("unknown parameter path %q", path)
}
