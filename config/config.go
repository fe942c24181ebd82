// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/platformer/controller"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Controller ControllerConfig `yaml:"controller"`
	Player     PlayerConfig     `yaml:"player"`
	Level      LevelConfig      `yaml:"level"`
	Camera     CameraConfig     `yaml:"camera"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds fixed-step settings.
type PhysicsConfig struct {
	TickRate         int `yaml:"tick_rate"`           // physics ticks per second
	MaxStepsPerFrame int `yaml:"max_steps_per_frame"` // backlog beyond this is dropped
}

// ControllerConfig holds the character movement tunables.
type ControllerConfig struct {
	UseRawInput      bool    `yaml:"use_raw_input"`
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	MoveSpeed        float64 `yaml:"move_speed"`
	Acceleration     float64 `yaml:"acceleration"` // per-tick speed step toward target
	Deceleration     float64 `yaml:"deceleration"` // per-tick step when reversing or releasing
	JumpForce        float64 `yaml:"jump_force"`   // negative is up
	SpriteOffsetY    float64 `yaml:"sprite_offset_y"`
}

// PlayerConfig holds the player collider size.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LevelConfig holds the tile map.
type LevelConfig struct {
	TileSize float64  `yaml:"tile_size"`
	Rows     []string `yaml:"rows"`
}

// CameraConfig holds follow camera settings.
type CameraConfig struct {
	Zoom       float64 `yaml:"zoom"`
	FollowRate float64 `yaml:"follow_rate"` // fraction of remaining distance closed per second
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // seconds
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TickDT32  float32 // 1 / Physics.TickRate
	ScreenW32 float32
	ScreenH32 float32
	Params    controller.Params
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns the embedded default configuration.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	return Parse(data)
}

// Parse merges YAML data over the embedded defaults. Empty data yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Unmarshal into same struct - only overwrites fields present in data.
	// A rows list in data replaces the default level entirely.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()
	return cfg, nil
}

// Validate checks values the game cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.Physics.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("physics.tick_rate must be positive, got %d", c.Physics.TickRate))
	}
	if c.Physics.MaxStepsPerFrame < 0 {
		errs = append(errs, fmt.Errorf("physics.max_steps_per_frame must not be negative, got %d", c.Physics.MaxStepsPerFrame))
	}
	if c.Level.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("level.tile_size must be positive, got %v", c.Level.TileSize))
	}
	if len(c.Level.Rows) == 0 {
		errs = append(errs, errors.New("level.rows is empty"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.TickDT32 = 1 / float32(c.Physics.TickRate)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.Params = c.Controller.Params()
}

// Params converts the YAML tunables to controller parameters.
func (cc ControllerConfig) Params() controller.Params {
	return controller.Params{
		UseRawInput:      cc.UseRawInput,
		Gravity:          float32(cc.Gravity),
		TerminalVelocity: float32(cc.TerminalVelocity),
		MoveSpeed:        float32(cc.MoveSpeed),
		Acceleration:     float32(cc.Acceleration),
		Deceleration:     float32(cc.Deceleration),
		JumpForce:        float32(cc.JumpForce),
		VisualOffset:     mgl32.Vec2{0, float32(cc.SpriteOffsetY)},
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
