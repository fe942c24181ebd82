package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	p := cfg.Derived.Params
	if !p.UseRawInput {
		t.Error("expected raw input on by default")
	}
	checks := []struct {
		name      string
		got, want float32
	}{
		{"gravity", p.Gravity, 800},
		{"terminal_velocity", p.TerminalVelocity, 600},
		{"move_speed", p.MoveSpeed, 100},
		{"acceleration", p.Acceleration, 7},
		{"deceleration", p.Deceleration, 10},
		{"jump_force", p.JumpForce, -300},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if p.VisualOffset != (mgl32.Vec2{0, -16}) {
		t.Errorf("visual offset = %v, want (0, -16)", p.VisualOffset)
	}
	if cfg.Physics.TickRate != 60 {
		t.Errorf("tick rate = %d, want 60", cfg.Physics.TickRate)
	}
	if cfg.Derived.TickDT32 != 1.0/60 {
		t.Errorf("tick dt = %v, want 1/60", cfg.Derived.TickDT32)
	}
	if len(cfg.Level.Rows) == 0 {
		t.Error("expected a default level")
	}
}

func TestParseOverridesOnlyGivenFields(t *testing.T) {
	cfg, err := Parse([]byte("controller:\n  gravity: 1200\n  use_raw_input: false\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Controller.Gravity != 1200 {
		t.Errorf("gravity = %v, want 1200", cfg.Controller.Gravity)
	}
	if cfg.Controller.UseRawInput {
		t.Error("use_raw_input should be overridden to false")
	}
	if cfg.Controller.JumpForce != -300 {
		t.Errorf("jump_force = %v, want default -300", cfg.Controller.JumpForce)
	}
	if cfg.Derived.Params.Gravity != 1200 {
		t.Errorf("derived gravity = %v, want 1200", cfg.Derived.Params.Gravity)
	}
}

func TestParseReplacesLevelRows(t *testing.T) {
	cfg, err := Parse([]byte("level:\n  rows:\n    - \".P.\"\n    - \"###\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.Level.Rows) != 2 || cfg.Level.Rows[0] != ".P." {
		t.Errorf("rows = %q, want the two given rows", cfg.Level.Rows)
	}
	if cfg.Level.TileSize != 16 {
		t.Errorf("tile size = %v, want default 16", cfg.Level.TileSize)
	}
}

func TestValidate(t *testing.T) {
	_, err := Parse([]byte("physics:\n  tick_rate: 0\nlevel:\n  tile_size: -1\n"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "tick_rate") || !strings.Contains(msg, "tile_size") {
		t.Errorf("error %q should mention both invalid fields", msg)
	}
}

func TestParseBadYAML(t *testing.T) {
	if _, err := Parse([]byte("controller: [")); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadAndWriteYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("controller:\n  move_speed: 150\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Controller.MoveSpeed != 150 {
		t.Errorf("move_speed = %v, want 150", cfg.Controller.MoveSpeed)
	}

	out := filepath.Join(dir, "snapshot.yaml")
	if err := cfg.WriteYAML(out); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	again, err := Load(out)
	if err != nil {
		t.Fatalf("Load snapshot: %v", err)
	}
	if again.Controller != cfg.Controller {
		t.Errorf("snapshot controller = %+v, want %+v", again.Controller, cfg.Controller)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCfgAfterInit(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Cfg().Physics.TickRate != 60 {
		t.Errorf("Cfg().Physics.TickRate = %d, want 60", Cfg().Physics.TickRate)
	}
}
