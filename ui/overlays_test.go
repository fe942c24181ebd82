package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestOverlayRegistryDefaultsDisabled(t *testing.T) {
	r := NewOverlayRegistry()
	if len(r.All()) == 0 {
		t.Fatal("no default overlays registered")
	}
	if got := r.EnabledOverlays(); len(got) != 0 {
		t.Errorf("EnabledOverlays() = %v, want none", got)
	}
	if len(r.ByCategory("world"))+len(r.ByCategory("debug")) != len(r.All()) {
		t.Error("every default overlay should be in the world or debug category")
	}
}

func TestOverlayToggle(t *testing.T) {
	r := NewOverlayRegistry()
	if !r.Toggle(OverlayColliders) {
		t.Fatal("first toggle should enable")
	}
	if !r.IsEnabled(OverlayColliders) {
		t.Error("colliders should be enabled")
	}
	if r.Toggle(OverlayColliders) {
		t.Error("second toggle should disable")
	}
	if r.Toggle("missing") {
		t.Error("unknown overlay should not toggle")
	}
}

func TestOverlayExclusive(t *testing.T) {
	r := NewOverlayRegistry()
	r.Register(OverlayDescriptor{ID: "a", Name: "A", Category: "debug", Exclusive: []OverlayID{"b"}})
	r.Register(OverlayDescriptor{ID: "b", Name: "B", Category: "debug", Exclusive: []OverlayID{"a"}})

	r.SetEnabled("a", true)
	r.SetEnabled("b", true)
	if r.IsEnabled("a") {
		t.Error("enabling b should disable a")
	}
	if !r.IsEnabled("b") {
		t.Error("b should be enabled")
	}
}

func TestOverlayHandleKeyPress(t *testing.T) {
	r := NewOverlayRegistry()
	id, on, ok := r.HandleKeyPress(rl.KeyC)
	if !ok || id != OverlayColliders || !on {
		t.Errorf("HandleKeyPress(C) = %q, %v, %v; want colliders, true, true", id, on, ok)
	}
	if _, _, ok := r.HandleKeyPress(rl.KeyQ); ok {
		t.Error("unbound key should not toggle anything")
	}
	got := r.EnabledOverlays()
	if len(got) != 1 || got[0] != OverlayColliders {
		t.Errorf("EnabledOverlays() = %v, want [colliders]", got)
	}
}
